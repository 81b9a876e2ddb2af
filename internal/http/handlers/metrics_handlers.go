package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Get dashboard metrics
// @Description Counts of samples, results by outcome and equipment in use
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := metricsRepo.GetDashboardMetrics(r.Context())
	if err != nil {
		writeRepoError(w, r, err, "metrics", "fetch")
		return
	}
	respond(w, r, http.StatusOK, m)
}
