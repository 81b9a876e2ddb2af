package handlers

import (
	"net/http"
)

// CreateSampleHandler godoc
// @Summary Register a sample
// @Description time_received defaults to the current time
// @Tags samples
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sample body SampleRequest true "Sample to add"
// @Success 201 {object} models.Sample
// @Failure 400 {array} ValidationError
// @Router /samples [post]
func CreateSampleHandler(w http.ResponseWriter, r *http.Request) {
	var req SampleRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "sample", req.references()...) {
		return
	}

	created, err := sampleRepo.Create(r.Context(), req.toModel(now()))
	if err != nil {
		writeRepoError(w, r, err, "sample", "create")
		return
	}
	respondCreated(w, r, created, "samples")
}

// GetSamplesHandler godoc
// @Summary List samples
// @Tags samples
// @Produce json
// @Success 200 {array} models.Sample
// @Failure 500 {string} string "Internal error"
// @Router /samples [get]
func GetSamplesHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "samples", sampleRepo.GetAll)
}

// GetSampleByIDHandler godoc
// @Summary Get sample by ID
// @Tags samples
// @Produce json
// @Param id path int true "Sample ID"
// @Success 200 {object} models.Sample
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /samples/{id} [get]
func GetSampleByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "sample", sampleRepo.GetByID)
}
