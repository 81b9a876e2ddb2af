package handlers_test_suite

import (
	"net/http"
	"testing"

	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMetricsHandler(t *testing.T) {
	f := newFixture(t)
	createID(t, f.r, "/api/samples", f.samplePayload("Ibuprofen"))
	createID(t, f.r, "/api/equipment", payload{"location": f.location, "sop": f.sop, "equipment_name": "Scale", "min_use_range": 0, "max_use_range": 5, "in_use": true})
	createID(t, f.r, "/api/equipment", payload{"location": f.location, "sop": f.sop, "equipment_name": "Oven", "min_use_range": 20, "max_use_range": 250})

	test := f.newTest(t, 10, 20)
	for _, v := range []int{15, 25, 5} {
		createID(t, f.r, "/api/sample-test-links", f.resultPayload(test, v))
	}

	w := send(f.r, http.MethodGet, "/api/metrics/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	m := decode[repo.Metrics](t, w)
	assert.Equal(t, 2, m.TotalSamples)
	assert.Equal(t, 3, m.TotalResults)
	assert.Equal(t, 1, m.PassingResults)
	assert.Equal(t, 2, m.FailingResults)
	assert.Equal(t, 1, m.EquipmentInUse)
	assert.Equal(t, "Aspirin", m.MostTestedSample.ProductName)
	assert.Equal(t, 3, m.MostTestedSample.ResultCount)
}

func TestDashboardMetricsHandler_Empty(t *testing.T) {
	r, _ := newRouter(t)

	w := send(r, http.MethodGet, "/api/metrics/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	m := decode[repo.Metrics](t, w)
	assert.Zero(t, m.TotalSamples)
	assert.Empty(t, m.MostTestedSample.ProductName)
}
