package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f fixture) newEquipment(t *testing.T) int {
	t.Helper()
	return createID(t, f.r, "/api/equipment", payload{
		"location": f.location, "sop": f.sop, "equipment_name": "pH meter",
		"min_use_range": 0, "max_use_range": 14, "in_use": true,
	})
}

func (f fixture) reagentPayload() payload {
	return payload{
		"sop":                f.sop,
		"reagent_name":       "Sodium chloride",
		"cas_number":         "7647-14-5",
		"lot_number":         "L-1",
		"vendor":             "Acme",
		"manufacturing_date": "2024-01-01",
		"expiration_date":    "2026-01-01",
	}
}

func TestMaintenanceLogHandlers(t *testing.T) {
	f := newFixture(t)
	equipment := f.newEquipment(t)
	valid := payload{
		"equipment":           equipment,
		"sop":                 f.sop,
		"service_date":        "2024-01-31",
		"service_description": "Replaced electrode",
		"service_interval":    "6 months",
		"next_service_date":   "2024-07-31",
	}

	w := send(f.r, http.MethodPost, "/api/maintenance-logs", valid)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.MaintenanceLog](t, w)
	assert.Equal(t, equipment, created.EquipmentID)
	assert.Equal(t, "2024-07-31", created.NextServiceDate.String())

	got := decode[models.MaintenanceLog](t, send(f.r, http.MethodGet, fmt.Sprintf("/api/maintenance-logs/%d", created.ID), nil))
	assert.Equal(t, "Replaced electrode", got.ServiceDescription)
	assert.Len(t, decode[[]models.MaintenanceLog](t, send(f.r, http.MethodGet, "/api/maintenance-logs", nil)), 1)

	tests := []struct {
		name           string
		change         payload
		expectedFields []string
	}{
		{"Next service before service", payload{"next_service_date": "2024-01-01"}, []string{"next_service_date"}},
		{"Unknown equipment", payload{"equipment": 99}, []string{"equipment"}},
		{"Missing description", payload{"service_description": ""}, []string{"service_description"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := payload{}
			for k, v := range valid {
				p[k] = v
			}
			for k, v := range tt.change {
				p[k] = v
			}
			w := send(f.r, http.MethodPost, "/api/maintenance-logs", p)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.ElementsMatch(t, tt.expectedFields, fieldsOf(decode[[]handlers.ValidationError](t, w)))
		})
	}

	assert.Equal(t, http.StatusNotFound, send(f.r, http.MethodGet, "/api/maintenance-logs/42", nil).Code)
}

func TestReagentHandlers(t *testing.T) {
	f := newFixture(t)

	w := send(f.r, http.MethodPost, "/api/reagents", f.reagentPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reagent := decode[models.Reagent](t, w)
	assert.Equal(t, "7647-14-5", reagent.CASNumber)

	t.Run("Expires before it is made", func(t *testing.T) {
		p := f.reagentPayload()
		p["expiration_date"] = "2023-12-31"
		w := send(f.r, http.MethodPost, "/api/reagents", p)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"expiration_date"}, fieldsOf(decode[[]handlers.ValidationError](t, w)))
	})

	t.Run("CAS number too long", func(t *testing.T) {
		p := f.reagentPayload()
		p["cas_number"] = "1234567-89-0X"
		w := send(f.r, http.MethodPost, "/api/reagents", p)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"cas_number"}, fieldsOf(decode[[]handlers.ValidationError](t, w)))
	})

	assert.Len(t, decode[[]models.Reagent](t, send(f.r, http.MethodGet, "/api/reagents", nil)), 1)
}

func TestTestLinkHandlers(t *testing.T) {
	f := newFixture(t)
	test := f.newTest(t, 10, 20)
	equipment := f.newEquipment(t)
	reagent := createID(t, f.r, "/api/reagents", f.reagentPayload())

	t.Run("Reagent volume", func(t *testing.T) {
		w := send(f.r, http.MethodPost, "/api/test-reagent-links", payload{"test": test, "reagent": reagent, "volume_used": 2.5})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		link := decode[models.TestReagentLink](t, w)
		assert.True(t, link.VolumeUsed.Equal(decimal.RequireFromString("2.5")))

		links := decode[[]models.TestReagentLink](t, send(f.r, http.MethodGet, "/api/test-reagent-links", nil))
		require.Len(t, links, 1)
		assert.Equal(t, reagent, links[0].ReagentID)
	})

	t.Run("Invalid reagent links", func(t *testing.T) {
		for _, tc := range []struct {
			body   string
			fields []string
		}{
			{fmt.Sprintf(`{"test": %d, "reagent": 99, "volume_used": 1}`, test), []string{"reagent"}},
			{fmt.Sprintf(`{"test": %d, "reagent": %d, "volume_used": -1}`, test, reagent), []string{"volume_used"}},
			{fmt.Sprintf(`{"test": %d, "reagent": %d, "volume_used": 0.0000001}`, test, reagent), []string{"volume_used"}},
			{fmt.Sprintf(`{"test": 99, "reagent": %d}`, reagent), []string{"volume_used"}},
		} {
			w := send(f.r, http.MethodPost, "/api/test-reagent-links", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code, tc.body)
			assert.Equal(t, tc.fields, fieldsOf(decode[[]handlers.ValidationError](t, w)), tc.body)
		}
	})

	t.Run("Equipment", func(t *testing.T) {
		w := send(f.r, http.MethodPost, "/api/test-equipment-links", payload{"test": test, "equipment": equipment})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		link := decode[models.TestEquipmentLink](t, w)

		got := decode[models.TestEquipmentLink](t, send(f.r, http.MethodGet, fmt.Sprintf("/api/test-equipment-links/%d", link.ID), nil))
		assert.Equal(t, equipment, got.EquipmentID)

		w = send(f.r, http.MethodPost, "/api/test-equipment-links", payload{"test": 99, "equipment": 99})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"test", "equipment"}, fieldsOf(decode[[]handlers.ValidationError](t, w)))
	})
}
