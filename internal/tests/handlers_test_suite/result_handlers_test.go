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

func TestCreateResultHandler_PassOrFail(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		min, max any
		value    any
		pass     bool
	}{
		{"Inside both bounds", 10, 20, 15, true},
		{"Above max", 10, 20, 25, false},
		{"Below min", 10, 20, 5, false},
		{"Equal to min", 10, 20, 10, true},
		{"Equal to max", 10, 20, 20, true},
		{"Max only, above", nil, 20, 100, false},
		{"Max only, far below", nil, 20, -1000, true},
		{"Min only, above", 10, nil, 1000000, true},
		{"Min only, below", 10, nil, 9.999, false},
		{"No bounds", nil, nil, -5, true},
		{"Decimal bounds", 0.1, 0.3, 0.3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := f.newTest(t, tt.min, tt.max)

			// the client flag is deliberately the opposite of the expected verdict
			p := f.resultPayload(test, tt.value)
			p["pass_or_fail"] = !tt.pass

			w := send(f.r, http.MethodPost, "/api/sample-test-links", p)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			created := decode[models.Result](t, w)
			assert.Equal(t, tt.pass, created.PassOrFail)

			stored := decode[models.Result](t, send(f.r, http.MethodGet, fmt.Sprintf("/api/sample-test-links/%d", created.ID), nil))
			assert.Equal(t, tt.pass, stored.PassOrFail)
		})
	}
}

func TestCreateResultHandler_KeepsDecimalValue(t *testing.T) {
	f := newFixture(t)
	test := f.newTest(t, nil, nil)

	w := send(f.r, http.MethodPost, "/api/sample-test-links", `{"sample": 1, "test": `+fmt.Sprint(test)+`, "testing_analyst": "a", "reviewing_analyst": "b", "test_result": 0.1, "deadline": "2024-03-01T17:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"test_result":0.1`)
	assert.True(t, decode[models.Result](t, w).TestResult.Equal(decimal.RequireFromString("0.1")))
}

func TestCreateResultHandler_Invalid(t *testing.T) {
	f := newFixture(t)
	test := f.newTest(t, 10, 20)

	t.Run("Unknown test", func(t *testing.T) {
		w := send(f.r, http.MethodPost, "/api/sample-test-links", f.resultPayload(99, 15))
		require.Equal(t, http.StatusBadRequest, w.Code)
		errs := decode[[]handlers.ValidationError](t, w)
		require.Len(t, errs, 1)
		assert.Equal(t, "test", errs[0].Field)
	})

	t.Run("Unknown sample", func(t *testing.T) {
		p := f.resultPayload(test, 15)
		p["sample"] = 99
		w := send(f.r, http.MethodPost, "/api/sample-test-links", p)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"sample"}, fieldsOf(decode[[]handlers.ValidationError](t, w)))
	})

	t.Run("Missing value and deadline", func(t *testing.T) {
		p := f.resultPayload(test, nil)
		delete(p, "deadline")
		w := send(f.r, http.MethodPost, "/api/sample-test-links", p)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.ElementsMatch(t, []string{"test_result", "deadline"}, fieldsOf(decode[[]handlers.ValidationError](t, w)))
	})

	t.Run("Value finer than the stored scale", func(t *testing.T) {
		// 20.0000001 would be stored as 20.000000 and contradict a FAIL verdict
		w := send(f.r, http.MethodPost, "/api/sample-test-links", `{"sample": 1, "test": `+fmt.Sprint(test)+`, "testing_analyst": "a", "reviewing_analyst": "b", "test_result": 20.0000001, "deadline": "2024-03-01T17:00:00Z"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		errs := decode[[]handlers.ValidationError](t, w)
		require.Len(t, errs, 1)
		assert.Equal(t, "test_result allows at most 6 decimal places", errs[0].Description)
	})

	t.Run("Deadline is not a timestamp", func(t *testing.T) {
		p := f.resultPayload(test, 15)
		p["deadline"] = "next week"
		assert.Equal(t, http.StatusBadRequest, send(f.r, http.MethodPost, "/api/sample-test-links", p).Code)
	})

	results := decode[[]models.Result](t, send(f.r, http.MethodGet, "/api/sample-test-links", nil))
	assert.Empty(t, results)
}

func TestGetResultsHandler_Filters(t *testing.T) {
	f := newFixture(t)
	second := createID(t, f.r, "/api/samples", f.samplePayload("Ibuprofen"))
	narrow := f.newTest(t, 10, 20)
	open := f.newTest(t, nil, nil)

	record := func(sample, test int, value any) {
		p := f.resultPayload(test, value)
		p["sample"] = sample
		createID(t, f.r, "/api/sample-test-links", p)
	}
	record(f.sample, narrow, 15) // pass
	record(f.sample, narrow, 25) // fail
	record(second, narrow, 5)    // fail
	record(second, open, 7)      // pass

	tests := []struct {
		query string
		ids   []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"?sample=1", []int{1, 2}},
		{fmt.Sprintf("?test=%d", open), []int{4}},
		{"?pass_or_fail=false", []int{2, 3}},
		{fmt.Sprintf("?sample=%d&pass_or_fail=true", second), []int{4}},
		{"?sample=1&test=999", []int{}},
	}

	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			w := send(f.r, http.MethodGet, "/api/sample-test-links/"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			results := decode[[]models.Result](t, w)
			ids := []int{}
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}

	t.Run("Invalid filter", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, send(f.r, http.MethodGet, "/api/sample-test-links?pass_or_fail=maybe", nil).Code)
		assert.Equal(t, http.StatusBadRequest, send(f.r, http.MethodGet, "/api/sample-test-links?sample=x", nil).Code)
	})
}
