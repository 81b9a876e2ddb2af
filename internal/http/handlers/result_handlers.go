package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rogerio-castellano/lims-tracker/internal/metrics"
	"github.com/rogerio-castellano/lims-tracker/internal/models"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/rs/zerolog"
)

// CreateResultHandler godoc
// @Summary Record a test result for a sample
// @Description pass_or_fail is computed from the test's acceptance bounds; a client supplied value is ignored
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param result body ResultRequest true "Result to add"
// @Success 201 {object} models.Result
// @Failure 400 {array} ValidationError
// @Router /sample-test-links [post]
func CreateResultHandler(w http.ResponseWriter, r *http.Request) {
	var req ResultRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	ctx := r.Context()
	test, err := testRepo.GetByID(ctx, req.Test)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		respond(w, r, http.StatusBadRequest, []ValidationError{{Field: "test", Description: fmt.Sprintf("test %d does not exist", req.Test)}})
		return
	case err != nil:
		writeRepoError(w, r, err, "result", "create")
		return
	}
	if !referencesExist(w, r, "result", sampleRef(req.Sample)) {
		return
	}

	result := req.toModel()
	result.Grade(test)
	if req.PassOrFail != nil && *req.PassOrFail != result.PassOrFail {
		zerolog.Ctx(ctx).Debug().
			Int("test_id", test.ID).
			Bool("client", *req.PassOrFail).
			Bool("server", result.PassOrFail).
			Msg("client pass/fail verdict overridden")
	}

	created, err := resultRepo.Create(ctx, result)
	if err != nil {
		writeRepoError(w, r, err, "result", "create")
		return
	}
	metrics.ResultsRecorded.WithLabelValues(metrics.Outcome(created.PassOrFail)).Inc()
	respondCreated(w, r, created, "sample-test-links")
}

// GetResultsHandler godoc
// @Summary List results
// @Description Without query parameters every result is returned
// @Tags results
// @Produce json
// @Param sample query int false "Sample ID"
// @Param test query int false "Test ID"
// @Param pass_or_fail query bool false "Outcome"
// @Success 200 {array} models.Result
// @Failure 400 {string} string "Invalid filter"
// @Router /sample-test-links [get]
func GetResultsHandler(w http.ResponseWriter, r *http.Request) {
	rf, err := parseResultFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rf.Empty() {
		serveList(w, r, "sample-test-links", resultRepo.GetAll)
		return
	}

	results, err := resultRepo.Filter(r.Context(), rf)
	if err != nil {
		writeRepoError(w, r, err, "results", "fetch")
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	respond(w, r, http.StatusOK, results)
}

// GetResultByIDHandler godoc
// @Summary Get result by ID
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} models.Result
// @Failure 404 {string} string "Not found"
// @Router /sample-test-links/{id} [get]
func GetResultByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "result", resultRepo.GetByID)
}

func parseResultFilter(q url.Values) (repo.ResultFilter, error) {
	var rf repo.ResultFilter

	if v := q.Get("sample"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return rf, errors.New("invalid sample filter")
		}
		rf.SampleID = &id
	}
	if v := q.Get("test"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return rf, errors.New("invalid test filter")
		}
		rf.TestID = &id
	}
	if v := q.Get("pass_or_fail"); v != "" {
		pass, err := strconv.ParseBool(v)
		if err != nil {
			return rf, errors.New("invalid pass_or_fail filter")
		}
		rf.PassOrFail = &pass
	}
	return rf, nil
}
