package handlers

import (
	"net/http"
)

// CreateTestHandler godoc
// @Summary Define a test
// @Description Both acceptance bounds are optional; a missing bound does not constrain its side
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test body TestRequest true "Test to add"
// @Success 201 {object} models.Test
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "SOP already has a test"
// @Router /tests [post]
func CreateTestHandler(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "test", userRef(req.UserAccount), sopRef(req.SOP)) {
		return
	}

	created, err := testRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "test", "create")
		return
	}
	respondCreated(w, r, created, "tests")
}

// GetTestsHandler godoc
// @Summary List tests
// @Tags tests
// @Produce json
// @Success 200 {array} models.Test
// @Router /tests [get]
func GetTestsHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "tests", testRepo.GetAll)
}

// GetTestByIDHandler godoc
// @Summary Get test by ID
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} models.Test
// @Failure 404 {string} string "Not found"
// @Router /tests/{id} [get]
func GetTestByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "test", testRepo.GetByID)
}
