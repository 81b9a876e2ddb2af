package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
	"github.com/rs/zerolog"
)

// CreateMaintenanceLogHandler godoc
// @Summary Log an equipment service
// @Tags maintenance-logs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log body MaintenanceLogRequest true "Service to log"
// @Success 201 {object} models.MaintenanceLog
// @Failure 400 {array} ValidationError
// @Router /maintenance-logs [post]
func CreateMaintenanceLogHandler(w http.ResponseWriter, r *http.Request) {
	var req MaintenanceLogRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "maintenance log", equipmentRef(req.Equipment), sopRef(req.SOP)) {
		return
	}

	created, err := maintenanceLogRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "maintenance log", "create")
		return
	}
	respondCreated(w, r, created, "maintenance-logs")
}

// GetMaintenanceLogsHandler godoc
// @Summary List maintenance logs
// @Tags maintenance-logs
// @Produce json
// @Success 200 {array} models.MaintenanceLog
// @Router /maintenance-logs [get]
func GetMaintenanceLogsHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "maintenance-logs", maintenanceLogRepo.GetAll)
}

// GetMaintenanceLogByIDHandler godoc
// @Summary Get maintenance log by ID
// @Tags maintenance-logs
// @Produce json
// @Param id path int true "Maintenance log ID"
// @Success 200 {object} models.MaintenanceLog
// @Failure 404 {string} string "Not found"
// @Router /maintenance-logs/{id} [get]
func GetMaintenanceLogByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "maintenance log", maintenanceLogRepo.GetByID)
}

// CreateReagentHandler godoc
// @Summary Register a reagent lot
// @Tags reagents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reagent body ReagentRequest true "Reagent to add"
// @Success 201 {object} models.Reagent
// @Failure 400 {array} ValidationError
// @Router /reagents [post]
func CreateReagentHandler(w http.ResponseWriter, r *http.Request) {
	var req ReagentRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "reagent", sopRef(req.SOP)) {
		return
	}

	created, err := reagentRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "reagent", "create")
		return
	}
	respondCreated(w, r, created, "reagents")
}

// GetReagentsHandler godoc
// @Summary List reagents
// @Tags reagents
// @Produce json
// @Success 200 {array} models.Reagent
// @Router /reagents [get]
func GetReagentsHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "reagents", reagentRepo.GetAll)
}

// GetReagentByIDHandler godoc
// @Summary Get reagent by ID
// @Tags reagents
// @Produce json
// @Param id path int true "Reagent ID"
// @Success 200 {object} models.Reagent
// @Failure 404 {string} string "Not found"
// @Router /reagents/{id} [get]
func GetReagentByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "reagent", reagentRepo.GetByID)
}

// CreateTestReagentLinkHandler godoc
// @Summary Record the reagent volume a test used
// @Tags test-reagent-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body TestReagentLinkRequest true "Link to add"
// @Success 201 {object} models.TestReagentLink
// @Failure 400 {array} ValidationError
// @Router /test-reagent-links [post]
func CreateTestReagentLinkHandler(w http.ResponseWriter, r *http.Request) {
	var req TestReagentLinkRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "test reagent link", testRef(req.Test), reagentRef(req.Reagent)) {
		return
	}

	ctx := r.Context()
	created, err := testReagentLinkRepo.Create(ctx, req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "test reagent link", "create")
		return
	}
	if reagent, err := reagentRepo.GetByID(ctx, req.Reagent); err == nil && reagent.ExpiredOn(today()) {
		zerolog.Ctx(ctx).Warn().
			Int("reagent_id", reagent.ID).
			Str("lot_number", reagent.LotNumber).
			Str("expiration_date", reagent.ExpirationDate.String()).
			Msg("expired reagent recorded against a test")
	}
	respondCreated(w, r, created, "test-reagent-links")
}

// GetTestReagentLinksHandler godoc
// @Summary List test reagent links
// @Tags test-reagent-links
// @Produce json
// @Success 200 {array} models.TestReagentLink
// @Router /test-reagent-links [get]
func GetTestReagentLinksHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "test-reagent-links", testReagentLinkRepo.GetAll)
}

// GetTestReagentLinkByIDHandler godoc
// @Summary Get test reagent link by ID
// @Tags test-reagent-links
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} models.TestReagentLink
// @Failure 404 {string} string "Not found"
// @Router /test-reagent-links/{id} [get]
func GetTestReagentLinkByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "test reagent link", testReagentLinkRepo.GetByID)
}

// CreateTestEquipmentLinkHandler godoc
// @Summary Record the equipment a test runs on
// @Tags test-equipment-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param link body TestEquipmentLinkRequest true "Link to add"
// @Success 201 {object} models.TestEquipmentLink
// @Failure 400 {array} ValidationError
// @Router /test-equipment-links [post]
func CreateTestEquipmentLinkHandler(w http.ResponseWriter, r *http.Request) {
	var req TestEquipmentLinkRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "test equipment link", testRef(req.Test), equipmentRef(req.Equipment)) {
		return
	}

	created, err := testEquipmentLinkRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "test equipment link", "create")
		return
	}
	respondCreated(w, r, created, "test-equipment-links")
}

// GetTestEquipmentLinksHandler godoc
// @Summary List test equipment links
// @Tags test-equipment-links
// @Produce json
// @Success 200 {array} models.TestEquipmentLink
// @Router /test-equipment-links [get]
func GetTestEquipmentLinksHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "test-equipment-links", testEquipmentLinkRepo.GetAll)
}

// GetTestEquipmentLinkByIDHandler godoc
// @Summary Get test equipment link by ID
// @Tags test-equipment-links
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} models.TestEquipmentLink
// @Failure 404 {string} string "Not found"
// @Router /test-equipment-links/{id} [get]
func GetTestEquipmentLinkByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "test equipment link", testEquipmentLinkRepo.GetByID)
}

func today() models.Date {
	t := now().UTC()
	return models.NewDate(t.Year(), t.Month(), t.Day())
}
