package handlers

import (
	"net/http"

	"github.com/rs/zerolog"
)

// CreateUserHandler godoc
// @Summary Create a user account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UserAccountRequest true "User account to add"
// @Success 201 {object} models.UserAccount
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Duplicated username or email"
// @Router /users [post]
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req UserAccountRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := userRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "user", "create")
		return
	}
	respondCreated(w, r, created, "users")
}

// GetUsersHandler godoc
// @Summary List user accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.UserAccount
// @Failure 500 {string} string "Internal error"
// @Router /users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "users", userRepo.GetAll)
}

// GetUserByIDHandler godoc
// @Summary Get user account by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserAccount
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /users/{id} [get]
func GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "user", userRepo.GetByID)
}

// CreateSOPHandler godoc
// @Summary Create a standard operating procedure
// @Description version_number defaults to 1.0
// @Tags sops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sop body SOPRequest true "SOP to add"
// @Success 201 {object} models.SOP
// @Failure 400 {array} ValidationError
// @Router /sops [post]
func CreateSOPHandler(w http.ResponseWriter, r *http.Request) {
	var req SOPRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := sopRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "sop", "create")
		return
	}
	respondCreated(w, r, created, "sops")
}

// UpdateSOPHandler godoc
// @Summary Update a standard operating procedure
// @Description Changing the version number or effective date records a version change
// @Tags sops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "SOP ID"
// @Param sop body SOPRequest true "New SOP values"
// @Success 200 {object} models.SOP
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /sops/{id} [put]
func UpdateSOPHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid sop ID", http.StatusBadRequest)
		return
	}

	var req SOPRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sop := req.toModel()
	sop.ID = id
	updated, err := sopRepo.Update(r.Context(), sop, now())
	if err != nil {
		writeRepoError(w, r, err, "sop", "update")
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int("sop_id", updated.ID).
		Str("version", updated.VersionNumber.String()).
		Msg("sop updated")
	invalidate(r.Context(), "sops", "version-changes")
	respond(w, r, http.StatusOK, updated)
}

// GetSOPsHandler godoc
// @Summary List standard operating procedures
// @Tags sops
// @Produce json
// @Success 200 {array} models.SOP
// @Router /sops [get]
func GetSOPsHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "sops", sopRepo.GetAll)
}

// GetSOPByIDHandler godoc
// @Summary Get SOP by ID
// @Tags sops
// @Produce json
// @Param id path int true "SOP ID"
// @Success 200 {object} models.SOP
// @Failure 404 {string} string "Not found"
// @Router /sops/{id} [get]
func GetSOPByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "sop", sopRepo.GetByID)
}

// GetVersionChangesHandler godoc
// @Summary List SOP version changes
// @Tags sops
// @Produce json
// @Success 200 {array} models.VersionChange
// @Router /version-changes [get]
func GetVersionChangesHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "version-changes", sopRepo.GetVersionChanges)
}

// CreateLocationHandler godoc
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body LocationRequest true "Location to add"
// @Success 201 {object} models.Location
// @Failure 400 {array} ValidationError
// @Router /locations [post]
func CreateLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	created, err := locationRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "location", "create")
		return
	}
	respondCreated(w, r, created, "locations")
}

// GetLocationsHandler godoc
// @Summary List locations
// @Tags locations
// @Produce json
// @Success 200 {array} models.Location
// @Router /locations [get]
func GetLocationsHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "locations", locationRepo.GetAll)
}

// GetLocationByIDHandler godoc
// @Summary Get location by ID
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} models.Location
// @Failure 404 {string} string "Not found"
// @Router /locations/{id} [get]
func GetLocationByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "location", locationRepo.GetByID)
}

// CreateWarehouseHandler godoc
// @Summary Create a warehouse
// @Tags warehouses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param warehouse body WarehouseRequest true "Warehouse to add"
// @Success 201 {object} models.Warehouse
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Duplicated facility and company"
// @Router /warehouses [post]
func CreateWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req WarehouseRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "warehouse", sopRef(req.SOP)) {
		return
	}

	created, err := warehouseRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "warehouse", "create")
		return
	}
	respondCreated(w, r, created, "warehouses")
}

// GetWarehousesHandler godoc
// @Summary List warehouses
// @Tags warehouses
// @Produce json
// @Success 200 {array} models.Warehouse
// @Router /warehouses [get]
func GetWarehousesHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "warehouses", warehouseRepo.GetAll)
}

// GetWarehouseByIDHandler godoc
// @Summary Get warehouse by ID
// @Tags warehouses
// @Produce json
// @Param id path int true "Warehouse ID"
// @Success 200 {object} models.Warehouse
// @Failure 404 {string} string "Not found"
// @Router /warehouses/{id} [get]
func GetWarehouseByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "warehouse", warehouseRepo.GetByID)
}

// CreateEquipmentHandler godoc
// @Summary Register a piece of equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param equipment body EquipmentRequest true "Equipment to add"
// @Success 201 {object} models.Equipment
// @Failure 400 {array} ValidationError
// @Router /equipment [post]
func CreateEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	var req EquipmentRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if !referencesExist(w, r, "equipment", locationRef(req.Location), sopRef(req.SOP)) {
		return
	}

	created, err := equipmentRepo.Create(r.Context(), req.toModel())
	if err != nil {
		writeRepoError(w, r, err, "equipment", "create")
		return
	}
	respondCreated(w, r, created, "equipment")
}

// GetEquipmentHandler godoc
// @Summary List equipment
// @Tags equipment
// @Produce json
// @Success 200 {array} models.Equipment
// @Router /equipment [get]
func GetEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "equipment", equipmentRepo.GetAll)
}

// GetEquipmentByIDHandler godoc
// @Summary Get equipment by ID
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} models.Equipment
// @Failure 404 {string} string "Not found"
// @Router /equipment/{id} [get]
func GetEquipmentByIDHandler(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "equipment", equipmentRepo.GetByID)
}
