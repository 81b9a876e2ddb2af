package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, account_username, first_name, last_name, phone, email, department, training_completed, is_analyst, is_administrator`

func scanUser(s scanner) (models.UserAccount, error) {
	var u models.UserAccount
	err := s.Scan(&u.ID, &u.AccountUsername, &u.FirstName, &u.LastName, &u.Phone, &u.Email, &u.Department,
		&u.TrainingCompleted, &u.IsAnalyst, &u.IsAdministrator)
	return u, err
}

func (r *PostgresUserRepository) Create(ctx context.Context, u models.UserAccount) (models.UserAccount, error) {
	query := `INSERT INTO user_accounts (account_username, first_name, last_name, phone, email, department, training_completed, is_analyst, is_administrator)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, u.AccountUsername, u.FirstName, u.LastName, u.Phone, u.Email,
		u.Department, u.TrainingCompleted, u.IsAnalyst, u.IsAdministrator)
	if err != nil {
		return models.UserAccount{}, fmt.Errorf("failed to insert user account: %w", err)
	}
	u.ID = id
	return u, nil
}

func (r *PostgresUserRepository) GetAll(ctx context.Context) ([]models.UserAccount, error) {
	return queryAll(ctx, r.db, scanUser, `SELECT `+userColumns+` FROM user_accounts ORDER BY id`)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int) (models.UserAccount, error) {
	return queryOne(ctx, r.db, scanUser, `SELECT `+userColumns+` FROM user_accounts WHERE id = $1`, id)
}

type PostgresSOPRepository struct {
	db *sql.DB
}

func NewPostgresSOPRepository(db *sql.DB) *PostgresSOPRepository {
	return &PostgresSOPRepository{db: db}
}

const sopColumns = `id, sop_name, version_number, effective_date`

func scanSOP(s scanner) (models.SOP, error) {
	var sop models.SOP
	err := s.Scan(&sop.ID, &sop.SOPName, &sop.VersionNumber, &sop.EffectiveDate)
	return sop, err
}

func scanVersionChange(s scanner) (models.VersionChange, error) {
	var c models.VersionChange
	err := s.Scan(&c.ID, &c.SOPID, &c.OldVersionNumber, &c.NewVersionNumber, &c.OldEffectiveDate, &c.NewEffectiveDate, &c.ChangeDate)
	return c, err
}

func (r *PostgresSOPRepository) Create(ctx context.Context, s models.SOP) (models.SOP, error) {
	query := `INSERT INTO sops (sop_name, version_number, effective_date) VALUES ($1, $2, $3) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, s.SOPName, s.VersionNumber, s.EffectiveDate)
	if err != nil {
		return models.SOP{}, fmt.Errorf("failed to insert sop: %w", err)
	}
	s.ID = id
	return s, nil
}

func (r *PostgresSOPRepository) GetAll(ctx context.Context) ([]models.SOP, error) {
	return queryAll(ctx, r.db, scanSOP, `SELECT `+sopColumns+` FROM sops ORDER BY id`)
}

func (r *PostgresSOPRepository) GetByID(ctx context.Context, id int) (models.SOP, error) {
	return queryOne(ctx, r.db, scanSOP, `SELECT `+sopColumns+` FROM sops WHERE id = $1`, id)
}

// Update runs in a transaction so the version log never disagrees with the SOP row.
func (r *PostgresSOPRepository) Update(ctx context.Context, s models.SOP, at time.Time) (models.SOP, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.SOP{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	old, err := scanSOP(tx.QueryRowContext(ctx, `SELECT `+sopColumns+` FROM sops WHERE id = $1 FOR UPDATE`, s.ID))
	if err != nil {
		return models.SOP{}, translate(err)
	}

	if models.VersionChanged(old, s) {
		c := models.NewVersionChange(old, s, at)
		_, err = tx.ExecContext(ctx, `INSERT INTO version_changes (sop_id, old_version_number, new_version_number, old_effective_date, new_effective_date, change_date)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			c.SOPID, c.OldVersionNumber, c.NewVersionNumber, c.OldEffectiveDate, c.NewEffectiveDate, c.ChangeDate)
		if err != nil {
			return models.SOP{}, fmt.Errorf("failed to log version change: %w", translate(err))
		}
	}

	_, err = tx.ExecContext(ctx, `UPDATE sops SET sop_name = $1, version_number = $2, effective_date = $3 WHERE id = $4`,
		s.SOPName, s.VersionNumber, s.EffectiveDate, s.ID)
	if err != nil {
		return models.SOP{}, fmt.Errorf("failed to update sop: %w", translate(err))
	}

	if err := tx.Commit(); err != nil {
		return models.SOP{}, fmt.Errorf("failed to commit sop update: %w", err)
	}
	return s, nil
}

func (r *PostgresSOPRepository) GetVersionChanges(ctx context.Context) ([]models.VersionChange, error) {
	return queryAll(ctx, r.db, scanVersionChange,
		`SELECT id, sop_id, old_version_number, new_version_number, old_effective_date, new_effective_date, change_date FROM version_changes ORDER BY id`)
}

type PostgresLocationRepository struct {
	db *sql.DB
}

func NewPostgresLocationRepository(db *sql.DB) *PostgresLocationRepository {
	return &PostgresLocationRepository{db: db}
}

func scanLocation(s scanner) (models.Location, error) {
	var l models.Location
	err := s.Scan(&l.ID, &l.LocationType, &l.RoomNumber)
	return l, err
}

func (r *PostgresLocationRepository) Create(ctx context.Context, l models.Location) (models.Location, error) {
	id, err := insertReturningID(ctx, r.db, `INSERT INTO locations (location_type, room_number) VALUES ($1, $2) RETURNING id`,
		l.LocationType, l.RoomNumber)
	if err != nil {
		return models.Location{}, fmt.Errorf("failed to insert location: %w", err)
	}
	l.ID = id
	return l, nil
}

func (r *PostgresLocationRepository) GetAll(ctx context.Context) ([]models.Location, error) {
	return queryAll(ctx, r.db, scanLocation, `SELECT id, location_type, room_number FROM locations ORDER BY id`)
}

func (r *PostgresLocationRepository) GetByID(ctx context.Context, id int) (models.Location, error) {
	return queryOne(ctx, r.db, scanLocation, `SELECT id, location_type, room_number FROM locations WHERE id = $1`, id)
}

type PostgresWarehouseRepository struct {
	db *sql.DB
}

func NewPostgresWarehouseRepository(db *sql.DB) *PostgresWarehouseRepository {
	return &PostgresWarehouseRepository{db: db}
}

const warehouseColumns = `id, sop_id, warehouse_technician, warehouse_facility, warehouse_company`

func scanWarehouse(s scanner) (models.Warehouse, error) {
	var w models.Warehouse
	err := s.Scan(&w.ID, &w.SOPID, &w.WarehouseTechnician, &w.WarehouseFacility, &w.WarehouseCompany)
	return w, err
}

func (r *PostgresWarehouseRepository) Create(ctx context.Context, w models.Warehouse) (models.Warehouse, error) {
	query := `INSERT INTO warehouses (sop_id, warehouse_technician, warehouse_facility, warehouse_company) VALUES ($1, $2, $3, $4) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, w.SOPID, w.WarehouseTechnician, w.WarehouseFacility, w.WarehouseCompany)
	if err != nil {
		return models.Warehouse{}, fmt.Errorf("failed to insert warehouse: %w", err)
	}
	w.ID = id
	return w, nil
}

func (r *PostgresWarehouseRepository) GetAll(ctx context.Context) ([]models.Warehouse, error) {
	return queryAll(ctx, r.db, scanWarehouse, `SELECT `+warehouseColumns+` FROM warehouses ORDER BY id`)
}

func (r *PostgresWarehouseRepository) GetByID(ctx context.Context, id int) (models.Warehouse, error) {
	return queryOne(ctx, r.db, scanWarehouse, `SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id)
}

type PostgresEquipmentRepository struct {
	db *sql.DB
}

func NewPostgresEquipmentRepository(db *sql.DB) *PostgresEquipmentRepository {
	return &PostgresEquipmentRepository{db: db}
}

const equipmentColumns = `id, location_id, sop_id, equipment_name, min_use_range, max_use_range, in_use`

func scanEquipment(s scanner) (models.Equipment, error) {
	var e models.Equipment
	err := s.Scan(&e.ID, &e.LocationID, &e.SOPID, &e.EquipmentName, &e.MinUseRange, &e.MaxUseRange, &e.InUse)
	return e, err
}

func (r *PostgresEquipmentRepository) Create(ctx context.Context, e models.Equipment) (models.Equipment, error) {
	query := `INSERT INTO equipment (location_id, sop_id, equipment_name, min_use_range, max_use_range, in_use)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, e.LocationID, e.SOPID, e.EquipmentName, e.MinUseRange, e.MaxUseRange, e.InUse)
	if err != nil {
		return models.Equipment{}, fmt.Errorf("failed to insert equipment: %w", err)
	}
	e.ID = id
	return e, nil
}

func (r *PostgresEquipmentRepository) GetAll(ctx context.Context) ([]models.Equipment, error) {
	return queryAll(ctx, r.db, scanEquipment, `SELECT `+equipmentColumns+` FROM equipment ORDER BY id`)
}

func (r *PostgresEquipmentRepository) GetByID(ctx context.Context, id int) (models.Equipment, error) {
	return queryOne(ctx, r.db, scanEquipment, `SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id)
}
