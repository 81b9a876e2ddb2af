package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

type PostgresMaintenanceLogRepository struct {
	db *sql.DB
}

func NewPostgresMaintenanceLogRepository(db *sql.DB) *PostgresMaintenanceLogRepository {
	return &PostgresMaintenanceLogRepository{db: db}
}

const maintenanceLogColumns = `id, equipment_id, sop_id, service_date, service_description, service_interval, next_service_date`

func scanMaintenanceLog(s scanner) (models.MaintenanceLog, error) {
	var m models.MaintenanceLog
	err := s.Scan(&m.ID, &m.EquipmentID, &m.SOPID, &m.ServiceDate, &m.ServiceDescription, &m.ServiceInterval, &m.NextServiceDate)
	return m, err
}

func (r *PostgresMaintenanceLogRepository) Create(ctx context.Context, m models.MaintenanceLog) (models.MaintenanceLog, error) {
	query := `INSERT INTO maintenance_logs (equipment_id, sop_id, service_date, service_description, service_interval, next_service_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, m.EquipmentID, m.SOPID, m.ServiceDate, m.ServiceDescription, m.ServiceInterval, m.NextServiceDate)
	if err != nil {
		return models.MaintenanceLog{}, fmt.Errorf("failed to insert maintenance log: %w", err)
	}
	m.ID = id
	return m, nil
}

func (r *PostgresMaintenanceLogRepository) GetAll(ctx context.Context) ([]models.MaintenanceLog, error) {
	return queryAll(ctx, r.db, scanMaintenanceLog, `SELECT `+maintenanceLogColumns+` FROM maintenance_logs ORDER BY id`)
}

func (r *PostgresMaintenanceLogRepository) GetByID(ctx context.Context, id int) (models.MaintenanceLog, error) {
	return queryOne(ctx, r.db, scanMaintenanceLog, `SELECT `+maintenanceLogColumns+` FROM maintenance_logs WHERE id = $1`, id)
}

type PostgresReagentRepository struct {
	db *sql.DB
}

func NewPostgresReagentRepository(db *sql.DB) *PostgresReagentRepository {
	return &PostgresReagentRepository{db: db}
}

const reagentColumns = `id, sop_id, reagent_name, cas_number, lot_number, vendor, manufacturing_date, expiration_date`

func scanReagent(s scanner) (models.Reagent, error) {
	var r models.Reagent
	err := s.Scan(&r.ID, &r.SOPID, &r.ReagentName, &r.CASNumber, &r.LotNumber, &r.Vendor, &r.ManufacturingDate, &r.ExpirationDate)
	return r, err
}

func (r *PostgresReagentRepository) Create(ctx context.Context, re models.Reagent) (models.Reagent, error) {
	query := `INSERT INTO reagents (sop_id, reagent_name, cas_number, lot_number, vendor, manufacturing_date, expiration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, re.SOPID, re.ReagentName, re.CASNumber, re.LotNumber, re.Vendor, re.ManufacturingDate, re.ExpirationDate)
	if err != nil {
		return models.Reagent{}, fmt.Errorf("failed to insert reagent: %w", err)
	}
	re.ID = id
	return re, nil
}

func (r *PostgresReagentRepository) GetAll(ctx context.Context) ([]models.Reagent, error) {
	return queryAll(ctx, r.db, scanReagent, `SELECT `+reagentColumns+` FROM reagents ORDER BY id`)
}

func (r *PostgresReagentRepository) GetByID(ctx context.Context, id int) (models.Reagent, error) {
	return queryOne(ctx, r.db, scanReagent, `SELECT `+reagentColumns+` FROM reagents WHERE id = $1`, id)
}

type PostgresTestReagentLinkRepository struct {
	db *sql.DB
}

func NewPostgresTestReagentLinkRepository(db *sql.DB) *PostgresTestReagentLinkRepository {
	return &PostgresTestReagentLinkRepository{db: db}
}

const testReagentLinkColumns = `id, test_id, reagent_id, volume_used`

func scanTestReagentLink(s scanner) (models.TestReagentLink, error) {
	var l models.TestReagentLink
	err := s.Scan(&l.ID, &l.TestID, &l.ReagentID, &l.VolumeUsed)
	return l, err
}

func (r *PostgresTestReagentLinkRepository) Create(ctx context.Context, l models.TestReagentLink) (models.TestReagentLink, error) {
	query := `INSERT INTO test_reagent_links (test_id, reagent_id, volume_used) VALUES ($1, $2, $3) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, l.TestID, l.ReagentID, l.VolumeUsed)
	if err != nil {
		return models.TestReagentLink{}, fmt.Errorf("failed to insert test reagent link: %w", err)
	}
	l.ID = id
	return l, nil
}

func (r *PostgresTestReagentLinkRepository) GetAll(ctx context.Context) ([]models.TestReagentLink, error) {
	return queryAll(ctx, r.db, scanTestReagentLink, `SELECT `+testReagentLinkColumns+` FROM test_reagent_links ORDER BY id`)
}

func (r *PostgresTestReagentLinkRepository) GetByID(ctx context.Context, id int) (models.TestReagentLink, error) {
	return queryOne(ctx, r.db, scanTestReagentLink, `SELECT `+testReagentLinkColumns+` FROM test_reagent_links WHERE id = $1`, id)
}

type PostgresTestEquipmentLinkRepository struct {
	db *sql.DB
}

func NewPostgresTestEquipmentLinkRepository(db *sql.DB) *PostgresTestEquipmentLinkRepository {
	return &PostgresTestEquipmentLinkRepository{db: db}
}

func scanTestEquipmentLink(s scanner) (models.TestEquipmentLink, error) {
	var l models.TestEquipmentLink
	err := s.Scan(&l.ID, &l.TestID, &l.EquipmentID)
	return l, err
}

func (r *PostgresTestEquipmentLinkRepository) Create(ctx context.Context, l models.TestEquipmentLink) (models.TestEquipmentLink, error) {
	query := `INSERT INTO test_equipment_links (test_id, equipment_id) VALUES ($1, $2) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, l.TestID, l.EquipmentID)
	if err != nil {
		return models.TestEquipmentLink{}, fmt.Errorf("failed to insert test equipment link: %w", err)
	}
	l.ID = id
	return l, nil
}

func (r *PostgresTestEquipmentLinkRepository) GetAll(ctx context.Context) ([]models.TestEquipmentLink, error) {
	return queryAll(ctx, r.db, scanTestEquipmentLink, `SELECT id, test_id, equipment_id FROM test_equipment_links ORDER BY id`)
}

func (r *PostgresTestEquipmentLinkRepository) GetByID(ctx context.Context, id int) (models.TestEquipmentLink, error) {
	return queryOne(ctx, r.db, scanTestEquipmentLink, `SELECT id, test_id, equipment_id FROM test_equipment_links WHERE id = $1`, id)
}
