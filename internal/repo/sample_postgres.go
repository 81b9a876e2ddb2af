package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

type PostgresSampleRepository struct {
	db *sql.DB
}

func NewPostgresSampleRepository(db *sql.DB) *PostgresSampleRepository {
	return &PostgresSampleRepository{db: db}
}

const sampleColumns = `id, location_id, warehouse_id, sop_id, product_name, product_stage, quantity, time_received, sample_type, storage_conditions`

func scanSample(s scanner) (models.Sample, error) {
	var smp models.Sample
	err := s.Scan(&smp.ID, &smp.LocationID, &smp.WarehouseID, &smp.SOPID, &smp.ProductName, &smp.ProductStage,
		&smp.Quantity, &smp.TimeReceived, &smp.SampleType, &smp.StorageConditions)
	return smp, err
}

func (r *PostgresSampleRepository) Create(ctx context.Context, s models.Sample) (models.Sample, error) {
	query := `INSERT INTO samples (location_id, warehouse_id, sop_id, product_name, product_stage, quantity, time_received, sample_type, storage_conditions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, s.LocationID, s.WarehouseID, s.SOPID, s.ProductName, s.ProductStage,
		s.Quantity, s.TimeReceived.UTC(), string(s.SampleType), s.StorageConditions)
	if err != nil {
		return models.Sample{}, fmt.Errorf("failed to insert sample: %w", err)
	}
	s.ID = id
	return s, nil
}

func (r *PostgresSampleRepository) GetAll(ctx context.Context) ([]models.Sample, error) {
	return queryAll(ctx, r.db, scanSample, `SELECT `+sampleColumns+` FROM samples ORDER BY id`)
}

func (r *PostgresSampleRepository) GetByID(ctx context.Context, id int) (models.Sample, error) {
	return queryOne(ctx, r.db, scanSample, `SELECT `+sampleColumns+` FROM samples WHERE id = $1`, id)
}

type PostgresTestRepository struct {
	db *sql.DB
}

func NewPostgresTestRepository(db *sql.DB) *PostgresTestRepository {
	return &PostgresTestRepository{db: db}
}

const testColumns = `id, user_account_id, sop_id, min_acceptable_result, max_acceptable_result`

func scanTest(s scanner) (models.Test, error) {
	var t models.Test
	err := s.Scan(&t.ID, &t.UserAccountID, &t.SOPID, &t.MinAcceptableResult, &t.MaxAcceptableResult)
	return t, err
}

func (r *PostgresTestRepository) Create(ctx context.Context, t models.Test) (models.Test, error) {
	query := `INSERT INTO tests (user_account_id, sop_id, min_acceptable_result, max_acceptable_result) VALUES ($1, $2, $3, $4) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, t.UserAccountID, t.SOPID, t.MinAcceptableResult, t.MaxAcceptableResult)
	if err != nil {
		return models.Test{}, fmt.Errorf("failed to insert test: %w", err)
	}
	t.ID = id
	return t, nil
}

func (r *PostgresTestRepository) GetAll(ctx context.Context) ([]models.Test, error) {
	return queryAll(ctx, r.db, scanTest, `SELECT `+testColumns+` FROM tests ORDER BY id`)
}

func (r *PostgresTestRepository) GetByID(ctx context.Context, id int) (models.Test, error) {
	return queryOne(ctx, r.db, scanTest, `SELECT `+testColumns+` FROM tests WHERE id = $1`, id)
}

type PostgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) *PostgresResultRepository {
	return &PostgresResultRepository{db: db}
}

const resultColumns = `id, sample_id, test_id, testing_analyst, reviewing_analyst, test_result, deadline, pass_or_fail`

func scanResult(s scanner) (models.Result, error) {
	var res models.Result
	err := s.Scan(&res.ID, &res.SampleID, &res.TestID, &res.TestingAnalyst, &res.ReviewingAnalyst,
		&res.TestResult, &res.Deadline, &res.PassOrFail)
	return res, err
}

func (r *PostgresResultRepository) Create(ctx context.Context, res models.Result) (models.Result, error) {
	query := `INSERT INTO sample_test_links (sample_id, test_id, testing_analyst, reviewing_analyst, test_result, deadline, pass_or_fail)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, res.SampleID, res.TestID, res.TestingAnalyst, res.ReviewingAnalyst,
		res.TestResult, res.Deadline.UTC(), res.PassOrFail)
	if err != nil {
		return models.Result{}, fmt.Errorf("failed to insert result: %w", err)
	}
	res.ID = id
	return res, nil
}

func (r *PostgresResultRepository) GetAll(ctx context.Context) ([]models.Result, error) {
	return r.Filter(ctx, ResultFilter{})
}

func (r *PostgresResultRepository) GetByID(ctx context.Context, id int) (models.Result, error) {
	return queryOne(ctx, r.db, scanResult, `SELECT `+resultColumns+` FROM sample_test_links WHERE id = $1`, id)
}

func (r *PostgresResultRepository) Filter(ctx context.Context, rf ResultFilter) ([]models.Result, error) {
	whereClause, args := buildResultWhereClause(rf)
	query := fmt.Sprintf("SELECT %s FROM sample_test_links %s ORDER BY id", resultColumns, whereClause)
	return queryAll(ctx, r.db, scanResult, query, args...)
}

// buildResultWhereClause constructs the WHERE clause and returns arguments
func buildResultWhereClause(rf ResultFilter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	argIndex := 1

	if rf.SampleID != nil {
		whereClause += fmt.Sprintf(" AND sample_id = $%d", argIndex)
		args = append(args, *rf.SampleID)
		argIndex++
	}
	if rf.TestID != nil {
		whereClause += fmt.Sprintf(" AND test_id = $%d", argIndex)
		args = append(args, *rf.TestID)
		argIndex++
	}
	if rf.PassOrFail != nil {
		whereClause += fmt.Sprintf(" AND pass_or_fail = $%d", argIndex)
		args = append(args, *rf.PassOrFail)
	}

	return whereClause, args
}
