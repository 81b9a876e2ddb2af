package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM samples),
			(SELECT COUNT(*) FROM sample_test_links),
			(SELECT COUNT(*) FROM sample_test_links WHERE pass_or_fail),
			(SELECT COUNT(*) FROM sample_test_links WHERE NOT pass_or_fail),
			(SELECT COUNT(*) FROM equipment WHERE in_use)
	`).Scan(&m.TotalSamples, &m.TotalResults, &m.PassingResults, &m.FailingResults, &m.EquipmentInUse)
	if err != nil {
		return m, fmt.Errorf("failed to count records: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT s.product_name, COUNT(*) AS cnt
		FROM sample_test_links l
		JOIN samples s ON l.sample_id = s.id
		GROUP BY s.id, s.product_name
		ORDER BY cnt DESC, s.id
		LIMIT 1
	`).Scan(&m.MostTestedSample.ProductName, &m.MostTestedSample.ResultCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("failed to find most tested sample: %w", err)
	}

	return m, nil
}
