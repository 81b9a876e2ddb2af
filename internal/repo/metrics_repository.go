package repo

import "context"

type MostTestedSample struct {
	ProductName string `json:"product_name"`
	ResultCount int    `json:"result_count"`
}

type Metrics struct {
	TotalSamples     int              `json:"total_samples"`
	TotalResults     int              `json:"total_results"`
	PassingResults   int              `json:"passing_results"`
	FailingResults   int              `json:"failing_results"`
	EquipmentInUse   int              `json:"equipment_in_use"`
	MostTestedSample MostTestedSample `json:"most_tested_sample"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
