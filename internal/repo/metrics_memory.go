package repo

import "context"

type InMemoryMetricsRepository struct {
	sampleRepo    SampleRepository
	resultRepo    ResultRepository
	equipmentRepo EquipmentRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	sampleRepo SampleRepository,
	resultRepo ResultRepository,
	equipmentRepo EquipmentRepository,
) {
	i.sampleRepo = sampleRepo
	i.resultRepo = resultRepo
	i.equipmentRepo = equipmentRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	samples, err := i.sampleRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalSamples = len(samples)

	results, err := i.resultRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalResults = len(results)

	perSample := make(map[int]int)
	for _, r := range results {
		if r.PassOrFail {
			m.PassingResults++
		} else {
			m.FailingResults++
		}
		perSample[r.SampleID]++
	}

	// ties go to the lowest sample id, matching the postgres ordering
	for _, s := range samples {
		if count := perSample[s.ID]; count > m.MostTestedSample.ResultCount {
			m.MostTestedSample = MostTestedSample{ProductName: s.ProductName, ResultCount: count}
		}
	}

	equipment, err := i.equipmentRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	for _, e := range equipment {
		if e.InUse {
			m.EquipmentInUse++
		}
	}

	return m, nil
}
