package repo

import "database/sql"

// Store groups one repository per resource over a single backend.
type Store struct {
	Users      UserRepository
	SOPs       SOPRepository
	Locations  LocationRepository
	Warehouses WarehouseRepository
	Equipment  EquipmentRepository
	Samples    SampleRepository
	Tests      TestRepository
	Results    ResultRepository
	Metrics    MetricsRepository

	MaintenanceLogs    MaintenanceLogRepository
	Reagents           ReagentRepository
	TestReagentLinks   TestReagentLinkRepository
	TestEquipmentLinks TestEquipmentLinkRepository
}

func NewInMemoryStore() Store {
	samples := NewInMemorySampleRepository()
	results := NewInMemoryResultRepository()
	equipment := NewInMemoryEquipmentRepository()

	metrics := NewInMemoryMetricsRepository()
	metrics.SetRepositories(samples, results, equipment)

	return Store{
		Users:      NewInMemoryUserRepository(),
		SOPs:       NewInMemorySOPRepository(),
		Locations:  NewInMemoryLocationRepository(),
		Warehouses: NewInMemoryWarehouseRepository(),
		Equipment:  equipment,
		Samples:    samples,
		Tests:      NewInMemoryTestRepository(),
		Results:    results,
		Metrics:    metrics,

		MaintenanceLogs:    NewInMemoryMaintenanceLogRepository(),
		Reagents:           NewInMemoryReagentRepository(),
		TestReagentLinks:   NewInMemoryTestReagentLinkRepository(),
		TestEquipmentLinks: NewInMemoryTestEquipmentLinkRepository(),
	}
}

func NewPostgresStore(db *sql.DB) Store {
	return Store{
		Users:      NewPostgresUserRepository(db),
		SOPs:       NewPostgresSOPRepository(db),
		Locations:  NewPostgresLocationRepository(db),
		Warehouses: NewPostgresWarehouseRepository(db),
		Equipment:  NewPostgresEquipmentRepository(db),
		Samples:    NewPostgresSampleRepository(db),
		Tests:      NewPostgresTestRepository(db),
		Results:    NewPostgresResultRepository(db),
		Metrics:    NewPostgresMetricsRepository(db),

		MaintenanceLogs:    NewPostgresMaintenanceLogRepository(db),
		Reagents:           NewPostgresReagentRepository(db),
		TestReagentLinks:   NewPostgresTestReagentLinkRepository(db),
		TestEquipmentLinks: NewPostgresTestEquipmentLinkRepository(db),
	}
}
