package handlers

import (
	"context"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	repo "github.com/rogerio-castellano/lims-tracker/internal/repo"
)

// ListCache stores serialized list responses per resource. GetList reports the
// resource's current generation; SetList must be given the generation observed
// before the list was read so that a concurrent Invalidate wins.
type ListCache interface {
	GetList(ctx context.Context, resource string) (payload []byte, gen int64, ok bool, err error)
	SetList(ctx context.Context, resource string, gen int64, payload []byte) error
	Invalidate(ctx context.Context, resources ...string) error
}

var (
	userRepo      repo.UserRepository
	sopRepo       repo.SOPRepository
	locationRepo  repo.LocationRepository
	warehouseRepo repo.WarehouseRepository
	equipmentRepo repo.EquipmentRepository
	sampleRepo    repo.SampleRepository
	testRepo      repo.TestRepository
	resultRepo    repo.ResultRepository
	metricsRepo   repo.MetricsRepository

	maintenanceLogRepo    repo.MaintenanceLogRepository
	reagentRepo           repo.ReagentRepository
	testReagentLinkRepo   repo.TestReagentLinkRepository
	testEquipmentLinkRepo repo.TestEquipmentLinkRepository

	listCache   ListCache
	tokenIssuer *auth.TokenIssuer
	operator    struct{ username, passwordHash string }

	now = time.Now
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSOPRepo(r repo.SOPRepository) {
	sopRepo = r
}

func SetLocationRepo(r repo.LocationRepository) {
	locationRepo = r
}

func SetWarehouseRepo(r repo.WarehouseRepository) {
	warehouseRepo = r
}

func SetEquipmentRepo(r repo.EquipmentRepository) {
	equipmentRepo = r
}

func SetSampleRepo(r repo.SampleRepository) {
	sampleRepo = r
}

func SetTestRepo(r repo.TestRepository) {
	testRepo = r
}

func SetResultRepo(r repo.ResultRepository) {
	resultRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

// SetLabRecordRepos installs the maintenance, reagent and test link repositories.
func SetLabRecordRepos(logs repo.MaintenanceLogRepository, reagents repo.ReagentRepository,
	reagentLinks repo.TestReagentLinkRepository, equipmentLinks repo.TestEquipmentLinkRepository) {
	maintenanceLogRepo = logs
	reagentRepo = reagents
	testReagentLinkRepo = reagentLinks
	testEquipmentLinkRepo = equipmentLinks
}

// SetListCache enables list caching; nil disables it.
func SetListCache(c ListCache) {
	listCache = c
}

// SetOperator configures the account accepted by /login.
func SetOperator(issuer *auth.TokenIssuer, username, passwordHash string) {
	tokenIssuer = issuer
	operator.username = username
	operator.passwordHash = passwordHash
}

// SetStore installs every repository of the store.
func SetStore(s repo.Store) {
	SetUserRepo(s.Users)
	SetSOPRepo(s.SOPs)
	SetLocationRepo(s.Locations)
	SetWarehouseRepo(s.Warehouses)
	SetEquipmentRepo(s.Equipment)
	SetSampleRepo(s.Samples)
	SetTestRepo(s.Tests)
	SetResultRepo(s.Results)
	SetMetricsRepo(s.Metrics)
	SetLabRecordRepos(s.MaintenanceLogs, s.Reagents, s.TestReagentLinks, s.TestEquipmentLinks)
}
