package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

// Repository is the create-and-list surface shared by every resource.
type Repository[T any] interface {
	Create(ctx context.Context, record T) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
}

type (
	UserRepository      = Repository[models.UserAccount]
	LocationRepository  = Repository[models.Location]
	WarehouseRepository = Repository[models.Warehouse]
	EquipmentRepository = Repository[models.Equipment]
	SampleRepository    = Repository[models.Sample]
	TestRepository      = Repository[models.Test]

	MaintenanceLogRepository    = Repository[models.MaintenanceLog]
	ReagentRepository           = Repository[models.Reagent]
	TestReagentLinkRepository   = Repository[models.TestReagentLink]
	TestEquipmentLinkRepository = Repository[models.TestEquipmentLink]
)

// SOPRepository also supports edits, which are logged as version changes.
type SOPRepository interface {
	Repository[models.SOP]
	// Update replaces the SOP and records a VersionChange dated at when the
	// version number or effective date differ from the stored row.
	Update(ctx context.Context, sop models.SOP, at time.Time) (models.SOP, error)
	GetVersionChanges(ctx context.Context) ([]models.VersionChange, error)
}

type ResultRepository interface {
	Repository[models.Result]
	Filter(ctx context.Context, rf ResultFilter) ([]models.Result, error)
}
