package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	table *memoryTable[models.UserAccount]
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		table: newMemoryTable(func(u *models.UserAccount) *int { return &u.ID }),
	}
}

func (r *InMemoryUserRepository) Create(_ context.Context, u models.UserAccount) (models.UserAccount, error) {
	return r.table.insert(u, func(existing models.UserAccount) bool {
		return existing.AccountUsername == u.AccountUsername || strings.EqualFold(existing.Email, u.Email)
	})
}

func (r *InMemoryUserRepository) GetAll(context.Context) ([]models.UserAccount, error) {
	return r.table.all(), nil
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id int) (models.UserAccount, error) {
	return r.table.get(id)
}

func (r *InMemoryUserRepository) Clear() {
	r.table.clear()
}

// InMemorySOPRepository keeps SOPs and their version history in memory.
type InMemorySOPRepository struct {
	mu      sync.Mutex
	table   *memoryTable[models.SOP]
	changes *memoryTable[models.VersionChange]
}

func NewInMemorySOPRepository() *InMemorySOPRepository {
	return &InMemorySOPRepository{
		table:   newMemoryTable(func(s *models.SOP) *int { return &s.ID }),
		changes: newMemoryTable(func(c *models.VersionChange) *int { return &c.ID }),
	}
}

func (r *InMemorySOPRepository) Create(_ context.Context, s models.SOP) (models.SOP, error) {
	return r.table.insert(s, nil)
}

func (r *InMemorySOPRepository) GetAll(context.Context) ([]models.SOP, error) {
	return r.table.all(), nil
}

func (r *InMemorySOPRepository) GetByID(_ context.Context, id int) (models.SOP, error) {
	return r.table.get(id)
}

func (r *InMemorySOPRepository) Update(_ context.Context, s models.SOP, at time.Time) (models.SOP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, err := r.table.get(s.ID)
	if err != nil {
		return models.SOP{}, err
	}
	if models.VersionChanged(old, s) {
		if _, err := r.changes.insert(models.NewVersionChange(old, s, at), nil); err != nil {
			return models.SOP{}, err
		}
	}
	if err := r.table.replace(s); err != nil {
		return models.SOP{}, err
	}
	return s, nil
}

func (r *InMemorySOPRepository) GetVersionChanges(context.Context) ([]models.VersionChange, error) {
	return r.changes.all(), nil
}

func (r *InMemorySOPRepository) Clear() {
	r.table.clear()
	r.changes.clear()
}

// InMemoryLocationRepository is an in-memory implementation of LocationRepository.
type InMemoryLocationRepository struct {
	table *memoryTable[models.Location]
}

func NewInMemoryLocationRepository() *InMemoryLocationRepository {
	return &InMemoryLocationRepository{
		table: newMemoryTable(func(l *models.Location) *int { return &l.ID }),
	}
}

func (r *InMemoryLocationRepository) Create(_ context.Context, l models.Location) (models.Location, error) {
	return r.table.insert(l, nil)
}

func (r *InMemoryLocationRepository) GetAll(context.Context) ([]models.Location, error) {
	return r.table.all(), nil
}

func (r *InMemoryLocationRepository) GetByID(_ context.Context, id int) (models.Location, error) {
	return r.table.get(id)
}

func (r *InMemoryLocationRepository) Clear() {
	r.table.clear()
}

// InMemoryWarehouseRepository is an in-memory implementation of WarehouseRepository.
type InMemoryWarehouseRepository struct {
	table *memoryTable[models.Warehouse]
}

func NewInMemoryWarehouseRepository() *InMemoryWarehouseRepository {
	return &InMemoryWarehouseRepository{
		table: newMemoryTable(func(w *models.Warehouse) *int { return &w.ID }),
	}
}

func (r *InMemoryWarehouseRepository) Create(_ context.Context, w models.Warehouse) (models.Warehouse, error) {
	return r.table.insert(w, func(existing models.Warehouse) bool {
		return existing.WarehouseFacility == w.WarehouseFacility && existing.WarehouseCompany == w.WarehouseCompany
	})
}

func (r *InMemoryWarehouseRepository) GetAll(context.Context) ([]models.Warehouse, error) {
	return r.table.all(), nil
}

func (r *InMemoryWarehouseRepository) GetByID(_ context.Context, id int) (models.Warehouse, error) {
	return r.table.get(id)
}

func (r *InMemoryWarehouseRepository) Clear() {
	r.table.clear()
}

// InMemoryEquipmentRepository is an in-memory implementation of EquipmentRepository.
type InMemoryEquipmentRepository struct {
	table *memoryTable[models.Equipment]
}

func NewInMemoryEquipmentRepository() *InMemoryEquipmentRepository {
	return &InMemoryEquipmentRepository{
		table: newMemoryTable(func(e *models.Equipment) *int { return &e.ID }),
	}
}

func (r *InMemoryEquipmentRepository) Create(_ context.Context, e models.Equipment) (models.Equipment, error) {
	return r.table.insert(e, nil)
}

func (r *InMemoryEquipmentRepository) GetAll(context.Context) ([]models.Equipment, error) {
	return r.table.all(), nil
}

func (r *InMemoryEquipmentRepository) GetByID(_ context.Context, id int) (models.Equipment, error) {
	return r.table.get(id)
}

func (r *InMemoryEquipmentRepository) Clear() {
	r.table.clear()
}
