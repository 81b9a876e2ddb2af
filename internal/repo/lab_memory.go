package repo

import (
	"context"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

// InMemoryRepository is a Repository over a memoryTable for resources
// without uniqueness rules.
type InMemoryRepository[T any] struct {
	table *memoryTable[T]
}

func newInMemoryRepository[T any](id func(*T) *int) *InMemoryRepository[T] {
	return &InMemoryRepository[T]{table: newMemoryTable(id)}
}

func NewInMemoryMaintenanceLogRepository() *InMemoryRepository[models.MaintenanceLog] {
	return newInMemoryRepository(func(m *models.MaintenanceLog) *int { return &m.ID })
}

func NewInMemoryReagentRepository() *InMemoryRepository[models.Reagent] {
	return newInMemoryRepository(func(r *models.Reagent) *int { return &r.ID })
}

func NewInMemoryTestReagentLinkRepository() *InMemoryRepository[models.TestReagentLink] {
	return newInMemoryRepository(func(l *models.TestReagentLink) *int { return &l.ID })
}

func NewInMemoryTestEquipmentLinkRepository() *InMemoryRepository[models.TestEquipmentLink] {
	return newInMemoryRepository(func(l *models.TestEquipmentLink) *int { return &l.ID })
}

func (r *InMemoryRepository[T]) Create(_ context.Context, record T) (T, error) {
	return r.table.insert(record, nil)
}

func (r *InMemoryRepository[T]) GetAll(context.Context) ([]T, error) {
	return r.table.all(), nil
}

func (r *InMemoryRepository[T]) GetByID(_ context.Context, id int) (T, error) {
	return r.table.get(id)
}

func (r *InMemoryRepository[T]) Clear() {
	r.table.clear()
}
