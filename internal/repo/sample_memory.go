package repo

import (
	"context"

	"github.com/rogerio-castellano/lims-tracker/internal/models"
)

// InMemorySampleRepository is an in-memory implementation of SampleRepository.
type InMemorySampleRepository struct {
	table *memoryTable[models.Sample]
}

func NewInMemorySampleRepository() *InMemorySampleRepository {
	return &InMemorySampleRepository{
		table: newMemoryTable(func(s *models.Sample) *int { return &s.ID }),
	}
}

func (r *InMemorySampleRepository) Create(_ context.Context, s models.Sample) (models.Sample, error) {
	return r.table.insert(s, nil)
}

func (r *InMemorySampleRepository) GetAll(context.Context) ([]models.Sample, error) {
	return r.table.all(), nil
}

func (r *InMemorySampleRepository) GetByID(_ context.Context, id int) (models.Sample, error) {
	return r.table.get(id)
}

func (r *InMemorySampleRepository) Clear() {
	r.table.clear()
}

// InMemoryTestRepository is an in-memory implementation of TestRepository.
type InMemoryTestRepository struct {
	table *memoryTable[models.Test]
}

func NewInMemoryTestRepository() *InMemoryTestRepository {
	return &InMemoryTestRepository{
		table: newMemoryTable(func(t *models.Test) *int { return &t.ID }),
	}
}

// Create enforces one test per SOP.
func (r *InMemoryTestRepository) Create(_ context.Context, t models.Test) (models.Test, error) {
	return r.table.insert(t, func(existing models.Test) bool {
		return existing.SOPID == t.SOPID
	})
}

func (r *InMemoryTestRepository) GetAll(context.Context) ([]models.Test, error) {
	return r.table.all(), nil
}

func (r *InMemoryTestRepository) GetByID(_ context.Context, id int) (models.Test, error) {
	return r.table.get(id)
}

func (r *InMemoryTestRepository) Clear() {
	r.table.clear()
}

// InMemoryResultRepository is an in-memory implementation of ResultRepository.
type InMemoryResultRepository struct {
	table *memoryTable[models.Result]
}

func NewInMemoryResultRepository() *InMemoryResultRepository {
	return &InMemoryResultRepository{
		table: newMemoryTable(func(r *models.Result) *int { return &r.ID }),
	}
}

func (r *InMemoryResultRepository) Create(_ context.Context, res models.Result) (models.Result, error) {
	return r.table.insert(res, nil)
}

func (r *InMemoryResultRepository) GetAll(context.Context) ([]models.Result, error) {
	return r.table.all(), nil
}

func (r *InMemoryResultRepository) GetByID(_ context.Context, id int) (models.Result, error) {
	return r.table.get(id)
}

// Filter returns matching results in id order.
func (r *InMemoryResultRepository) Filter(_ context.Context, rf ResultFilter) ([]models.Result, error) {
	filtered := []models.Result{}
	for _, res := range r.table.all() {
		if rf.matches(res) {
			filtered = append(filtered, res)
		}
	}
	return filtered, nil
}

func (r *InMemoryResultRepository) Clear() {
	r.table.clear()
}
