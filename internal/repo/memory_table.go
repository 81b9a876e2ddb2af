package repo

import "sync"

// memoryTable is an id-ordered slice of rows guarded by a mutex.
type memoryTable[T any] struct {
	mu     sync.RWMutex
	rows   []T
	nextID int
	id     func(*T) *int
}

func newMemoryTable[T any](id func(*T) *int) *memoryTable[T] {
	return &memoryTable[T]{rows: []T{}, nextID: 1, id: id}
}

// insert assigns the next id unless conflicts reports a clash with an existing row.
func (t *memoryTable[T]) insert(row T, conflicts func(existing T) bool) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conflicts != nil {
		for _, existing := range t.rows {
			if conflicts(existing) {
				var zero T
				return zero, ErrDuplicatedValueUnique
			}
		}
	}

	*t.id(&row) = t.nextID
	t.nextID++
	t.rows = append(t.rows, row)
	return row, nil
}

func (t *memoryTable[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *memoryTable[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if *t.id(&row) == id {
			return row, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func (t *memoryTable[T]) replace(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.rows {
		if *t.id(&t.rows[i]) == *t.id(&row) {
			t.rows[i] = row
			return nil
		}
	}
	return ErrNotFound
}

func (t *memoryTable[T]) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = []T{}
	t.nextID = 1
}
