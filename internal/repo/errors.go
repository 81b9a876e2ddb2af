package repo

import "errors"

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicatedValueUnique is returned when a unique column would be duplicated.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
	// ErrInvalidReference is returned when a foreign key points at a missing record.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
