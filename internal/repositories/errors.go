package repositories

import "errors"

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = errors.New("requested record not found")

	// ErrDuplicateID is returned when seed data carries the same Id twice.
	ErrDuplicateID = errors.New("duplicate record id")
)
