package yard

import "errors"

var (
	// ErrNotFound is returned for unknown dock numbers or waiting-entry ids.
	ErrNotFound = errors.New("not found")
	// ErrOutOfRange is returned for dock numbers outside the configured range.
	ErrOutOfRange = errors.New("dock number out of range")
	// ErrInvalidState is returned when an operation does not apply to the
	// current dock state, e.g. marking arrival on an unoccupied dock.
	ErrInvalidState = errors.New("invalid state")
	// ErrImportFormat is returned by importer adapters when a schedule file
	// lacks the required columns. It fails the whole batch.
	ErrImportFormat = errors.New("import format error")
)
