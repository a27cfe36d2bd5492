package rcheckbook

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record or category lookup misses.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidDateFormat rejects a row whose date does not parse with the
	// register's date pattern.
	ErrInvalidDateFormat = errors.New("date must be in the YYYY-MM-DD format")

	// ErrAmbiguousTransactionType rejects a row that populates both the
	// credit and the debit column.
	ErrAmbiguousTransactionType = errors.New("cannot determine transaction type: only one of the credit and debit columns may hold a value")
)

// StorageError reports an I/O or constraint failure on the register store.
// It is fatal for the current operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage: %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// MalformedFileError reports a structural parse failure of an external file.
type MalformedFileError struct {
	Path string
	Err  error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed file %q: %v", e.Path, e.Err)
}
func (e *MalformedFileError) Unwrap() error { return e.Err }
