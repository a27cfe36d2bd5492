package rcheckbook

import (
	"strings"

	"github.com/google/uuid"
)

// Record is a Transaction plus its store-assigned identifier. The identifier
// is generated at creation and never changes; updates mutate only the nested
// Transaction.
type Record struct {
	ID          string      `json:"id"`
	Transaction Transaction `json:"transaction"`
}

// NewRecord wraps a transaction in a record with a fresh identifier.
func NewRecord(t Transaction) Record {
	return Record{ID: NewID(), Transaction: t}
}

// NewID returns a fresh record identifier. Identifiers are uppercase UUID
// strings, matching the register's historical id style; lookups are
// case-insensitive regardless.
func NewID() string {
	return strings.ToUpper(uuid.NewString())
}

// Equal reports whether two records have the same identifier (matched
// case-insensitively) and semantically identical transactions.
func (r Record) Equal(o Record) bool {
	return strings.EqualFold(r.ID, o.ID) && r.Transaction.Equal(o.Transaction)
}
