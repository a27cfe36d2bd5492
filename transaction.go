// Package rcheckbook implements a personal checkbook register: a SQLite-backed
// ledger of dated transactions with categories, derived running balances, and
// converters to and from external bookkeeping formats.
package rcheckbook

import (
	"fmt"
	"strings"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction relative to the account.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
)

func (t TransactionType) String() string { return string(t) }

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(s) {
	case "deposit":
		return Deposit, nil
	case "withdrawal", "withdraw":
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is the canonical in-memory form of one ledger entry. The amount
// is always a non-negative magnitude; direction is carried by Type alone.
type Transaction struct {
	Date        date.Date       `json:"date"`
	CheckNumber int             `json:"check_number,omitempty"` // 0 means no check
	Category    string          `json:"category,omitempty"`     // "" means uncategorized
	Vendor      string          `json:"vendor"`
	Memo        string          `json:"memo,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Reconciled  bool            `json:"is_reconciled,omitempty"`
}

// SignedAmount is the single place the direction enum is turned into a sign:
// the amount itself for deposits, negated for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DisplayCategory returns the category name, or "Uncategorized" when none is
// set. The placeholder is display-only and never stored.
func (t Transaction) DisplayCategory() string {
	if t.Category == "" {
		return "Uncategorized"
	}
	return t.Category
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount %s is negative: direction belongs on the transaction type", t.Amount)
	}
	if t.CheckNumber < 0 {
		return fmt.Errorf("check number %d is negative", t.CheckNumber)
	}
	switch t.Type {
	case Deposit, Withdrawal:
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}

// Equal reports whether two transactions are semantically identical.
// Amounts compare by value, categories case-insensitively.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.CheckNumber == o.CheckNumber &&
		strings.EqualFold(t.Category, o.Category) &&
		t.Vendor == o.Vendor &&
		t.Memo == o.Memo &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Reconciled == o.Reconciled
}
