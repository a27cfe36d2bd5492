package rcheckbook

import (
	"strings"
	"testing"
	"time"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

func TestNewIDIsUppercase(t *testing.T) {
	id := NewID()
	if id != strings.ToUpper(id) {
		t.Errorf("NewID() = %q, want uppercase", id)
	}
	if id == NewID() {
		t.Error("NewID() repeated itself")
	}
}

func TestRecordEqual(t *testing.T) {
	tx := Transaction{
		Date:   date.New(2024, time.January, 1),
		Vendor: "Acme",
		Amount: decimal.NewFromInt(10),
		Type:   Deposit,
	}
	a := Record{ID: "ABC-123", Transaction: tx}
	b := Record{ID: "abc-123", Transaction: tx}
	if !a.Equal(b) {
		t.Error("ids differing only by case should compare equal")
	}

	b.Transaction.Memo = "changed"
	if a.Equal(b) {
		t.Error("records with different transactions compared equal")
	}

	c := Record{ID: "OTHER", Transaction: tx}
	if a.Equal(c) {
		t.Error("records with different ids compared equal")
	}
}
