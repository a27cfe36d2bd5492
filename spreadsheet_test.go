package rcheckbook

import (
	"bytes"
	"testing"
	"time"

	"github.com/bryceac/rcheckbook/date"
)

func spreadsheetLedger() *Ledger {
	return NewLedger(
		record("A", date.New(2024, time.January, 1), Deposit, 100, "Opening Balance"),
		record("B", date.New(2024, time.January, 5), Withdrawal, 30.25, "Utilities"),
	)
}

func assertSpreadsheetRoundTrip(t *testing.T, got []Record, ledger *Ledger) {
	t.Helper()
	want := ledger.Records()
	if len(got) != len(want) {
		t.Fatalf("round-trip has %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("record %d round-trip = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestODSRoundTrip(t *testing.T) {
	ledger := spreadsheetLedger()

	var buf bytes.Buffer
	if err := encodeODS(&buf, ledger.Records(), ledger.RunningBalances()); err != nil {
		t.Fatalf("encodeODS() returned an unexpected error: %v", err)
	}
	got, err := decodeODS(&buf)
	if err != nil {
		t.Fatalf("decodeODS() returned an unexpected error: %v", err)
	}
	assertSpreadsheetRoundTrip(t, got, ledger)
}

func TestDecodeODSRejectsNonZip(t *testing.T) {
	if _, err := decodeODS(bytes.NewReader([]byte("plain text, not a document"))); err == nil {
		t.Error("decodeODS() accepted a non-zip stream")
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	ledger := spreadsheetLedger()

	var buf bytes.Buffer
	if err := encodeXLSX(&buf, ledger.Records(), ledger.RunningBalances()); err != nil {
		t.Fatalf("encodeXLSX() returned an unexpected error: %v", err)
	}
	got, err := decodeXLSX(&buf)
	if err != nil {
		t.Fatalf("decodeXLSX() returned an unexpected error: %v", err)
	}
	assertSpreadsheetRoundTrip(t, got, ledger)
}
