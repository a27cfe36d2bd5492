package rcheckbook

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"
)

func TestEncodeRecordsRoundTrip(t *testing.T) {
	records := testRecords()

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, records); err != nil {
		t.Fatalf("EncodeRecords() returned an unexpected error: %v", err)
	}
	got, err := DecodeRecords(&buf)
	if err != nil {
		t.Fatalf("DecodeRecords() returned an unexpected error: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("round-trip has %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if !got[i].Equal(records[i]) {
			t.Errorf("record %d round-trip = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestEncodeRecordsAmountsAreBareNumbers(t *testing.T) {
	rec := record("A", date.New(2024, time.January, 1), Deposit, 100.50, "")

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, []Record{rec}); err != nil {
		t.Fatalf("EncodeRecords() returned an unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), `"100.5"`) {
		t.Errorf("amount was quoted:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"amount": 100.5`) {
		t.Errorf("amount missing or not numeric:\n%s", buf.String())
	}
}

func TestEncodeRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeRecords(&buf, nil); err != nil {
		t.Fatalf("EncodeRecords(nil) returned an unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("EncodeRecords(nil) = %q, want an empty array", buf.String())
	}
}

func TestDecodeRecordsRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "this is not json"},
		{"missing id", `[{"transaction": {"date": "2024-01-01", "vendor": "x", "amount": 5, "type": "deposit"}}]`},
		{"unknown type", `[{"id": "A", "transaction": {"date": "2024-01-01", "vendor": "x", "amount": 5, "type": "transfer"}}]`},
		{"negative amount", `[{"id": "A", "transaction": {"date": "2024-01-01", "vendor": "x", "amount": -5, "type": "deposit"}}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeRecords(strings.NewReader(tc.input)); err == nil {
				t.Error("DecodeRecords() accepted a bad document")
			}
		})
	}
}

func TestDecodeRecordsOmittedFields(t *testing.T) {
	input := `[{"id": "FF04C3DC-F0FE-472E-8737-0F4034C049F0", "transaction": {"date": "2024-03-04", "vendor": "Sam Hill Credit Union", "amount": 500, "type": "deposit"}}]`
	records, err := DecodeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRecords() returned an unexpected error: %v", err)
	}
	got := records[0].Transaction
	if got.CheckNumber != 0 || got.Category != "" || got.Memo != "" || got.Reconciled {
		t.Errorf("omitted fields did not default to zero values: %+v", got)
	}
	if !got.Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("amount = %s, want 500", got.Amount)
	}
}
