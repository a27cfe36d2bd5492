package cmd

import (
	"flag"
	"testing"
	"time"

	"github.com/bryceac/rcheckbook/date"
)

func parseUpdateFlags(t *testing.T, args ...string) (*updateCmd, *flag.FlagSet) {
	t.Helper()
	c := &updateCmd{}
	f := flag.NewFlagSet("update", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse() returned an unexpected error: %v", err)
	}
	return c, f
}

func TestUpdatePatchOnlySetFlags(t *testing.T) {
	c, f := parseUpdateFlags(t, "-id", "A", "-memo", "groceries", "-date", "2024-06-01")

	patch, err := c.patch(f)
	if err != nil {
		t.Fatalf("patch() returned an unexpected error: %v", err)
	}
	if patch.Memo == nil || *patch.Memo != "groceries" {
		t.Errorf("memo = %v, want groceries", patch.Memo)
	}
	if patch.Date == nil || *patch.Date != date.New(2024, time.June, 1) {
		t.Errorf("date = %v, want 2024-06-01", patch.Date)
	}
	if patch.Vendor != nil || patch.Amount != nil || patch.Type != nil || patch.CheckNumber != nil || patch.Reconciled != nil {
		t.Errorf("unset flags leaked into the patch: %+v", patch)
	}
}

func TestUpdatePatchExplicitZeroCheckNumber(t *testing.T) {
	c, f := parseUpdateFlags(t, "-id", "A", "-check", "0")

	patch, err := c.patch(f)
	if err != nil {
		t.Fatalf("patch() returned an unexpected error: %v", err)
	}
	if patch.CheckNumber == nil || *patch.CheckNumber != 0 {
		t.Errorf("an explicit -check 0 should clear the check number, got %v", patch.CheckNumber)
	}
}

func TestUpdatePatchReconciledFlags(t *testing.T) {
	c, f := parseUpdateFlags(t, "-id", "A", "-not-r")
	patch, err := c.patch(f)
	if err != nil {
		t.Fatalf("patch() returned an unexpected error: %v", err)
	}
	if patch.Reconciled == nil || *patch.Reconciled {
		t.Errorf("-not-r should clear the reconciled flag, got %v", patch.Reconciled)
	}
}

func TestUpdatePatchRejectsBadValues(t *testing.T) {
	tests := [][]string{
		{"-id", "A", "-date", "junk"},
		{"-id", "A", "-amount", "ten"},
		{"-id", "A", "-type", "transfer"},
	}
	for _, args := range tests {
		c, f := parseUpdateFlags(t, args...)
		if _, err := c.patch(f); err == nil {
			t.Errorf("patch(%v) accepted a bad value", args)
		}
	}
}
