package cmd

import (
	"flag"
	"testing"
	"time"

	"github.com/credittrail/credittrail"
)

func storedRepayment() credittrail.Transaction {
	return credittrail.Transaction{
		ID:         "t1",
		PersonID:   "p1",
		LocationID: "l1",
		Kind:       credittrail.KindMoney,
		Amount:     credittrail.A(20),
		OccurredAt: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
		IsCredit:   false,
		Notes:      "lunch",
	}
}

func parseUpdateTx(t *testing.T, args ...string) (*updateTxCmd, *flag.FlagSet) {
	t.Helper()
	cmd := &updateTxCmd{}
	f := flag.NewFlagSet("update-tx", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cmd, f
}

func TestUpdateTxMerge_OmittedRepaymentKeepsDirection(t *testing.T) {
	cmd, f := parseUpdateTx(t, "-id", "t1", "-amount", "30")

	got, err := cmd.merge(storedRepayment(), f)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsCredit {
		t.Error("updating the amount alone flipped a repayment into a credit")
	}
	if !got.Amount.Equal(credittrail.A(30)) {
		t.Errorf("amount = %s, want 30", got.Amount.Decimal())
	}
	if got.Notes != "lunch" {
		t.Errorf("notes = %q, want stored value kept", got.Notes)
	}
}

func TestUpdateTxMerge_RepaymentFlag(t *testing.T) {
	stored := storedRepayment()
	stored.IsCredit = true

	cmd, f := parseUpdateTx(t, "-id", "t1", "-repayment")
	got, err := cmd.merge(stored, f)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsCredit {
		t.Error("-repayment should make the transaction a repayment")
	}

	cmd, f = parseUpdateTx(t, "-id", "t1", "-repayment=false")
	got, err = cmd.merge(storedRepayment(), f)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsCredit {
		t.Error("-repayment=false should make the transaction a credit")
	}
}

func TestUpdateTxMerge_ItemAndNotes(t *testing.T) {
	cmd, f := parseUpdateTx(t, "-id", "t1", "-item", "book", "-notes", "birthday")

	got, err := cmd.merge(storedRepayment(), f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != credittrail.KindItem || got.ItemName != "book" {
		t.Errorf("kind = %s item = %q", got.Kind, got.ItemName)
	}
	if got.Notes != "birthday" {
		t.Errorf("notes = %q", got.Notes)
	}
	if got.IsCredit {
		t.Error("direction changed without -repayment")
	}
	if !got.Amount.Equal(credittrail.A(20)) {
		t.Errorf("amount = %s, want stored value kept", got.Amount.Decimal())
	}
}

func TestUpdateTxMerge_InvalidAmount(t *testing.T) {
	cmd, f := parseUpdateTx(t, "-id", "t1", "-amount", "abc")

	if _, err := cmd.merge(storedRepayment(), f); err == nil {
		t.Error("expected an error for a non-decimal amount")
	}
}
