package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type verifyCmd struct{}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "check the dashboard against a full recomputation" }
func (*verifyCmd) Usage() string {
	return `ctrail verify

  Recomputes the dashboard by folding over every transaction and compares it
  with the incrementally maintained one. Exits non-zero on drift.
`
}
func (*verifyCmd) SetFlags(*flag.FlagSet) {}

func (*verifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := store.Verify(); err != nil {
		return fail(err)
	}
	fmt.Println("Dashboard is consistent with the transaction ledger.")
	return subcommands.ExitSuccess
}
