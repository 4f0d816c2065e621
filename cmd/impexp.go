package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/credittrail/credittrail"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a backup file" }
func (*exportCmd) Usage() string {
	return `ctrail export [-o <file>]

  Writes the whole ledger state to a JSON backup file. The default filename
  is stamped with the current date, e.g. credit-trail-backup-2026-09-01.json.
`
}

func (e *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.output, "o", "", "Output file (defaults to a dated backup filename).")
}

func (e *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	filename := e.output
	if filename == "" {
		filename = credittrail.BackupFilename(time.Now())
	}
	file, err := os.Create(filename)
	if err != nil {
		return fail(fmt.Errorf("could not create backup file %q: %w", filename, err))
	}
	defer file.Close()

	if err := credittrail.ExportSnapshot(file, store.Current()); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported ledger to %s\n", filename)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore the ledger from a backup file" }
func (*importCmd) Usage() string {
	return `ctrail import <file>

  Validates a JSON backup file and fully replaces the ledger state with it.
  The dashboard is recomputed from the imported transactions rather than
  trusted from the file. On failure the existing state is left untouched.
`
}
func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import expects exactly one backup file")
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	file, err := os.Open(filename)
	if err != nil {
		return fail(fmt.Errorf("could not open backup file %q: %w", filename, err))
	}
	defer file.Close()

	snap, err := credittrail.ImportSnapshot(file)
	if err != nil {
		return fail(err)
	}

	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if err := store.Restore(snap); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d people, %d locations, %d transactions from %s\n",
		len(snap.People), len(snap.Locations), len(snap.Transactions), filename)
	return subcommands.ExitSuccess
}
