package cmd

import (
	"context"
	"flag"

	"github.com/credittrail/credittrail/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the aggregate totals" }
func (*dashboardCmd) Usage() string {
	return `ctrail dashboard

  Shows total credits, total repayments, the outstanding amount and the
  number of people tracked.
`
}
func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Dashboard(store.Current()))
	return subcommands.ExitSuccess
}

type peopleCmd struct {
	byLocation bool
}

func (*peopleCmd) Name() string     { return "people" }
func (*peopleCmd) Synopsis() string { return "list all people with their balances" }
func (*peopleCmd) Usage() string {
	return `ctrail people [-by-location]

  Lists everyone in the ledger with their locations and net balance.
  With -by-location, groups people under each location instead.
`
}

func (p *peopleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.byLocation, "by-location", false, "Group people under each location.")
}

func (p *peopleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if p.byLocation {
		printMarkdown(renderer.PeopleByLocation(store.Current()))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.People(store.Current()))
	return subcommands.ExitSuccess
}

type locationsCmd struct{}

func (*locationsCmd) Name() string     { return "locations" }
func (*locationsCmd) Synopsis() string { return "list all locations" }
func (*locationsCmd) Usage() string {
	return `ctrail locations

  Lists every location in the ledger with its transaction count.
`
}
func (*locationsCmd) SetFlags(*flag.FlagSet) {}

func (*locationsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Locations(store.Current()))
	return subcommands.ExitSuccess
}

type txCmd struct {
	personID string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `ctrail tx [-person <id>]

  Lists transactions, optionally filtered to one person.
`
}

func (t *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.personID, "person", "", "Only list this person's transactions.")
}

func (t *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	printMarkdown(renderer.Transactions(store.Current(), t.personID))
	return subcommands.ExitSuccess
}
