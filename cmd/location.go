package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/credittrail/credittrail"
	"github.com/google/subcommands"
)

type addLocationCmd struct {
	name string
}

func (*addLocationCmd) Name() string     { return "add-location" }
func (*addLocationCmd) Synopsis() string { return "add a location to the ledger" }
func (*addLocationCmd) Usage() string {
	return `ctrail add-location -name <name>

  Adds a physical location where credits are exchanged.
`
}

func (l *addLocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.name, "name", "", "The location's name.")
}

func (l *addLocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	loc := credittrail.Location{ID: credittrail.NewID(), Name: l.name}
	if _, err := store.Apply(credittrail.AddLocation{Location: loc}); err != nil {
		return fail(err)
	}
	fmt.Printf("Added location %q with id %s\n", loc.Name, loc.ID)
	return subcommands.ExitSuccess
}

type deleteLocationCmd struct {
	id string
}

func (*deleteLocationCmd) Name() string { return "delete-location" }
func (*deleteLocationCmd) Synopsis() string {
	return "delete a location and all transactions referencing it"
}
func (*deleteLocationCmd) Usage() string {
	return `ctrail delete-location -id <id>

  Deletes the location, cascades to every transaction referencing it, and
  removes it from every person's location list.
`
}

func (l *deleteLocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.id, "id", "", "The location's id.")
}

func (l *deleteLocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.Apply(credittrail.DeleteLocation{ID: l.id}); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted location %s\n", l.id)
	return subcommands.ExitSuccess
}

type attachCmd struct {
	personID   string
	locationID string
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "associate a location with a person" }
func (*attachCmd) Usage() string {
	return `ctrail attach -person <id> -location <id>

  Adds a copy of the location to the person's location list. Attaching an
  already associated location is a no-op.
`
}

func (a *attachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.personID, "person", "", "The person's id.")
	f.StringVar(&a.locationID, "location", "", "The location's id.")
}

func (a *attachCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.Apply(credittrail.AttachLocation{PersonID: a.personID, LocationID: a.locationID}); err != nil {
		return fail(err)
	}
	fmt.Printf("Attached location %s to person %s\n", a.locationID, a.personID)
	return subcommands.ExitSuccess
}

type detachCmd struct {
	personID   string
	locationID string
}

func (*detachCmd) Name() string     { return "detach" }
func (*detachCmd) Synopsis() string { return "remove a location from a person" }
func (*detachCmd) Usage() string {
	return `ctrail detach -person <id> -location <id>

  Removes the location from the person's location list. Detaching an absent
  location is a no-op.
`
}

func (d *detachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.personID, "person", "", "The person's id.")
	f.StringVar(&d.locationID, "location", "", "The location's id.")
}

func (d *detachCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.Apply(credittrail.DetachLocation{PersonID: d.personID, LocationID: d.locationID}); err != nil {
		return fail(err)
	}
	fmt.Printf("Detached location %s from person %s\n", d.locationID, d.personID)
	return subcommands.ExitSuccess
}
