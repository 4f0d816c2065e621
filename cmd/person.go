package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/credittrail/credittrail"
	"github.com/google/subcommands"
)

type addPersonCmd struct {
	name string
}

func (*addPersonCmd) Name() string     { return "add-person" }
func (*addPersonCmd) Synopsis() string { return "add a person to the ledger" }
func (*addPersonCmd) Usage() string {
	return `ctrail add-person -name <name>

  Adds a person to track credits and repayments for.
`
}

func (p *addPersonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "The person's name.")
}

func (p *addPersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	person := credittrail.Person{ID: credittrail.NewID(), Name: p.name}
	if _, err := store.Apply(credittrail.AddPerson{Person: person}); err != nil {
		return fail(err)
	}
	fmt.Printf("Added person %q with id %s\n", person.Name, person.ID)
	return subcommands.ExitSuccess
}

type updatePersonCmd struct {
	id   string
	name string
}

func (*updatePersonCmd) Name() string     { return "update-person" }
func (*updatePersonCmd) Synopsis() string { return "rename a person" }
func (*updatePersonCmd) Usage() string {
	return `ctrail update-person -id <id> -name <name>

  Replaces the person record with the given id. Only the name is
  user-editable; associated locations and transactions are preserved.
`
}

func (p *updatePersonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "The person's id.")
	f.StringVar(&p.name, "name", "", "The new name.")
}

func (p *updatePersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	person, ok := store.Current().FindPerson(p.id)
	if !ok {
		return fail(fmt.Errorf("no person with id %q", p.id))
	}
	person.Name = p.name
	if _, err := store.Apply(credittrail.UpdatePerson{Person: person}); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated person %s\n", person.ID)
	return subcommands.ExitSuccess
}

type deletePersonCmd struct {
	id string
}

func (*deletePersonCmd) Name() string     { return "delete-person" }
func (*deletePersonCmd) Synopsis() string { return "delete a person and all their transactions" }
func (*deletePersonCmd) Usage() string {
	return `ctrail delete-person -id <id>

  Deletes the person and cascades to every transaction recorded for them,
  adjusting the dashboard totals accordingly.
`
}

func (p *deletePersonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "The person's id.")
}

func (p *deletePersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.Apply(credittrail.DeletePerson{ID: p.id}); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted person %s\n", p.id)
	return subcommands.ExitSuccess
}
