package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/credittrail/credittrail"
	"github.com/google/subcommands"
)

type addTxCmd struct {
	personID   string
	locationID string
	amount     string
	item       string
	repayment  bool
	notes      string
	image      string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a credit or repayment" }
func (*addTxCmd) Usage() string {
	return `ctrail add-tx -person <id> -location <id> -amount <n> [-item <name>] [-repayment] [-notes <text>] [-image <uri>]

  Records a transaction. By default it is a credit (value lent to the
  person); -repayment records value received back. -item marks an item
  transaction instead of money.
`
}

func (t *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.personID, "person", "", "The person's id.")
	f.StringVar(&t.locationID, "location", "", "The location's id.")
	f.StringVar(&t.amount, "amount", "", "The amount, a positive decimal.")
	f.StringVar(&t.item, "item", "", "Name of the item, for item transactions.")
	f.BoolVar(&t.repayment, "repayment", false, "Record a repayment instead of a credit.")
	f.StringVar(&t.notes, "notes", "", "Optional notes.")
	f.StringVar(&t.image, "image", "", "Optional image reference (data-URI or URL).")
}

func (t *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := credittrail.ParseAmount(t.amount)
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %w", t.amount, err))
	}

	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	kind := credittrail.KindMoney
	if t.item != "" {
		kind = credittrail.KindItem
	}
	tx := credittrail.Transaction{
		ID:         credittrail.NewID(),
		PersonID:   t.personID,
		LocationID: t.locationID,
		Kind:       kind,
		Amount:     amount,
		ItemName:   t.item,
		OccurredAt: time.Now(),
		IsCredit:   !t.repayment,
		Notes:      t.notes,
		ImageRef:   t.image,
	}
	if _, err := store.Apply(credittrail.AddTransaction{Transaction: tx}); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}

type updateTxCmd struct {
	id        string
	amount    string
	item      string
	repayment bool
	notes     string
}

func (*updateTxCmd) Name() string     { return "update-tx" }
func (*updateTxCmd) Synopsis() string { return "replace a recorded transaction" }
func (*updateTxCmd) Usage() string {
	return `ctrail update-tx -id <id> [-amount <n>] [-item <name>] [-repayment] [-notes <text>]

  Replaces the transaction with the given id. The original date is kept.
  Omitted flags keep the stored values; pass -repayment to make the
  transaction a repayment, -repayment=false to make it a credit.
`
}

func (t *updateTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.id, "id", "", "The transaction's id.")
	f.StringVar(&t.amount, "amount", "", "The new amount, a positive decimal.")
	f.StringVar(&t.item, "item", "", "New item name, for item transactions.")
	f.BoolVar(&t.repayment, "repayment", false, "Make the transaction a repayment.")
	f.StringVar(&t.notes, "notes", "", "New notes.")
}

// merge overlays the flags the user actually set onto the stored
// transaction. Omitted flags keep the stored values, so an omitted
// -repayment never flips a repayment back into a credit.
func (t *updateTxCmd) merge(tx credittrail.Transaction, f *flag.FlagSet) (credittrail.Transaction, error) {
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "amount":
			amount, perr := credittrail.ParseAmount(t.amount)
			if perr != nil {
				err = fmt.Errorf("invalid amount %q: %w", t.amount, perr)
				return
			}
			tx.Amount = amount
		case "item":
			tx.Kind = credittrail.KindItem
			tx.ItemName = t.item
		case "notes":
			tx.Notes = t.notes
		case "repayment":
			tx.IsCredit = !t.repayment
		}
	})
	return tx, err
}

func (t *updateTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	tx, ok := store.Current().FindTransaction(t.id)
	if !ok {
		return fail(fmt.Errorf("no transaction with id %q", t.id))
	}
	tx, err = t.merge(tx, f)
	if err != nil {
		return fail(err)
	}

	if _, err := store.Apply(credittrail.UpdateTransaction{Transaction: tx}); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}

type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `ctrail delete-tx -id <id>

  Deletes the transaction and reverses its contribution to the dashboard.
`
}

func (t *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.id, "id", "", "The transaction's id.")
}

func (t *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := openStore()
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	if _, err := store.Apply(credittrail.DeleteTransaction{ID: t.id}); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted transaction %s\n", t.id)
	return subcommands.ExitSuccess
}
