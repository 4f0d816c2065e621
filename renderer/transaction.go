package renderer

import (
	"bytes"

	"github.com/credittrail/credittrail"
	md "github.com/nao1215/markdown"
)

// Transaction renders a one-line description of a transaction.
func Transaction(s *credittrail.Snapshot, t credittrail.Transaction) string {
	who := t.PersonID
	if p, ok := s.FindPerson(t.PersonID); ok {
		who = p.Name
	}
	where := t.LocationID
	if loc, ok := s.FindLocation(t.LocationID); ok {
		where = loc.Name
	}

	what := t.Amount.String()
	if t.Kind == credittrail.KindItem {
		what = t.ItemName + " (" + what + ")"
	}
	if t.IsCredit {
		return "Lent " + what + " to " + who + " at " + where
	}
	return "Received " + what + " from " + who + " at " + where
}

// Transactions renders the transaction list as markdown. An empty personID
// lists all transactions; otherwise only that person's.
func Transactions(s *credittrail.Snapshot, personID string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	txs := s.Transactions
	if personID != "" {
		txs = s.TransactionsOf(personID)
	}
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Date", "Description", "Amount"},
	}
	for _, t := range txs {
		amount := t.Amount
		if !t.IsCredit {
			amount = amount.Neg()
		}
		table.Rows = append(table.Rows, []string{
			t.ID,
			t.OccurredAt.Format("2006-01-02"),
			Transaction(s, t),
			amount.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
