package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/credittrail/credittrail"
	md "github.com/nao1215/markdown"
)

// People renders the person list with per-person balances as markdown.
func People(s *credittrail.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("People")

	if len(s.People) == 0 {
		doc.PlainText("No people recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Locations", "Balance"},
	}
	for _, p := range s.People {
		names := make([]string, 0, len(p.Locations))
		for _, loc := range p.Locations {
			names = append(names, loc.Name)
		}
		table.Rows = append(table.Rows, []string{
			p.ID,
			p.Name,
			strings.Join(names, ", "),
			personBalance(p).SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// Locations renders the location list as markdown.
func Locations(s *credittrail.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Locations")

	if len(s.Locations) == 0 {
		doc.PlainText("No locations recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Transactions"},
	}
	for _, loc := range s.Locations {
		count := 0
		for _, t := range s.Transactions {
			if credittrail.SameID(t.LocationID, loc.ID) {
				count++
			}
		}
		table.Rows = append(table.Rows, []string{loc.ID, loc.Name, fmt.Sprintf("%d", count)})
	}
	doc.Table(table)

	return doc.String()
}

// PeopleByLocation renders, for each location, the people associated with it
// and how many of their transactions happened there.
func PeopleByLocation(s *credittrail.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("People by Location")

	if len(s.Locations) == 0 {
		doc.PlainText("No locations recorded yet.")
		return doc.String()
	}

	for _, loc := range s.Locations {
		doc.H2(loc.Name)

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"ID", "Name", "Transactions here"},
		}
		for _, p := range s.People {
			if !p.HasLocation(loc.ID) {
				continue
			}
			count := 0
			for _, t := range p.Transactions {
				if credittrail.SameID(t.LocationID, loc.ID) {
					count++
				}
			}
			table.Rows = append(table.Rows, []string{p.ID, p.Name, fmt.Sprintf("%d", count)})
		}
		if len(table.Rows) == 0 {
			doc.PlainText("No people at this location.")
			continue
		}
		doc.Table(table)
	}

	return doc.String()
}

// personBalance is the net amount the person owes.
func personBalance(p credittrail.Person) credittrail.Amount {
	balance := credittrail.A(0)
	for _, t := range p.Transactions {
		if t.IsCredit {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}
