// Package renderer turns snapshots into markdown reports for the terminal.
package renderer

import (
	"bytes"

	"github.com/credittrail/credittrail"
	md "github.com/nao1215/markdown"
)

// Dashboard renders the aggregate totals as markdown.
func Dashboard(s *credittrail.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dashboard")

	d := s.Dashboard
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Outstanding"),
			md.Bold(d.OutstandingAmount.String()),
		},
		Rows: [][]string{
			{"Total Credits", d.TotalCredits.String()},
			{"Total Repayments", d.TotalRepayments.String()},
		},
	})

	doc.PlainTextf("%d people tracked across %d locations.", d.TotalPeople, len(s.Locations))

	return doc.String()
}
