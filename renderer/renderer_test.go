package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/credittrail/credittrail"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func sampleSnapshot() *credittrail.Snapshot {
	s := credittrail.EmptySnapshot()
	s.Locations = []credittrail.Location{
		{ID: "l1", Name: "Cafe"},
		{ID: "l2", Name: "Market"},
	}
	s.People = []credittrail.Person{
		{
			ID: "p1", Name: "Alice",
			Locations: []credittrail.Location{{ID: "l1", Name: "Cafe"}},
			Transactions: []credittrail.Transaction{
				{ID: "t1", PersonID: "p1", LocationID: "l1", Kind: credittrail.KindMoney, Amount: credittrail.A(50), IsCredit: true, OccurredAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)},
				{ID: "t2", PersonID: "p1", LocationID: "l1", Kind: credittrail.KindMoney, Amount: credittrail.A(20), IsCredit: false, OccurredAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)},
			},
		},
		{ID: "p2", Name: "Bob"},
	}
	s.Transactions = []credittrail.Transaction{
		{ID: "t1", PersonID: "p1", LocationID: "l1", Kind: credittrail.KindMoney, Amount: credittrail.A(50), IsCredit: true, OccurredAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)},
		{ID: "t2", PersonID: "p1", LocationID: "l1", Kind: credittrail.KindMoney, Amount: credittrail.A(20), IsCredit: false, OccurredAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)},
		{ID: "t3", PersonID: "p2", LocationID: "l2", Kind: credittrail.KindItem, ItemName: "book", Amount: credittrail.A(15), IsCredit: true, OccurredAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)},
	}
	s.Dashboard = s.RecomputeDashboard()
	return s
}

// firstHeading parses markdown and returns the text of the first level-1
// heading, failing the test when the output is not parseable markdown.
func firstHeading(t *testing.T, doc string) string {
	t.Helper()

	source := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			var sb strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				sb.Write(line.Value(source))
			}
			title = sb.String()
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if title == "" {
		t.Fatalf("no level-1 heading in:\n%s", doc)
	}
	return title
}

func TestDashboard(t *testing.T) {
	s := sampleSnapshot()
	out := Dashboard(s)

	if got := firstHeading(t, out); got != "Dashboard" {
		t.Errorf("heading = %q", got)
	}
	for _, want := range []string{
		"Outstanding", s.Dashboard.OutstandingAmount.String(),
		"Total Credits", s.Dashboard.TotalCredits.String(),
		"Total Repayments", s.Dashboard.TotalRepayments.String(),
		"2 people tracked across 2 locations.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPeople(t *testing.T) {
	s := sampleSnapshot()
	out := People(s)

	if got := firstHeading(t, out); got != "People" {
		t.Errorf("heading = %q", got)
	}
	for _, want := range []string{"Alice", "Bob", "Cafe", "+" + credittrail.A(30).String()} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPeopleByLocation(t *testing.T) {
	s := sampleSnapshot()
	out := PeopleByLocation(s)

	if got := firstHeading(t, out); got != "People by Location" {
		t.Errorf("heading = %q", got)
	}
	// Alice is attached to the Cafe with two transactions there.
	cafe := out[strings.Index(out, "Cafe"):]
	if at := strings.Index(cafe, "Market"); at >= 0 {
		cafe = cafe[:at]
	}
	if !strings.Contains(cafe, "Alice") || !strings.Contains(cafe, "2") {
		t.Errorf("Cafe section missing Alice with her count:\n%s", cafe)
	}
	if strings.Contains(cafe, "Bob") {
		t.Errorf("Bob is not attached to the Cafe:\n%s", cafe)
	}
	// nobody is attached to the Market.
	if !strings.Contains(out, "No people at this location.") {
		t.Errorf("missing empty notice for the Market:\n%s", out)
	}
}

func TestPeopleByLocation_NoLocations(t *testing.T) {
	out := PeopleByLocation(credittrail.EmptySnapshot())
	if !strings.Contains(out, "No locations recorded yet.") {
		t.Errorf("missing empty notice in:\n%s", out)
	}
}

func TestPeople_Empty(t *testing.T) {
	out := People(credittrail.EmptySnapshot())
	if !strings.Contains(out, "No people recorded yet.") {
		t.Errorf("missing empty notice in:\n%s", out)
	}
}

func TestLocations(t *testing.T) {
	s := sampleSnapshot()
	out := Locations(s)

	if got := firstHeading(t, out); got != "Locations" {
		t.Errorf("heading = %q", got)
	}
	for _, want := range []string{"Cafe", "Market"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestTransaction(t *testing.T) {
	s := sampleSnapshot()

	if got := Transaction(s, s.Transactions[0]); got != "Lent "+credittrail.A(50).String()+" to Alice at Cafe" {
		t.Errorf("credit line = %q", got)
	}
	if got := Transaction(s, s.Transactions[1]); got != "Received "+credittrail.A(20).String()+" from Alice at Cafe" {
		t.Errorf("repayment line = %q", got)
	}
	if got := Transaction(s, s.Transactions[2]); !strings.Contains(got, "book (") {
		t.Errorf("item line = %q", got)
	}

	// unknown references fall back to the raw ids
	orphan := credittrail.Transaction{ID: "tx", PersonID: "ghost", LocationID: "nowhere", Kind: credittrail.KindMoney, Amount: credittrail.A(1), IsCredit: true}
	if got := Transaction(s, orphan); !strings.Contains(got, "ghost") || !strings.Contains(got, "nowhere") {
		t.Errorf("orphan line = %q", got)
	}
}

func TestTransactions(t *testing.T) {
	s := sampleSnapshot()

	out := Transactions(s, "")
	if got := firstHeading(t, out); got != "Transactions" {
		t.Errorf("heading = %q", got)
	}
	for _, want := range []string{"t1", "t2", "t3", "2026-08-30"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	// a person filter drops everyone else's rows
	out = Transactions(s, "p2")
	if strings.Contains(out, "t1") || !strings.Contains(out, "t3") {
		t.Errorf("filter for p2 produced:\n%s", out)
	}

	out = Transactions(s, "ghost")
	if !strings.Contains(out, "No transactions recorded yet.") {
		t.Errorf("missing empty notice in:\n%s", out)
	}
}
