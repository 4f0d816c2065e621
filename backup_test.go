package credittrail

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBackupFilename(t *testing.T) {
	at := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	if got := BackupFilename(at); got != "credit-trail-backup-2026-09-01.json" {
		t.Errorf("BackupFilename = %q", got)
	}
}

func TestBackup_RoundTrip(t *testing.T) {
	s := EmptySnapshot()
	s.People = []Person{{ID: "p1", Name: "Alice", Locations: []Location{{ID: "l1", Name: "Cafe"}}}}
	s.Locations = []Location{{ID: "l1", Name: "Cafe"}}
	s.Transactions = []Transaction{
		{ID: "t1", PersonID: "p1", LocationID: "l1", Kind: KindMoney, Amount: A(50), IsCredit: true, OccurredAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)},
		{ID: "t2", PersonID: "p1", LocationID: "l1", Kind: KindItem, ItemName: "book", Amount: A(20), IsCredit: false, OccurredAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)},
	}
	s.Dashboard = s.RecomputeDashboard()
	s.refreshProjections()

	var buf bytes.Buffer
	if err := ExportSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}

	back, err := ImportSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.People) != 1 || len(back.Locations) != 1 || len(back.Transactions) != 2 {
		t.Fatalf("people=%d locations=%d transactions=%d", len(back.People), len(back.Locations), len(back.Transactions))
	}
	for i := range s.Transactions {
		if !back.Transactions[i].Equal(s.Transactions[i]) {
			t.Errorf("transaction %d changed: %+v != %+v", i, back.Transactions[i], s.Transactions[i])
		}
	}
	if !back.Dashboard.Equal(s.Dashboard) {
		t.Errorf("dashboard changed: %+v != %+v", back.Dashboard, s.Dashboard)
	}
}

func TestImportSnapshot_MalformedJSON(t *testing.T) {
	for _, in := range []string{"", "not json", "{truncated", "[1,2,3"} {
		_, err := ImportSnapshot(strings.NewReader(in))
		if !errors.Is(err, ErrMalformedBackup) {
			t.Errorf("ImportSnapshot(%q) = %v, want ErrMalformedBackup", in, err)
		}
	}
}

func TestImportSnapshot_MissingFields(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{"empty object", `{}`},
		{"no people", `{"locations":[],"transactions":[]}`},
		{"no locations", `{"people":[],"transactions":[]}`},
		{"no transactions", `{"people":[],"locations":[]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportSnapshot(strings.NewReader(tc.in))
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("err = %v, want ErrMissingFields", err)
			}
		})
	}
}

// an imported dashboard is always re-derived, never trusted from the file.
func TestImportSnapshot_HealsDashboard(t *testing.T) {
	doc := `{
	  "people": [{"id":"p1","name":"Alice","locations":[],"transactions":[]}],
	  "locations": [],
	  "transactions": [
	    {"id":"t1","personId":"p1","locationId":"l1","type":"money","amount":50,"date":"2026-08-30T10:00:00Z","isCredit":true}
	  ],
	  "dashboard": {"totalCredits":999,"totalRepayments":999,"outstandingAmount":999,"totalPeople":42}
	}`
	s, err := ImportSnapshot(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := Dashboard{TotalCredits: A(50), TotalRepayments: A(0), OutstandingAmount: A(50), TotalPeople: 1}
	if !s.Dashboard.Equal(want) {
		t.Errorf("dashboard = %+v, want %+v", s.Dashboard, want)
	}
}

// the dashboard key itself is optional in a backup.
func TestImportSnapshot_NoDashboard(t *testing.T) {
	doc := `{"people":[],"locations":[],"transactions":[]}`
	s, err := ImportSnapshot(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Dashboard.Equal(Dashboard{TotalCredits: A(0), TotalRepayments: A(0), OutstandingAmount: A(0)}) {
		t.Errorf("dashboard = %+v", s.Dashboard)
	}
}
