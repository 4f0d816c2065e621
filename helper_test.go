package credittrail

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// memPersister is an in-memory Persister for tests. It keeps a deep copy of
// the last saved snapshot and can be switched to fail every write.
type memPersister struct {
	saved   *Snapshot
	saves   int
	failing bool
}

func (m *memPersister) Load() (*Snapshot, error) {
	if m.saved == nil {
		return nil, ErrNotFound
	}
	return m.saved.Clone(), nil
}

func (m *memPersister) Save(s *Snapshot) error {
	if m.failing {
		return errors.New("write failed")
	}
	m.saves++
	m.saved = s.Clone()
	return nil
}

// newTestStore returns an empty store backed by a memPersister.
func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	return NewStore(p, zerolog.Nop()), p
}

// newSeededStore returns a store holding one person ("p1"), one location
// ("l1") and no transactions.
func newSeededStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	st, p := newTestStore(t)
	mustApply(t, st, AddPerson{Person: Person{ID: "p1", Name: "Alice"}})
	mustApply(t, st, AddLocation{Location: Location{ID: "l1", Name: "Cafe"}})
	return st, p
}

func mustApply(t *testing.T, st *Store, cmd Command) *Snapshot {
	t.Helper()
	snap, err := st.Apply(cmd)
	if err != nil {
		t.Fatalf("Apply(%s) failed: %v", cmd.What(), err)
	}
	return snap
}

// moneyTx builds a money transaction for person p1 at location l1.
func moneyTx(id string, amount float64, credit bool) Transaction {
	return Transaction{
		ID:         id,
		PersonID:   "p1",
		LocationID: "l1",
		Kind:       KindMoney,
		Amount:     A(amount),
		OccurredAt: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
		IsCredit:   credit,
	}
}

// checkConsistent fails the test unless the snapshot's dashboard agrees with
// a full recomputation, the outstanding amount equals credits minus
// repayments, and every person's embedded transaction list mirrors the flat
// collection.
func checkConsistent(t *testing.T, s *Snapshot) {
	t.Helper()
	want := s.RecomputeDashboard()
	if !s.Dashboard.Equal(want) {
		t.Errorf("dashboard drifted from recomputation:\n got %+v\nwant %+v", s.Dashboard, want)
	}
	net := s.Dashboard.TotalCredits.Sub(s.Dashboard.TotalRepayments)
	if !s.Dashboard.OutstandingAmount.Equal(net) {
		t.Errorf("outstanding %s != credits - repayments %s",
			s.Dashboard.OutstandingAmount.Decimal(), net.Decimal())
	}
	for _, p := range s.People {
		wantTxs := s.TransactionsOf(p.ID)
		if len(p.Transactions) != len(wantTxs) {
			t.Errorf("person %s projection holds %d transactions, flat collection has %d",
				p.ID, len(p.Transactions), len(wantTxs))
			continue
		}
		for i := range wantTxs {
			if !p.Transactions[i].Equal(wantTxs[i]) {
				t.Errorf("person %s projection disagrees with flat collection at %d", p.ID, i)
			}
		}
	}
}
