package credittrail

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Persister owns the serialized-at-rest copy of the state: one durable slot,
// read once at startup and overwritten after every accepted mutation.
// Load returns ErrNotFound when the slot is empty.
type Persister interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// Store owns the canonical collections in memory for the process lifetime.
// It applies commands copy-on-write, keeps the dashboard incrementally
// consistent with the transaction list, and persists every accepted
// mutation. There is exactly one writer by construction, so the store takes
// no locks.
type Store struct {
	current   *Snapshot
	persister Persister
	log       zerolog.Logger
}

// NewStore loads the persisted snapshot and returns a ready store. A missing
// or corrupt slot degrades to the empty initial state: the ledger must
// always be able to start. The dashboard is re-derived wholesale, so any
// aggregate drift in the at-rest copy heals on startup.
func NewStore(p Persister, log zerolog.Logger) *Store {
	snap, err := p.Load()
	switch {
	case errors.Is(err, ErrNotFound):
		snap = EmptySnapshot()
	case err != nil:
		log.Warn().Err(err).Msg("could not load persisted state, starting empty")
		snap = EmptySnapshot()
	}
	snap.Dashboard = snap.RecomputeDashboard()
	snap.refreshProjections()
	return &Store{current: snap, persister: p, log: log}
}

// Current returns the latest snapshot, the single source of truth for all
// readers. Callers must treat it as read-only.
func (st *Store) Current() *Snapshot { return st.current }

// Apply validates and applies one command, producing a new snapshot.
//
// Validation failures return the unchanged snapshot and an error wrapping
// ErrValidation. Update or delete of an unknown id is a silent no-op. After
// an accepted mutation the new snapshot is saved; a failed save is returned
// wrapping ErrPersist while the in-memory snapshot stays advanced.
func (st *Store) Apply(cmd Command) (*Snapshot, error) {
	next, err := reduce(st.current, cmd)
	if err != nil {
		return st.current, err
	}
	if next == st.current {
		// no-op command, nothing to persist.
		return st.current, nil
	}
	st.current = next
	st.log.Debug().Str("command", string(cmd.What())).Msg("applied command")
	return st.current, st.persist()
}

// Restore replaces the whole state with an imported snapshot. The dashboard
// is re-derived from the transaction list rather than trusted from the
// import, and the per-person projections are regenerated.
func (st *Store) Restore(snap *Snapshot) error {
	next := snap.Clone()
	next.Dashboard = next.RecomputeDashboard()
	next.refreshProjections()
	st.current = next
	st.log.Info().
		Int("people", len(next.People)).
		Int("locations", len(next.Locations)).
		Int("transactions", len(next.Transactions)).
		Msg("state restored from backup")
	return st.persist()
}

// Verify checks the incrementally maintained dashboard against the full
// recomputation and reports any drift.
func (st *Store) Verify() error {
	want := st.current.RecomputeDashboard()
	got := st.current.Dashboard
	if !got.Equal(want) {
		return fmt.Errorf("dashboard drift: incremental {credits %s, repayments %s, outstanding %s, people %d}, recomputed {credits %s, repayments %s, outstanding %s, people %d}",
			got.TotalCredits.Decimal(), got.TotalRepayments.Decimal(), got.OutstandingAmount.Decimal(), got.TotalPeople,
			want.TotalCredits.Decimal(), want.TotalRepayments.Decimal(), want.OutstandingAmount.Decimal(), want.TotalPeople)
	}
	return nil
}

func (st *Store) persist() error {
	if err := st.persister.Save(st.current); err != nil {
		st.log.Warn().Err(err).Msg("state advanced in memory but could not be persisted")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// reduce applies one command to a snapshot and returns the resulting
// snapshot. It is pure: the input snapshot is never mutated, and a no-op
// returns the input unchanged.
func reduce(s *Snapshot, cmd Command) (*Snapshot, error) {
	switch v := cmd.(type) {
	case AddPerson:
		return addPerson(s, v.Person)
	case UpdatePerson:
		return updatePerson(s, v.Person)
	case DeletePerson:
		return deletePerson(s, v.ID)
	case AddLocation:
		return addLocation(s, v.Location)
	case DeleteLocation:
		return deleteLocation(s, v.ID)
	case AddTransaction:
		return addTransaction(s, v.Transaction)
	case UpdateTransaction:
		return updateTransaction(s, v.Transaction)
	case DeleteTransaction:
		return deleteTransaction(s, v.ID)
	case AttachLocation:
		return attachLocation(s, v.PersonID, v.LocationID)
	case DetachLocation:
		return detachLocation(s, v.PersonID, v.LocationID)
	default:
		return s, fmt.Errorf("unsupported command type: %T", cmd)
	}
}

func addPerson(s *Snapshot, p Person) (*Snapshot, error) {
	if err := p.Validate(); err != nil {
		return s, err
	}
	if _, exists := s.FindPerson(p.ID); exists {
		return s, fmt.Errorf("%w: person %q already exists", ErrValidation, p.ID)
	}
	next := s.Clone()
	p.Locations = nonNil(p.Locations)
	p.Transactions = next.TransactionsOf(p.ID)
	next.People = append(next.People, p)
	next.Dashboard.TotalPeople++
	return next, nil
}

func updatePerson(s *Snapshot, p Person) (*Snapshot, error) {
	if err := p.Validate(); err != nil {
		return s, err
	}
	i := s.personIndex(p.ID)
	if i < 0 {
		return s, nil
	}
	next := s.Clone()
	p.Locations = nonNil(p.Locations)
	p.Transactions = next.TransactionsOf(p.ID)
	next.People[i] = p
	return next, nil
}

func deletePerson(s *Snapshot, id string) (*Snapshot, error) {
	i := s.personIndex(id)
	if i < 0 {
		return s, nil
	}
	next := s.Clone()
	next.People = append(next.People[:i], next.People[i+1:]...)
	next.Dashboard.TotalPeople--
	next.dropTransactions(func(t Transaction) bool { return SameID(t.PersonID, id) })
	next.refreshProjections()
	return next, nil
}

func addLocation(s *Snapshot, l Location) (*Snapshot, error) {
	if err := l.Validate(); err != nil {
		return s, err
	}
	if _, exists := s.FindLocation(l.ID); exists {
		return s, fmt.Errorf("%w: location %q already exists", ErrValidation, l.ID)
	}
	next := s.Clone()
	next.Locations = append(next.Locations, l)
	return next, nil
}

func deleteLocation(s *Snapshot, id string) (*Snapshot, error) {
	i := s.locationIndex(id)
	if i < 0 {
		return s, nil
	}
	next := s.Clone()
	next.Locations = append(next.Locations[:i], next.Locations[i+1:]...)
	next.dropTransactions(func(t Transaction) bool { return SameID(t.LocationID, id) })
	for pi := range next.People {
		p := &next.People[pi]
		kept := p.Locations[:0]
		for _, loc := range p.Locations {
			if !SameID(loc.ID, id) {
				kept = append(kept, loc)
			}
		}
		p.Locations = kept
	}
	next.refreshProjections()
	return next, nil
}

func addTransaction(s *Snapshot, t Transaction) (*Snapshot, error) {
	if err := t.Validate(); err != nil {
		return s, err
	}
	if _, exists := s.FindTransaction(t.ID); exists {
		return s, fmt.Errorf("%w: transaction %q already exists", ErrValidation, t.ID)
	}
	if _, ok := s.FindPerson(t.PersonID); !ok {
		return s, fmt.Errorf("%w: transaction references unknown person %q", ErrValidation, t.PersonID)
	}
	if _, ok := s.FindLocation(t.LocationID); !ok {
		return s, fmt.Errorf("%w: transaction references unknown location %q", ErrValidation, t.LocationID)
	}
	next := s.Clone()
	next.Transactions = append(next.Transactions, t)
	next.Dashboard = next.Dashboard.withTransaction(t)
	next.refreshProjections()
	return next, nil
}

func updateTransaction(s *Snapshot, t Transaction) (*Snapshot, error) {
	i := s.transactionIndex(t.ID)
	if i < 0 {
		return s, nil
	}
	old := s.Transactions[i]
	// OccurredAt is immutable after creation.
	t.OccurredAt = old.OccurredAt
	if err := t.Validate(); err != nil {
		return s, err
	}
	if _, ok := s.FindPerson(t.PersonID); !ok {
		return s, fmt.Errorf("%w: transaction references unknown person %q", ErrValidation, t.PersonID)
	}
	if _, ok := s.FindLocation(t.LocationID); !ok {
		return s, fmt.Errorf("%w: transaction references unknown location %q", ErrValidation, t.LocationID)
	}
	next := s.Clone()
	next.Transactions[i] = t
	next.Dashboard = next.Dashboard.withReplacedTransaction(old, t)
	next.refreshProjections()
	return next, nil
}

func deleteTransaction(s *Snapshot, id string) (*Snapshot, error) {
	i := s.transactionIndex(id)
	if i < 0 {
		return s, nil
	}
	next := s.Clone()
	old := next.Transactions[i]
	next.Transactions = append(next.Transactions[:i], next.Transactions[i+1:]...)
	next.Dashboard = next.Dashboard.withoutTransaction(old)
	next.refreshProjections()
	return next, nil
}

func attachLocation(s *Snapshot, personID, locationID string) (*Snapshot, error) {
	pi := s.personIndex(personID)
	if pi < 0 {
		return s, nil
	}
	loc, ok := s.FindLocation(locationID)
	if !ok {
		return s, nil
	}
	if s.People[pi].HasLocation(locationID) {
		// idempotent: already attached.
		return s, nil
	}
	next := s.Clone()
	// A copy of the location as it is now; later renames do not rewrite it.
	next.People[pi].Locations = append(next.People[pi].Locations, loc)
	return next, nil
}

func detachLocation(s *Snapshot, personID, locationID string) (*Snapshot, error) {
	pi := s.personIndex(personID)
	if pi < 0 || !s.People[pi].HasLocation(locationID) {
		return s, nil
	}
	next := s.Clone()
	p := &next.People[pi]
	kept := p.Locations[:0]
	for _, loc := range p.Locations {
		if !SameID(loc.ID, locationID) {
			kept = append(kept, loc)
		}
	}
	p.Locations = kept
	return next, nil
}

// dropTransactions removes every transaction matching the predicate and
// subtracts each removed transaction's contribution from the dashboard, so
// cascading deletes never leave the aggregates stale.
func (s *Snapshot) dropTransactions(drop func(Transaction) bool) {
	kept := s.Transactions[:0]
	for _, t := range s.Transactions {
		if drop(t) {
			s.Dashboard = s.Dashboard.withoutTransaction(t)
			continue
		}
		kept = append(kept, t)
	}
	s.Transactions = kept
}

// withTransaction returns the dashboard adjusted for a newly added transaction.
func (d Dashboard) withTransaction(t Transaction) Dashboard {
	if t.IsCredit {
		d.TotalCredits = d.TotalCredits.Add(t.Amount)
		d.OutstandingAmount = d.OutstandingAmount.Add(t.Amount)
	} else {
		d.TotalRepayments = d.TotalRepayments.Add(t.Amount)
		d.OutstandingAmount = d.OutstandingAmount.Sub(t.Amount)
	}
	return d
}

// withoutTransaction returns the dashboard adjusted for a removed
// transaction. It is the exact inverse of withTransaction.
func (d Dashboard) withoutTransaction(t Transaction) Dashboard {
	if t.IsCredit {
		d.TotalCredits = d.TotalCredits.Sub(t.Amount)
		d.OutstandingAmount = d.OutstandingAmount.Sub(t.Amount)
	} else {
		d.TotalRepayments = d.TotalRepayments.Sub(t.Amount)
		d.OutstandingAmount = d.OutstandingAmount.Add(t.Amount)
	}
	return d
}

// withReplacedTransaction returns the dashboard adjusted for a transaction
// replaced in place, by case on the old and new sign.
func (d Dashboard) withReplacedTransaction(old, t Transaction) Dashboard {
	switch {
	case old.IsCredit && t.IsCredit:
		delta := t.Amount.Sub(old.Amount)
		d.TotalCredits = d.TotalCredits.Add(delta)
		d.OutstandingAmount = d.OutstandingAmount.Add(delta)
	case !old.IsCredit && !t.IsCredit:
		delta := t.Amount.Sub(old.Amount)
		d.TotalRepayments = d.TotalRepayments.Add(delta)
		d.OutstandingAmount = d.OutstandingAmount.Sub(delta)
	case old.IsCredit && !t.IsCredit:
		// credit became repayment: both its old positive contribution and
		// its new negative one move the outstanding amount down.
		d.TotalCredits = d.TotalCredits.Sub(old.Amount)
		d.TotalRepayments = d.TotalRepayments.Add(t.Amount)
		d.OutstandingAmount = d.OutstandingAmount.Sub(old.Amount.Add(t.Amount))
	default:
		// repayment became credit.
		d.TotalRepayments = d.TotalRepayments.Sub(old.Amount)
		d.TotalCredits = d.TotalCredits.Add(t.Amount)
		d.OutstandingAmount = d.OutstandingAmount.Add(t.Amount.Add(old.Amount))
	}
	return d
}
