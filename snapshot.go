package credittrail

// Snapshot is the complete state tree at one point in time: the canonical
// collections plus the derived dashboard. The store treats snapshots as
// immutable values: applying a command produces a new snapshot and never
// mutates the prior one.
type Snapshot struct {
	People       []Person
	Locations    []Location
	Transactions []Transaction
	Dashboard    Dashboard
}

// EmptySnapshot returns the initial state: empty collections and an all-zero
// dashboard.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		People:       []Person{},
		Locations:    []Location{},
		Transactions: []Transaction{},
		Dashboard:    Dashboard{TotalCredits: A(0), TotalRepayments: A(0), OutstandingAmount: A(0)},
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		People:       make([]Person, len(s.People)),
		Locations:    append([]Location{}, s.Locations...),
		Transactions: append([]Transaction{}, s.Transactions...),
		Dashboard:    s.Dashboard,
	}
	for i, p := range s.People {
		p.Locations = append([]Location{}, p.Locations...)
		p.Transactions = append([]Transaction{}, p.Transactions...)
		c.People[i] = p
	}
	return c
}

// FindPerson returns the person with this id.
func (s *Snapshot) FindPerson(id string) (Person, bool) {
	if i := s.personIndex(id); i >= 0 {
		return s.People[i], true
	}
	return Person{}, false
}

// FindLocation returns the location with this id.
func (s *Snapshot) FindLocation(id string) (Location, bool) {
	if i := s.locationIndex(id); i >= 0 {
		return s.Locations[i], true
	}
	return Location{}, false
}

// FindTransaction returns the transaction with this id.
func (s *Snapshot) FindTransaction(id string) (Transaction, bool) {
	if i := s.transactionIndex(id); i >= 0 {
		return s.Transactions[i], true
	}
	return Transaction{}, false
}

func (s *Snapshot) personIndex(id string) int {
	for i, p := range s.People {
		if SameID(p.ID, id) {
			return i
		}
	}
	return -1
}

func (s *Snapshot) locationIndex(id string) int {
	for i, l := range s.Locations {
		if SameID(l.ID, id) {
			return i
		}
	}
	return -1
}

func (s *Snapshot) transactionIndex(id string) int {
	for i, t := range s.Transactions {
		if SameID(t.ID, id) {
			return i
		}
	}
	return -1
}

// TransactionsOf returns the transactions of one person, in ledger order.
func (s *Snapshot) TransactionsOf(personID string) []Transaction {
	txs := []Transaction{}
	for _, t := range s.Transactions {
		if SameID(t.PersonID, personID) {
			txs = append(txs, t)
		}
	}
	return txs
}

// RecomputeDashboard folds over the whole transaction list and returns the
// dashboard derived from scratch. This is the reconciliation oracle the
// incremental bookkeeping in the store must never drift from; it is used at
// startup, after an import, and by Store.Verify.
func (s *Snapshot) RecomputeDashboard() Dashboard {
	credits, repayments := A(0), A(0)
	for _, t := range s.Transactions {
		if t.IsCredit {
			credits = credits.Add(t.Amount)
		} else {
			repayments = repayments.Add(t.Amount)
		}
	}
	return Dashboard{
		TotalCredits:      credits,
		TotalRepayments:   repayments,
		OutstandingAmount: credits.Sub(repayments),
		TotalPeople:       len(s.People),
	}
}

// refreshProjections regenerates every person's embedded transaction list
// from the flat collection. The embedded lists are materialized projections:
// the flat collection keyed by id stays authoritative.
func (s *Snapshot) refreshProjections() {
	for i := range s.People {
		s.People[i].Transactions = s.TransactionsOf(s.People[i].ID)
	}
}
