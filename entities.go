package credittrail

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the nature of a transaction: money lent/repaid, or an item.
type Kind string

const (
	KindMoney Kind = "money"
	KindItem  Kind = "item"
)

// NewID returns a fresh unique identifier for a new entity.
func NewID() string { return uuid.NewString() }

// SameID reports whether two entity identifiers refer to the same record.
func SameID(a, b string) bool { return a == b }

// Location is a physical place where credits are exchanged.
// Identity is the ID; the name is user-editable and not required unique.
type Location struct {
	ID   string
	Name string
}

// Validate checks the location for correctness.
func (l Location) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: location id is missing", ErrValidation)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: location name is empty", ErrValidation)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Location.
func (l Location) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", l.ID)
	w.Append("name", l.Name)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Location.
func (l *Location) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	l.ID, l.Name = temp.ID, temp.Name
	return nil
}

// Person is someone the owner lends to. Locations holds copies of the
// locations associated with the person, taken at association time: renaming
// a location later does not rewrite the embedded copies. Transactions is a
// store-maintained projection of the flat transaction collection filtered by
// this person's id; it is never hand-edited by callers.
type Person struct {
	ID           string
	Name         string
	Locations    []Location
	Transactions []Transaction
}

// Validate checks the person for correctness, including the no-duplicate
// rule on the embedded location list.
func (p Person) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: person id is missing", ErrValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: person name is empty", ErrValidation)
	}
	seen := make(map[string]struct{}, len(p.Locations))
	for _, loc := range p.Locations {
		if _, dup := seen[loc.ID]; dup {
			return fmt.Errorf("%w: duplicate location %q on person %q", ErrValidation, loc.ID, p.ID)
		}
		seen[loc.ID] = struct{}{}
	}
	return nil
}

// HasLocation reports whether the person's embedded list contains the location.
func (p Person) HasLocation(locationID string) bool {
	for _, loc := range p.Locations {
		if SameID(loc.ID, locationID) {
			return true
		}
	}
	return false
}

// MarshalJSON implements the json.Marshaler interface for Person.
func (p Person) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("name", p.Name)
	w.Append("locations", nonNil(p.Locations))
	w.Append("transactions", nonNil(p.Transactions))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Person.
func (p *Person) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string        `json:"id"`
		Name         string        `json:"name"`
		Locations    []Location    `json:"locations"`
		Transactions []Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.ID, p.Name = temp.ID, temp.Name
	p.Locations = nonNil(temp.Locations)
	p.Transactions = nonNil(temp.Transactions)
	return nil
}

// Transaction records one credit or repayment between the owner and a person
// at a location. The sign is carried entirely by IsCredit, never by a
// negative amount. OccurredAt is immutable after creation.
type Transaction struct {
	ID         string
	PersonID   string
	LocationID string
	Kind       Kind
	Amount     Amount
	ItemName   string // required iff Kind is KindItem
	OccurredAt time.Time
	IsCredit   bool
	Notes      string
	ImageRef   string // opaque data-URI or URL
}

// Validate checks the transaction for correctness.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: transaction id is missing", ErrValidation)
	}
	if t.PersonID == "" {
		return fmt.Errorf("%w: transaction person id is missing", ErrValidation)
	}
	if t.LocationID == "" {
		return fmt.Errorf("%w: transaction location id is missing", ErrValidation)
	}
	switch t.Kind {
	case KindMoney:
		// no extra field
	case KindItem:
		if strings.TrimSpace(t.ItemName) == "" {
			return fmt.Errorf("%w: item transaction without an item name", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown transaction kind %q", ErrValidation, t.Kind)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: transaction amount must be positive, got %s", ErrValidation, t.Amount.Decimal())
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("personId", t.PersonID)
	w.Append("locationId", t.LocationID)
	w.Append("type", t.Kind)
	w.Append("amount", t.Amount)
	w.Optional("itemName", t.ItemName)
	w.Append("date", t.OccurredAt)
	w.Append("isCredit", t.IsCredit)
	w.Optional("notes", t.Notes)
	w.Optional("imageUrl", t.ImageRef)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID         string    `json:"id"`
		PersonID   string    `json:"personId"`
		LocationID string    `json:"locationId"`
		Kind       Kind      `json:"type"`
		Amount     Amount    `json:"amount"`
		ItemName   string    `json:"itemName"`
		OccurredAt time.Time `json:"date"`
		IsCredit   bool      `json:"isCredit"`
		Notes      string    `json:"notes"`
		ImageRef   string    `json:"imageUrl"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*t = Transaction{
		ID:         temp.ID,
		PersonID:   temp.PersonID,
		LocationID: temp.LocationID,
		Kind:       temp.Kind,
		Amount:     temp.Amount,
		ItemName:   temp.ItemName,
		OccurredAt: temp.OccurredAt,
		IsCredit:   temp.IsCredit,
		Notes:      temp.Notes,
		ImageRef:   temp.ImageRef,
	}
	return nil
}

// Equal reports whether two transactions are identical, amounts compared by
// value and timestamps by instant.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.PersonID == o.PersonID &&
		t.LocationID == o.LocationID &&
		t.Kind == o.Kind &&
		t.Amount.Equal(o.Amount) &&
		t.ItemName == o.ItemName &&
		t.OccurredAt.Equal(o.OccurredAt) &&
		t.IsCredit == o.IsCredit &&
		t.Notes == o.Notes &&
		t.ImageRef == o.ImageRef
}

// Dashboard is the derived aggregate over the transaction and people
// collections. It is never independently authored: the store maintains it
// incrementally and it can always be re-derived by Snapshot.RecomputeDashboard.
type Dashboard struct {
	TotalCredits      Amount
	TotalRepayments   Amount
	OutstandingAmount Amount
	TotalPeople       int
}

// Equal reports whether two dashboards agree on every aggregate.
func (d Dashboard) Equal(o Dashboard) bool {
	return d.TotalCredits.Equal(o.TotalCredits) &&
		d.TotalRepayments.Equal(o.TotalRepayments) &&
		d.OutstandingAmount.Equal(o.OutstandingAmount) &&
		d.TotalPeople == o.TotalPeople
}

// MarshalJSON implements the json.Marshaler interface for Dashboard.
func (d Dashboard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalCredits", d.TotalCredits)
	w.Append("totalRepayments", d.TotalRepayments)
	w.Append("outstandingAmount", d.OutstandingAmount)
	w.Append("totalPeople", d.TotalPeople)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Dashboard.
func (d *Dashboard) UnmarshalJSON(data []byte) error {
	var temp struct {
		TotalCredits      Amount `json:"totalCredits"`
		TotalRepayments   Amount `json:"totalRepayments"`
		OutstandingAmount Amount `json:"outstandingAmount"`
		TotalPeople       int    `json:"totalPeople"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*d = Dashboard(temp)
	return nil
}

// nonNil normalizes a nil slice to an empty one, so collections always
// encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
