package credittrail

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements the json.Marshaler interface for Snapshot: a single
// document with top-level keys people, locations, transactions and
// dashboard, in that order.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("people", nonNil(s.People))
	w.Append("locations", nonNil(s.Locations))
	w.Append("transactions", nonNil(s.Transactions))
	w.Append("dashboard", s.Dashboard)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Snapshot.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var temp struct {
		People       []Person      `json:"people"`
		Locations    []Location    `json:"locations"`
		Transactions []Transaction `json:"transactions"`
		Dashboard    Dashboard     `json:"dashboard"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	s.People = nonNil(temp.People)
	s.Locations = nonNil(temp.Locations)
	s.Transactions = nonNil(temp.Transactions)
	s.Dashboard = temp.Dashboard
	return nil
}

// EncodeSnapshot writes the snapshot to w as a single JSON document with a
// canonical key order.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a single JSON snapshot document from r.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return &s, nil
}
