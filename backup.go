package credittrail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file handles the backup transfer format: a downloadable copy of the
// persisted snapshot, and the validation needed to accept one back.

// requiredKeys are the top-level collections a backup must carry. The
// dashboard is deliberately not required: it is re-derived on import.
var requiredKeys = []string{"people", "locations", "transactions"}

// BackupFilename returns the conventional name for a backup taken at t,
// e.g. "credit-trail-backup-2026-09-01.json".
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("credit-trail-backup-%s.json", t.Format("2006-01-02"))
}

// ExportSnapshot writes the snapshot to w in the backup format, which is
// exactly the persisted snapshot document.
func ExportSnapshot(w io.Writer, s *Snapshot) error {
	return EncodeSnapshot(w, s)
}

// ImportSnapshot parses and validates a backup read from r.
//
// It fails with ErrMalformedBackup when the content is not valid JSON, and
// with ErrMissingFields when a required top-level collection is absent. On
// success the returned snapshot's dashboard is re-derived from the
// transaction list rather than trusted from the file, healing any aggregate
// drift in the backup. The caller hands the result to Store.Restore as a
// full replacement; on failure the existing state is left untouched.
func ImportSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var jobj interface{}
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	for _, key := range requiredKeys {
		if _, err := jsonpath.Get("$."+key, jobj); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingFields, key)
		}
	}

	snap, err := DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	snap.Dashboard = snap.RecomputeDashboard()
	return snap, nil
}
