package storage

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/credittrail/credittrail"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket and key of the single persistence slot.
	bucketState = []byte("state")
	keySnapshot = []byte("snapshot")
)

// BoltStore implements credittrail.Persister using BoltDB.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if needed) the ledger database in dataDir.
func NewBoltStore(dataDir string) (*BoltStore, error) {
	dbPath := filepath.Join(dataDir, "credittrail.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketState); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketState, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Load reads the snapshot from the slot. It returns credittrail.ErrNotFound
// when the slot has never been written.
func (s *BoltStore) Load() (*credittrail.Snapshot, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketState).Get(keySnapshot); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, credittrail.ErrNotFound
	}
	return credittrail.DecodeSnapshot(bytes.NewReader(data))
}

// Save overwrites the slot with the whole snapshot. There are no partial or
// delta writes.
func (s *BoltStore) Save(snap *credittrail.Snapshot) error {
	var buf bytes.Buffer
	if err := credittrail.EncodeSnapshot(&buf, snap); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketState).Put(keySnapshot, buf.Bytes())
	})
}
