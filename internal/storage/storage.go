package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Export represents a stored transcript export.
type Export struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Markdown  string    `json:"markdown"`
	Checksum  string    `json:"checksum"`
	Messages  int       `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// Storage manages the bbolt database.
type Storage struct {
	db *bbolt.DB
}

// NewStorage creates or opens a bbolt database.
func NewStorage(dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %v", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database connection.
func (s *Storage) Close() {
	s.db.Close()
}

// bucketName is the name of the bucket where exports are stored.
var bucketName = []byte("exports")

// SaveExport stores an export in the database. The ID is used as the key.
func (s *Storage) SaveExport(e *Export) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}

		encoded, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal export: %v", err)
		}

		return b.Put([]byte(e.ID), encoded)
	})
}

// GetExport retrieves an export by its ID.
func (s *Storage) GetExport(id string) (*Export, error) {
	var e Export
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("bucket not found")
		}

		v := b.Get([]byte(id))
		if v == nil {
			return fmt.Errorf("export not found")
		}

		return json.Unmarshal(v, &e)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteExport deletes an export by its ID.
func (s *Storage) DeleteExport(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("bucket not found")
		}
		return b.Delete([]byte(id))
	})
}

// ListExports retrieves all exports from the store.
func (s *Storage) ListExports() ([]*Export, error) {
	var exports []*Export
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			// If the bucket doesn't exist, there are no exports.
			return nil
		}

		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e Export
			if err := json.Unmarshal(v, &e); err != nil {
				// Skip corrupted entries rather than failing the listing.
				continue
			}
			exports = append(exports, &e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %v", err)
	}
	return exports, nil
}

// Clean removes every stored export.
func (s *Storage) Clean() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketName)
	})
}
