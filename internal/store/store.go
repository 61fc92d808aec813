// Package store persists computed hashes in a bbolt index so that new
// images can be searched against everything hashed before. The hash
// engine itself stores nothing; this index is service-side state.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/dkechag/Image-PHash/phash"
)

const hashBucket = "hashes"

// Entry is one indexed image hash.
type Entry struct {
	ID       string    `json:"id"`
	Filename string    `json:"filename"`
	Hash     string    `json:"hash"`
	Bits     int       `json:"bits"`
	AddedAt  time.Time `json:"added_at"`
}

// Match is a search hit with its Hamming distance from the query hash.
type Match struct {
	Entry
	Distance int `json:"distance"`
}

// Store wraps the bbolt database file.
type Store struct {
	db *bolt.DB
}

// New opens (or creates) the index database under dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}
	db, err := bolt.Open(filepath.Join(dir, "phash.db"), 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening database file")
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, errors.Wrap(err, "initializing buckets")
	}
	return s, nil
}

func (s *Store) init() error {
	logrus.Debug("Initializing hash index buckets")
	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(hashBucket))
		return err
	})
}

// Add indexes a hash and returns the stored entry.
func (s *Store) Add(filename, hash string, bits int) (Entry, error) {
	entry := Entry{
		ID:       uuid.NewString(),
		Filename: filename,
		Hash:     hash,
		Bits:     bits,
		AddedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, errors.Wrap(err, "encoding entry")
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(hashBucket)).Put([]byte(entry.ID), data)
	})
	if err != nil {
		return Entry{}, errors.Wrap(err, "storing entry")
	}
	logrus.WithFields(logrus.Fields{"id": entry.ID, "hash": hash}).Debug("Indexed hash")
	return entry, nil
}

// List returns every indexed entry.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(hashBucket)).ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return errors.Wrap(err, "decoding entry")
			}
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Search scans the index and returns every entry within maxDistance of
// hash. Entries whose bit length differs from the query are skipped.
func (s *Store) Search(hash string, maxDistance int) ([]Match, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	var matches []Match
	for _, e := range entries {
		dist, err := phash.Distance(hash, e.Hash)
		if err != nil {
			logrus.WithFields(logrus.Fields{"id": e.ID, "err": err}).
				Debug("Skipping incomparable entry")
			continue
		}
		if dist <= maxDistance {
			matches = append(matches, Match{Entry: e, Distance: dist})
		}
	}
	return matches, nil
}

// Count returns the number of indexed entries.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(hashBucket)).Stats().KeyN
		return nil
	})
	return n, err
}

// Delete removes an entry by ID.
func (s *Store) Delete(id string) error {
	return errors.Wrap(s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(hashBucket)).Delete([]byte(id))
	}), "deleting entry")
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
