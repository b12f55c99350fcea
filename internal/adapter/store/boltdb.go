package store

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	bucketWordMap = []byte("word_map")
	bucketMeta    = []byte("meta")
)

// BoltStore persists word-map entries in a bbolt database so several runs
// can share one map.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketWordMap, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) LoadAll() (map[string]string, error) {
	entries := make(map[string]string)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWordMap).ForEach(func(k, v []byte) error {
			entries[string(k)] = string(v)
			return nil
		})
	})
	return entries, err
}

// PutAll writes every entry in a single transaction.
func (s *BoltStore) PutAll(entries map[string]string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketWordMap)
		for word, replacement := range entries {
			if word == "" {
				continue
			}
			if err := b.Put([]byte(word), []byte(replacement)); err != nil {
				return fmt.Errorf("failed to store %q: %w", word, err)
			}
		}
		return nil
	})
}

func (s *BoltStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWordMap).ForEach(func(_, _ []byte) error {
			n++
			return nil
		})
	})
	return n, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
