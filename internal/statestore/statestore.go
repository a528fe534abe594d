// Package statestore persists named state snapshots as JSON blobs in an
// embedded bbolt file. One key per container, written whole on every
// mutation and restored on startup.
package statestore

import (
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("powerfit_state")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is a durable key-value adapter for container snapshots.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the state file at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "statestore: create dir")
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "statestore: open")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "statestore: create bucket")
	}
	return &Store{db: db}, nil
}

// Load reads the value stored under key into out. The second return is false
// when the key has never been written.
func (s *Store) Load(key string, out interface{}) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "statestore: load")
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "statestore: decode %q", key)
	}
	return true, nil
}

// Save serializes value to JSON and writes it under key.
func (s *Store) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "statestore: encode %q", key)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	return errors.Wrap(err, "statestore: save")
}

// Delete removes the value stored under key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	return errors.Wrap(err, "statestore: delete")
}

// Close closes the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}
