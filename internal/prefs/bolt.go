package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	extmanerrors "github.com/alexisbeaulieu97/extman/pkg/errors"
)

const preferencesBucket = "preferences"

// BoltStore persists preferences in a BoltDB file.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the preference database at path.
func OpenBolt(path string) (*BoltStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, extmanerrors.NewStorageError(BackendBolt, "create directory", "", err)
	}

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, extmanerrors.NewStorageError(BackendBolt, "open", "", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(preferencesBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, extmanerrors.NewStorageError(BackendBolt, "create bucket", "", err)
	}

	return &BoltStore{db: db}, nil
}

// Get returns the stored value for key.
func (s *BoltStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if s == nil || s.db == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}

	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(preferencesBucket))
		if bucket == nil {
			return fmt.Errorf("preferences bucket is missing")
		}
		// the slice is only valid inside the transaction
		if raw := bucket.Get([]byte(key)); raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	if err != nil {
		return "", false, extmanerrors.NewStorageError(BackendBolt, "get", key, err)
	}
	return value, found, nil
}

// Set stores value under key.
func (s *BoltStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(preferencesBucket))
		if bucket == nil {
			return fmt.Errorf("preferences bucket is missing")
		}
		return bucket.Put([]byte(key), []byte(value))
	})
	if err != nil {
		return extmanerrors.NewStorageError(BackendBolt, "set", key, err)
	}
	return nil
}

// Close closes the BoltDB handle.
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ Store = (*BoltStore)(nil)
