// Package prefs provides durable key/value storage for user preferences.
package prefs

import (
	"context"
	"fmt"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Store is a durable string key/value store. Get reports ok=false for keys
// that were never set.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the store implementation for backend rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		store, err := NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendSQLite:
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendBolt:
		store, err := OpenBolt(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown preference backend %q", backend)
	}
}
