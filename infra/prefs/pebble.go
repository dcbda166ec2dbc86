package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

const pebbleKeyPrefix = "pref:"

// PebbleStore keeps preferences in an embedded Pebble key-value store.
type PebbleStore struct {
	db *pebble.DB
}

func NewPebbleStore(path string) (*PebbleStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}
	return &PebbleStore{db: db}, nil
}

func (s *PebbleStore) LoadBool(ctx context.Context, key string) (bool, bool, error) {
	if err := ctx.Err(); err != nil {
		return false, false, err
	}
	v, closer, err := s.db.Get([]byte(pebbleKeyPrefix + key))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("loading preference %s: %w", key, err)
	}
	defer closer.Close()
	return len(v) == 1 && v[0] == 1, true, nil
}

func (s *PebbleStore) SaveBool(ctx context.Context, key string, value bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := []byte{0}
	if value {
		b[0] = 1
	}
	if err := s.db.Set([]byte(pebbleKeyPrefix+key), b, pebble.Sync); err != nil {
		return fmt.Errorf("saving preference %s: %w", key, err)
	}
	return nil
}

func (s *PebbleStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
