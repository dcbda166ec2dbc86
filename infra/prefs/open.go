package prefs

import (
	"fmt"

	"github.com/CrestNiraj12/rantthread/app"
)

// Open returns the preference store for backend ("file", "sqlite" or
// "pebble") rooted at path.
func Open(backend, path string) (app.PreferenceStore, error) {
	var (
		store app.PreferenceStore
		err   error
	)
	switch backend {
	case "", "file":
		store, err = NewFileStore(path)
	case "sqlite":
		store, err = NewSQLiteStore(path)
	case "pebble":
		store, err = NewPebbleStore(path)
	default:
		return nil, fmt.Errorf("unknown preference backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
