package app

import (
	"context"
	"fmt"
)

// PreferenceStore persists boolean UI preferences under string keys.
// Implemented by infrastructure (JSON file, SQLite, Pebble).
type PreferenceStore interface {
	// LoadBool returns the stored value and whether the key was ever saved.
	LoadBool(ctx context.Context, key string) (value bool, found bool, err error)

	// SaveBool stores value under key, replacing any previous value.
	SaveBool(ctx context.Context, key string, value bool) error

	Close() error
}

// PinnedKey is the "pinned section expanded" preference for a post.
func PinnedKey(postID string) string {
	return "pinned/" + postID
}

// ReadKey is the per-post read flag, keyed by the post author and post.
func ReadKey(authorHandle, postID string) string {
	return fmt.Sprintf("read/%s/%s", authorHandle, postID)
}
