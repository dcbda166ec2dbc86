package app

import (
	"context"

	"github.com/CrestNiraj12/rantthread/domain"
)

// PostSource supplies a post with its full reply tree. Nested replies are
// always materialized; only the top level is paginated by the engine.
type PostSource interface {
	// LoadPost returns the post and every reply under it.
	LoadPost(ctx context.Context) (domain.Post, error)
}

// WatchingSource is a PostSource that can report when its backing data
// changed. Changes delivers one value per change and is closed by Close.
type WatchingSource interface {
	PostSource
	Changes() <-chan struct{}
	Close() error
}
