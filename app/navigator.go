package app

import (
	"context"

	"github.com/CrestNiraj12/rantthread/domain"
)

// NavigateOptions tunes how the post detail opens.
type NavigateOptions struct {
	ReplyTo      string // node ID to place the cursor on
	ShowComments bool
}

// Navigator resolves the post behind a full-page detail view. The TUI shows
// the returned post in a linear, fully scrollable engine.
type Navigator interface {
	OpenPostDetail(ctx context.Context, postIndex int, opts NavigateOptions) (domain.Post, error)
}
