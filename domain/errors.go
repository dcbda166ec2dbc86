package domain

import "errors"

var (
	// ErrEmptyReply indicates the viewer submitted an empty reply.
	ErrEmptyReply = errors.New("reply cannot be empty")

	// ErrReplyNotFound indicates the referenced reply is not in the tree.
	ErrReplyNotFound = errors.New("reply not found")

	// ErrInvalidPost indicates the post source produced an unusable post.
	ErrInvalidPost = errors.New("invalid post")

	// ErrPreferenceNotFound indicates a preference key has never been stored.
	ErrPreferenceNotFound = errors.New("preference not found")
)
