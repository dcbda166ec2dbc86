package thread

import (
	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
)

// PostLoadedMsg delivers a freshly loaded post.
type PostLoadedMsg struct {
	Post domain.Post
}

// PostErrorMsg is sent when the post source fails.
type PostErrorMsg struct {
	Err error
}

type sourceChangedMsg struct{}

// --- Gestures ---
// Pointer gestures on a node's reaction affordance. Mouse input is translated
// into these; they can also be sent directly.

// PressMsg starts a press on a node's reaction affordance.
type PressMsg struct {
	NodeID string
}

// ReleaseMsg ends a press. Releasing before the long-press delay is a tap.
type ReleaseMsg struct {
	NodeID string
}

// PointerLeaveMsg cancels a press when the pointer moves off the affordance.
type PointerLeaveMsg struct {
	NodeID string
}

// SecondaryPressMsg opens the picker directly (right click).
type SecondaryPressMsg struct {
	NodeID string
}

// OutsideClickMsg closes the picker.
type OutsideClickMsg struct{}

// SelectReactionMsg picks a reaction from the open picker.
type SelectReactionMsg struct {
	NodeID   string
	Reaction domain.ReactionType
}

// SentinelVisibleMsg reports that the load-more sentinel scrolled into view.
type SentinelVisibleMsg struct{}

type longPressMsg struct {
	NodeID string
	Seq    int
}

type pickerTimeoutMsg struct {
	Seq int
}

type pageLoadedMsg struct {
	PostID string
}

// --- Collaborator messages ---

// ReplyRequestedMsg asks the host to open a composer for a reply.
type ReplyRequestedMsg struct {
	ParentID      string
	AuthorLabel   string
	QuotedContent string
	AvatarURL     string
	UseInline     bool
}

// AddLocalReplyMsg appends a reply written by the viewer.
type AddLocalReplyMsg struct {
	ParentID string
	Content  string
}

// DeleteConfirmedMsg reports a node the viewer deleted locally.
type DeleteConfirmedMsg struct {
	ID string
}

// NavigateMsg asks the host to open the post detail view.
type NavigateMsg struct {
	PostIndex int
	Options   app.NavigateOptions
}

// ToastMsg is a fire-and-forget notification for the host's status bar.
type ToastMsg struct {
	Text  string
	IsErr bool
}

// BackMsg is sent when esc is pressed with nothing left to close.
type BackMsg struct{}

type prefsLoadedMsg struct {
	PostID      string
	Pinned      bool
	PinnedFound bool
	Read        bool
	Err         error
}

type prefSavedMsg struct {
	Key string
	Err error
}
