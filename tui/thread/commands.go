package thread

import (
	"context"
	"fmt"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

const prefTimeout = 2 * time.Second

func toast(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text, IsErr: isErr} }
}

// waitForChange blocks on the source's change channel and reports one change.
// The handler re-arms it.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return sourceChangedMsg{}
	}
}

// loadPrefs reads the pinned-section and read flags for the current post.
func (m Model) loadPrefs() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	store := m.prefs
	postID := m.post.ID
	pinnedKey := app.PinnedKey(postID)
	readKey := app.ReadKey(m.post.Author.Handle, postID)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), prefTimeout)
		defer cancel()
		pinned, pinnedFound, err := store.LoadBool(ctx, pinnedKey)
		if err != nil {
			return prefsLoadedMsg{PostID: postID, Err: fmt.Errorf("loading %s: %w", pinnedKey, err)}
		}
		read, _, err := store.LoadBool(ctx, readKey)
		if err != nil {
			return prefsLoadedMsg{PostID: postID, Err: fmt.Errorf("loading %s: %w", readKey, err)}
		}
		return prefsLoadedMsg{PostID: postID, Pinned: pinned, PinnedFound: pinnedFound, Read: read}
	}
}

func (m Model) savePref(key string, value bool) tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	store := m.prefs
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), prefTimeout)
		defer cancel()
		return prefSavedMsg{Key: key, Err: store.SaveBool(ctx, key, value)}
	}
}

// replyLink is the shareable link of a reply.
func (m Model) replyLink(nodeID string) string {
	return m.linkBase + url.PathEscape(m.post.ID) + "#reply-" + url.PathEscape(nodeID)
}

func (m Model) copyLink(nodeID string) tea.Cmd {
	link := m.replyLink(nodeID)
	write := m.clipboard
	logger := m.logger
	return func() tea.Msg {
		if err := write(link); err != nil {
			logger.Warn("copy link failed", zap.Error(err))
			return ToastMsg{Text: "Copy failed: " + err.Error(), IsErr: true}
		}
		return ToastMsg{Text: "Link copied"}
	}
}

func (m Model) requestReply(n *domain.ReplyNode, inline bool) tea.Cmd {
	req := ReplyRequestedMsg{
		ParentID:      n.ID,
		AuthorLabel:   n.Author.Label(),
		QuotedContent: common.QuoteExcerpt(n.Content, 280),
		AvatarURL:     n.Author.Avatar,
		UseInline:     inline,
	}
	return func() tea.Msg { return req }
}

func (m Model) navigateToDetail(replyTo string) tea.Cmd {
	msg := NavigateMsg{
		PostIndex: m.post.Index,
		Options:   app.NavigateOptions{ReplyTo: replyTo, ShowComments: true},
	}
	return func() tea.Msg { return msg }
}
