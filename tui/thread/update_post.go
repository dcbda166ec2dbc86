package thread

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
)

func (m Model) handlePostMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostLoadedMsg:
		return m.applyPost(msg.Post)

	case PostErrorMsg:
		m.loading = false
		m.err = msg.Err
		m.logger.Warn("post load failed", zap.Error(msg.Err))
		if m.loaded {
			return m, toast("Reload failed: "+msg.Err.Error(), true)
		}
		return m, nil

	case sourceChangedMsg:
		m.logger.Info("post source changed, reloading")
		return m, batch(m.loadPost(), m.waitForChange())

	case prefsLoadedMsg:
		if msg.PostID != m.post.ID {
			return m, nil
		}
		m.prefsLoaded = true
		if msg.Err != nil {
			m.logger.Warn("loading preferences failed", zap.Error(msg.Err))
			return m, toast("Could not load preferences", true)
		}
		m.pinnedOpen = msg.Pinned || !msg.PinnedFound
		m.unread = !msg.Read
		if m.unread {
			return m, m.savePref(app.ReadKey(m.post.Author.Handle, m.post.ID), true)
		}
		return m, nil

	case prefSavedMsg:
		if msg.Err != nil {
			m.logger.Warn("saving preference failed", zap.String("key", msg.Key), zap.Error(msg.Err))
			return m, toast("Could not save preference", true)
		}
		return m, nil
	}
	return m, nil
}

// applyPost installs a loaded post. Reloading the same post keeps per-node
// state (it is keyed by stable ID), the reveal position and local edits.
func (m Model) applyPost(post domain.Post) (Model, tea.Cmd) {
	same := m.loaded && post.ID == m.post.ID
	m.loading = false
	m.err = nil
	m.loaded = true

	if !same {
		m.store = newStateStore()
		m.measuredWidth = make(map[string]int)
		m.localReplies = nil
		m.deleted = make(map[string]struct{})
		m.focus = nil
		m.scroll = 0
		m.cursorKey, m.cursorIdx = "", 0
		m.prefsLoaded = false
		m.pinnedOpen = true
		m.unread = false
		m.press.cancel()
		m.closePicker()
		m.reactors.close()
		m.confirmDelete = ""
	}

	for id := range m.deleted {
		domain.RemoveReply(&post, id)
	}
	kept := m.localReplies[:0]
	for _, lr := range m.localReplies {
		if _, present := domain.FindReply(post.Replies, lr.node.ID); present {
			kept = append(kept, lr)
			continue
		}
		if err := domain.AppendReply(&post, lr.parentID, lr.node); err != nil {
			m.logger.Debug("dropping local reply, parent gone", zap.String("node", lr.node.ID))
			continue
		}
		kept = append(kept, lr)
	}
	m.localReplies = kept
	m.post = post

	if same {
		m.pager.resync(len(post.Replies))
	} else {
		m.pager = newPager(m.pager.pageSize, len(post.Replies))
	}
	m.trimFocus()
	m.dropStaleOverlays()

	m.logger.Info("post loaded",
		zap.String("post", post.ID),
		zap.Int("top_level", len(post.Replies)),
		zap.Bool("reload", same))

	if !same {
		return m, m.loadPrefs()
	}
	return m, nil
}

// trimFocus drops continued threads whose root no longer exists.
func (m *Model) trimFocus() {
	for len(m.focus) > 0 {
		if _, ok := domain.FindReply(m.post.Replies, m.focusedID()); ok {
			return
		}
		m.focus = m.focus[:len(m.focus)-1]
	}
}

// dropStaleOverlays closes the picker and reactor drawer and cancels a press
// when their node left the tree, together with any removed ancestor.
func (m *Model) dropStaleOverlays() {
	gone := func(id string) bool {
		if id == "" {
			return false
		}
		_, ok := domain.FindReply(m.post.Replies, id)
		return !ok
	}
	if gone(m.picker.nodeID) {
		m.closePicker()
	}
	if gone(m.reactors.nodeID) {
		m.reactors.close()
	}
	if gone(m.press.nodeID) {
		m.press.cancel()
	}
}

func (m Model) handleLocalReplyMsg(msg AddLocalReplyMsg) (Model, tea.Cmd) {
	content := strings.TrimSpace(msg.Content)
	node := &domain.ReplyNode{
		ID: domain.NewLocalID(),
		Author: domain.Author{
			FirstName: m.viewer.FirstName,
			LastName:  m.viewer.LastName,
			Handle:    m.viewer.Handle,
			Avatar:    m.viewer.Avatar,
		},
		Content:   content,
		Timestamp: "just now",
		Local:     true,
	}
	if err := domain.AppendReply(&m.post, msg.ParentID, node); err != nil {
		m.logger.Warn("adding local reply failed", zap.String("parent", msg.ParentID), zap.Error(err))
		if errors.Is(err, domain.ErrEmptyReply) {
			return m, toast("Reply is empty", true)
		}
		return m, toast("Could not add reply: "+err.Error(), true)
	}
	m.localReplies = append(m.localReplies, localReply{parentID: msg.ParentID, node: node})

	if msg.ParentID == "" || msg.ParentID == m.post.ID {
		m.pager.setTotal(len(m.post.Replies))
	} else if parent, ok := domain.FindReply(m.post.Replies, msg.ParentID); ok && len(liveChildren(parent)) >= 2 {
		m.store.setThreadExpanded(parent.ID, true)
	}
	m.setCursorByNode(node.ID)
	m.ensureCursorVisible(m.buildFrame())
	m.logger.Info("local reply added", zap.String("node", node.ID), zap.String("parent", msg.ParentID))
	return m, toast("Reply added", false)
}

// deleteNode removes exactly one node from memory and reports it.
func (m Model) deleteNode(id string) (Model, tea.Cmd) {
	m.confirmDelete = ""
	n, ok := domain.FindReply(m.post.Replies, id)
	if !ok {
		return m, nil
	}
	if !domain.RemoveReply(&m.post, id) {
		return m, nil
	}
	m.deleted[id] = struct{}{}
	m.store.forget(n)
	kept := m.localReplies[:0]
	for _, lr := range m.localReplies {
		if lr.node.ID != id {
			kept = append(kept, lr)
		}
	}
	m.localReplies = kept
	m.dropStaleOverlays()
	m.pager.setTotal(len(m.post.Replies))
	m.trimFocus()
	m.logger.Info("reply deleted", zap.String("node", id))
	return m, batch(
		func() tea.Msg { return DeleteConfirmedMsg{ID: id} },
		toast("Comment deleted", false),
	)
}
