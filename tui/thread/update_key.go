package thread

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.loaded {
		if key.Matches(msg, m.keys.Refresh) && !m.loading && m.source != nil {
			m.loading = true
			m.err = nil
			return m, batch(m.loadPost(), m.spinner.Tick)
		}
		return m, nil
	}

	if m.confirmDelete != "" {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.deleteNode(m.confirmDelete)
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Back):
			m.confirmDelete = ""
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.ToggleHints) || key.Matches(msg, m.keys.Back) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.picker.open() {
		if handled, next, cmd := m.handlePickerKey(msg); handled {
			return next, cmd
		}
	}

	if m.reactors.open() {
		switch {
		case key.Matches(msg, m.keys.NextFilter), key.Matches(msg, m.keys.PrevFilter):
			if n, ok := domain.FindReply(m.post.Replies, m.reactors.nodeID); ok {
				delta := 1
				if key.Matches(msg, m.keys.PrevFilter) {
					delta = -1
				}
				m.reactors.cycle(domain.DefaultTally(n.Metrics.Likes), delta)
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.reactors.close()
			return m, nil
		}
	}

	rows := m.collectRows()
	cur := m.cursorIndex(rows)
	var sel row
	if cur >= 0 {
		sel = rows[cur]
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		m.ensureCursorVisible(m.buildFrame())

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		m.ensureCursorVisible(m.buildFrame())

	case key.Matches(msg, m.keys.Top):
		m.setCursor(rows, m.cursorIndexFrom(rows, 0, 1))
		m.scroll = 0

	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(rows, m.cursorIndexFrom(rows, len(rows)-1, -1))
		m.ensureCursorVisible(m.buildFrame())

	case key.Matches(msg, m.keys.Enter):
		return m.activateRow(sel)

	case key.Matches(msg, m.keys.ToggleContent):
		if sel.kind == rowNode && m.store.isTruncated(sel.nodeID) {
			m.store.toggleContent(sel.nodeID)
		}

	case key.Matches(msg, m.keys.React):
		if sel.kind == rowNode {
			m.react(sel.nodeID, domain.DefaultReaction)
		}

	case key.Matches(msg, m.keys.ReactPicker):
		if sel.kind == rowNode {
			m.press.cancel()
			cmd := m.openPicker(sel.nodeID)
			return m, cmd
		}

	case key.Matches(msg, m.keys.Reactors):
		if sel.kind == rowNode {
			m.toggleReactors(sel.nodeID)
		}

	case key.Matches(msg, m.keys.ReplyInline), key.Matches(msg, m.keys.Reply):
		if sel.kind == rowNode {
			return m, m.requestReply(sel.node, key.Matches(msg, m.keys.ReplyInline))
		}

	case key.Matches(msg, m.keys.Delete):
		if sel.kind == rowNode && m.isOwn(sel.node) {
			m.confirmDelete = sel.nodeID
		}

	case key.Matches(msg, m.keys.CopyLink):
		if sel.kind == rowNode {
			return m, m.copyLink(sel.nodeID)
		}

	case key.Matches(msg, m.keys.Open):
		return m, m.navigateToDetail(sel.nodeID)

	case key.Matches(msg, m.keys.Pinned):
		cmd := m.togglePinned()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		if m.source != nil {
			return m, m.loadPost()
		}

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHelp = true

	case key.Matches(msg, m.keys.Back):
		return m.back()
	}

	return m, nil
}

// handlePickerKey drives the open picker from the keyboard. Keys it does not
// own close the picker and fall through.
func (m Model) handlePickerKey(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PickerLeft):
		m.picker.move(-1)
		return true, m, nil
	case key.Matches(msg, m.keys.PickerRight):
		m.picker.move(1)
		return true, m, nil
	case key.Matches(msg, m.keys.Enter):
		m.selectReaction("", m.picker.highlighted())
		return true, m, nil
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.ReactPicker):
		m.closePicker()
		return true, m, nil
	}
	if i, ok := common.PickerDigit(msg.String()); ok {
		m.selectReaction("", domain.AllReactions[i])
		return true, m, nil
	}
	m.closePicker()
	return false, m, nil
}

// activateRow is enter on a row: toggle disclosure, continue a thread, or
// expand truncated text.
func (m Model) activateRow(r row) (Model, tea.Cmd) {
	switch r.kind {
	case rowDisclosure:
		m.toggleThread(r.nodeID)
	case rowContinue:
		m.pushFocus(r.nodeID)
	case rowNode:
		if m.store.isTruncated(r.nodeID) {
			m.store.toggleContent(r.nodeID)
		}
	}
	return m, nil
}

// toggleThread flips a disclosure and keeps the cursor on its control.
func (m *Model) toggleThread(nodeID string) {
	m.store.toggleThread(nodeID)
	rows := m.collectRows()
	for i, r := range rows {
		if r.kind == rowDisclosure && r.nodeID == nodeID {
			m.setCursor(rows, i)
			break
		}
	}
	m.ensureCursorVisible(m.buildFrame())
}

// pushFocus continues a depth-capped thread as its own root.
func (m *Model) pushFocus(nodeID string) {
	if _, ok := domain.FindReply(m.post.Replies, nodeID); !ok {
		return
	}
	m.focus = append(m.focus, nodeID)
	m.closePicker()
	m.reactors.close()
	m.cursorKey, m.cursorIdx = "", 0
	m.scroll = 0
}

// back closes the innermost thing open; with nothing open it tells the host.
func (m Model) back() (Model, tea.Cmd) {
	switch {
	case m.reactors.open():
		m.reactors.close()
	case len(m.focus) > 0:
		popped := m.focus[len(m.focus)-1]
		m.focus = m.focus[:len(m.focus)-1]
		m.cursorKey, m.cursorIdx = "", 0
		m.setCursorByNode(popped)
		m.ensureCursorVisible(m.buildFrame())
	default:
		return m, func() tea.Msg { return BackMsg{} }
	}
	return m, nil
}

func (m *Model) togglePinned() tea.Cmd {
	m.pinnedOpen = !m.pinnedOpen
	return m.savePref(app.PinnedKey(m.post.ID), m.pinnedOpen)
}

func (m Model) cursorIndexFrom(rows []row, start, step int) int {
	for i := start; i >= 0 && i < len(rows); i += step {
		if rows[i].focusable() {
			return i
		}
	}
	return -1
}
