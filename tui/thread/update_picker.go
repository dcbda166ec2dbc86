package thread

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/domain"
)

func (m Model) handleGestureMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PressMsg:
		cmd := m.beginPress(msg.NodeID)
		return m, cmd

	case ReleaseMsg:
		m.releasePress(msg.NodeID)
		return m, nil

	case PointerLeaveMsg:
		if m.press.pressed(msg.NodeID) {
			m.press.cancel()
		}
		return m, nil

	case SecondaryPressMsg:
		m.press.cancel()
		cmd := m.openPicker(msg.NodeID)
		return m, cmd

	case OutsideClickMsg:
		m.closePicker()
		return m, nil

	case SelectReactionMsg:
		m.selectReaction(msg.NodeID, msg.Reaction)
		return m, nil

	case longPressMsg:
		if !m.press.pressed(msg.NodeID) || msg.Seq != m.press.seq {
			return m, nil
		}
		m.press.cancel()
		cmd := m.openPicker(msg.NodeID)
		return m, cmd

	case pickerTimeoutMsg:
		if m.picker.open() && msg.Seq == m.picker.seq {
			m.closePicker()
		}
		return m, nil
	}
	return m, nil
}

// beginPress enters Pressed and schedules the long-press tick. An earlier
// press is cancelled, and a picker on another node closes as if clicked
// outside.
func (m *Model) beginPress(nodeID string) tea.Cmd {
	if _, ok := domain.FindReply(m.post.Replies, nodeID); !ok {
		return nil
	}
	if m.picker.open() && m.picker.nodeID != nodeID {
		m.closePicker()
	}
	seq := m.press.start(nodeID)
	return tea.Tick(longPressDelay, func(time.Time) tea.Msg {
		return longPressMsg{NodeID: nodeID, Seq: seq}
	})
}

// releasePress turns a press released before the long-press delay into a
// short tap on the default reaction.
func (m *Model) releasePress(nodeID string) {
	if !m.press.pressed(nodeID) {
		m.press.cancel()
		return
	}
	m.press.cancel()
	m.react(nodeID, domain.DefaultReaction)
}

func (m *Model) openPicker(nodeID string) tea.Cmd {
	n, ok := domain.FindReply(m.post.Replies, nodeID)
	if !ok {
		return nil
	}
	seq := m.picker.show(nodeID, m.store.reactionFor(n))
	m.logger.Debug("reaction picker opened", zap.String("node", nodeID))
	return tea.Tick(pickerAutoClose, func(time.Time) tea.Msg {
		return pickerTimeoutMsg{Seq: seq}
	})
}

func (m *Model) closePicker() {
	if m.picker.open() {
		m.picker.close()
	}
}

// selectReaction applies a choice from the open picker and closes it. An
// empty nodeID targets the node the picker is open on.
func (m *Model) selectReaction(nodeID string, r domain.ReactionType) {
	if !m.picker.open() {
		return
	}
	if nodeID == "" {
		nodeID = m.picker.nodeID
	}
	if nodeID != m.picker.nodeID {
		return
	}
	m.closePicker()
	m.react(nodeID, r)
}

func (m *Model) react(nodeID string, r domain.ReactionType) {
	n, ok := domain.FindReply(m.post.Replies, nodeID)
	if !ok || r == domain.ReactionNone {
		return
	}
	next := m.store.applyReaction(n, r)
	m.logger.Debug("reaction changed",
		zap.String("node", nodeID),
		zap.String("selected", string(r)),
		zap.String("now", string(next)))
}
