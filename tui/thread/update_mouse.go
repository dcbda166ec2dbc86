package thread

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/domain"
)

const wheelStep = 3

// handleMouseMsg maps terminal mouse events onto the gesture messages and
// clickable zones of the current frame.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroll -= wheelStep
		m.clampScroll(m.buildFrame())
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scroll += wheelStep
		m.clampScroll(m.buildFrame())
		return m, nil
	}

	f := m.buildFrame()
	line, inside := m.contentLine(msg.Y)
	z, hit := zone{}, false
	if inside {
		z, hit = f.hit(msg.X, line)
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.press.phase == pressPressed && !(hit && z.kind == zoneReact && z.nodeID == m.press.nodeID) {
			return m.handleGestureMsg(PointerLeaveMsg{NodeID: m.press.nodeID})
		}
		return m, nil

	case tea.MouseActionRelease:
		if hit && z.kind == zoneReact {
			return m.handleGestureMsg(ReleaseMsg{NodeID: z.nodeID})
		}
		m.press.cancel()
		return m, nil

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonRight {
			if hit && z.kind == zoneReact {
				return m.handleGestureMsg(SecondaryPressMsg{NodeID: z.nodeID})
			}
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
	default:
		return m, nil
	}

	if m.picker.open() && !(hit && (z.kind == zoneChip || z.kind == zoneReact) && z.nodeID == m.picker.nodeID) {
		m, _ = m.handleGestureMsg(OutsideClickMsg{})
	}
	if inside {
		if idx := f.rowAt(line); idx >= 0 && f.rows[idx].focusable() {
			m.setCursor(f.rows, idx)
		}
	}
	if !hit {
		return m, nil
	}
	return m.clickZone(z)
}

// contentLine converts a screen row into a frame line.
func (m Model) contentLine(y int) (int, bool) {
	if y < 0 {
		return 0, false
	}
	if m.height > 0 && y >= m.viewHeight() {
		return 0, false
	}
	return m.scroll + y, true
}

func (m Model) clickZone(z zone) (Model, tea.Cmd) {
	switch z.kind {
	case zoneReact:
		return m.handleGestureMsg(PressMsg{NodeID: z.nodeID})
	case zoneChip:
		return m.handleGestureMsg(SelectReactionMsg{NodeID: z.nodeID, Reaction: z.reaction})
	case zoneReactors:
		m.toggleReactors(z.nodeID)
	case zoneFilter:
		if m.reactors.nodeID == z.nodeID {
			m.reactors.filter = z.index
		}
	case zoneDisclosure:
		m.toggleThread(z.nodeID)
	case zoneContinue:
		m.pushFocus(z.nodeID)
	case zoneShowMore:
		if _, ok := domain.FindReply(m.post.Replies, z.nodeID); ok {
			m.store.toggleContent(z.nodeID)
		}
	case zonePinned:
		cmd := m.togglePinned()
		return m, cmd
	}
	return m, nil
}
