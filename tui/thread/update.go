package thread

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles a message, then re-measures, keeps the viewport consistent
// and checks whether the pagination sentinel came into view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m, after := m.afterUpdate()
	return m, batch(cmd, after)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible(m.buildFrame())
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.pager.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch msg.(type) {
	case PostLoadedMsg, PostErrorMsg, sourceChangedMsg, prefsLoadedMsg, prefSavedMsg:
		return m.handlePostMsg(msg)
	case PressMsg, ReleaseMsg, PointerLeaveMsg, SecondaryPressMsg, OutsideClickMsg, SelectReactionMsg, longPressMsg, pickerTimeoutMsg:
		return m.handleGestureMsg(msg)
	case SentinelVisibleMsg, pageLoadedMsg:
		return m.handlePaginationMsg(msg)
	case AddLocalReplyMsg:
		return m.handleLocalReplyMsg(msg.(AddLocalReplyMsg))
	case tea.KeyMsg:
		return m.handleKeyMsg(msg.(tea.KeyMsg))
	case tea.MouseMsg:
		return m.handleMouseMsg(msg.(tea.MouseMsg))
	}

	return m, nil
}

func (m Model) afterUpdate() (Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}
	rows := m.collectRows()
	m.measureRows(rows)
	if idx := m.cursorIndex(rows); idx >= 0 {
		m.setCursor(rows, idx)
	}
	f := m.buildFrame()
	m.clampScroll(f)
	cmd := m.maybeLoadOnSentinel(f)
	return m, cmd
}

// batch drops nil commands and avoids wrapping a single one.
func batch(cmds ...tea.Cmd) tea.Cmd {
	valid := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return tea.Batch(valid...)
}
