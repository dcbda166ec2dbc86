package thread

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// startPageLoad begins a simulated page fetch. The latency tick is never
// cancelled; a tick for a post that was replaced meanwhile is ignored.
func (m *Model) startPageLoad() tea.Cmd {
	if len(m.focus) > 0 || !m.pager.begin() {
		return nil
	}
	postID := m.post.ID
	m.logger.Debug("loading comments page",
		zap.String("post", postID),
		zap.Int("visible", m.pager.visible),
		zap.Int("total", m.pager.total))
	return tea.Batch(
		tea.Tick(pageLatency, func(time.Time) tea.Msg {
			return pageLoadedMsg{PostID: postID}
		}),
		m.spinner.Tick,
	)
}

func (m Model) handlePaginationMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SentinelVisibleMsg:
		cmd := m.startPageLoad()
		return m, cmd

	case pageLoadedMsg:
		if msg.PostID != m.post.ID || !m.pager.loading {
			return m, nil
		}
		m.pager.finish()
		m.logger.Debug("comments page loaded", zap.Int("visible", m.pager.visible))
		return m, nil
	}
	return m, nil
}

// maybeLoadOnSentinel starts a page load when the sentinel line is inside the
// viewport. It needs a known window height.
func (m *Model) maybeLoadOnSentinel(f frame) tea.Cmd {
	if m.height <= 0 || f.sentinelLine < 0 || !m.pager.canLoadMore() {
		return nil
	}
	top := m.scroll
	if f.sentinelLine < top || f.sentinelLine >= top+m.viewHeight() {
		return nil
	}
	return m.startPageLoad()
}
