package thread

import "github.com/CrestNiraj12/rantthread/domain"

// Reveal makes a node visible and puts the cursor on it: the page holding
// its top-level ancestor is exposed, collapsed ancestors expand, and a node
// beyond MaxLevel is shown inside a continued thread.
func (m Model) Reveal(nodeID string) Model {
	path := domain.ReplyPath(m.post.Replies, nodeID)
	if path == nil {
		return m
	}
	for i, n := range m.post.Replies {
		if n == path[0] {
			m.pager.visible = min(max(m.pager.visible, i+1), m.pager.total)
			break
		}
	}

	start := 0
	m.focus = nil
	if depth := len(path) - 1; depth > MaxLevel {
		start = depth - MaxLevel
		m.focus = []string{path[start].ID}
	}
	for _, n := range path[start : len(path)-1] {
		if len(liveChildren(n)) >= 2 {
			m.store.setThreadExpanded(n.ID, true)
		}
	}

	m.setCursorByNode(nodeID)
	m.ensureCursorVisible(m.buildFrame())
	return m
}
