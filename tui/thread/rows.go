package thread

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/domain"
)

type rowKind int

const (
	rowNode rowKind = iota
	rowDisclosure
	rowContinue
	rowPlaceholder
)

// row is one focusable or informational line group of the rendered tree.
type row struct {
	kind        rowKind
	node        *domain.ReplyNode
	nodeID      string
	depth       int
	parentLabel string
	hidden      int  // replies behind a disclosure or continue control
	expanded    bool // disclosure state
	topLevel    int  // index of the top-level ancestor in the displayed list
}

func (r row) key() string {
	return fmt.Sprintf("%d:%s", r.kind, r.nodeID)
}

func (r row) focusable() bool {
	return r.kind != rowPlaceholder
}

// indent is the left indent for depth. It never goes negative and saturates
// at MaxLevel.
func indent(depth int) int {
	return min(max(depth, 0), MaxLevel) * UnitIndent
}

// roots returns the nodes rendered at depth 0: the paginated top level, or
// the focused subtree when a thread was continued.
func (m Model) roots() ([]*domain.ReplyNode, string) {
	if id := m.focusedID(); id != "" {
		if n, ok := domain.FindReply(m.post.Replies, id); ok {
			return []*domain.ReplyNode{n}, ""
		}
	}
	return m.pager.displayed(m.post.Replies), m.post.Author.Label()
}

func (m Model) focusedID() string {
	if len(m.focus) == 0 {
		return ""
	}
	return m.focus[len(m.focus)-1]
}

// collectRows flattens the visible tree in render order.
func (m Model) collectRows() []row {
	roots, label := m.roots()
	rows := make([]row, 0, len(roots)*2)
	for i, n := range roots {
		for _, r := range m.collectNode(n, 0, label) {
			r.topLevel = i
			rows = append(rows, r)
		}
	}
	return rows
}

// collectNode emits a node, then its visible children at depth+1. Below
// MaxLevel recursion stops and a continue control stands in for the
// children. A panic anywhere in the subtree is contained to a placeholder.
func (m Model) collectNode(n *domain.ReplyNode, depth int, parentLabel string) (rows []row) {
	if n == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("reply subtree failed to build",
				zap.String("node", n.ID),
				zap.Any("panic", r))
			rows = []row{{kind: rowPlaceholder, nodeID: n.ID, depth: depth}}
		}
	}()
	if m.collectHook != nil {
		m.collectHook(n)
	}

	rows = append(rows, row{kind: rowNode, node: n, nodeID: n.ID, depth: depth, parentLabel: parentLabel})

	children := liveChildren(n)
	if len(children) == 0 {
		return rows
	}
	if depth >= MaxLevel {
		return append(rows, row{kind: rowContinue, node: n, nodeID: n.ID, depth: depth, hidden: domain.CountReplies(n)})
	}

	expanded := m.store.expansionFor(n.ID).ThreadExpanded
	visible := children
	if len(children) >= 2 && !expanded {
		visible = children[:1]
	}
	for _, c := range visible {
		rows = append(rows, m.collectNode(c, depth+1, n.Author.Label())...)
	}
	if len(children) >= 2 {
		rows = append(rows, row{
			kind:     rowDisclosure,
			node:     n,
			nodeID:   n.ID,
			depth:    depth + 1,
			hidden:   len(children) - 1,
			expanded: expanded,
		})
	}
	return rows
}

func liveChildren(n *domain.ReplyNode) []*domain.ReplyNode {
	out := make([]*domain.ReplyNode, 0, len(n.Replies))
	for _, c := range n.Replies {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// disclosureLabel is the text of the "View N replies" control.
func disclosureLabel(r row) string {
	if r.expanded {
		return "Hide replies"
	}
	if r.hidden == 1 {
		return "View 1 reply"
	}
	return fmt.Sprintf("View %d replies", r.hidden)
}
