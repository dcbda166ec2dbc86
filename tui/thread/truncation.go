package thread

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderMode selects how truncation is measured.
type RenderMode int

const (
	// ModeCard measures against the fixed card budget (feed carousel).
	ModeCard RenderMode = iota
	// ModeLinear measures against a maximum line count (linear feed, detail).
	ModeLinear
)

// Layout is the measurement budget, in terminal rows.
type Layout struct {
	CardHeight         int
	HeaderFooterHeight int
	MediaMaxHeight     int
	LineHeight         int
	MaxLines           int
}

func DefaultLayout() Layout {
	return Layout{
		CardHeight:         14,
		HeaderFooterHeight: 4,
		MediaMaxHeight:     4,
		LineHeight:         1,
		MaxLines:           10,
	}
}

// Budget is the number of content rows that fit before truncation.
func (l Layout) Budget(mode RenderMode, hasMedia bool) int {
	var rows int
	switch mode {
	case ModeLinear:
		rows = l.MaxLines * max(l.LineHeight, 1)
	default:
		rows = l.CardHeight - l.HeaderFooterHeight
		if hasMedia {
			rows -= l.MediaMaxHeight
		}
	}
	return max(rows, 1)
}

// Measure reports whether content of contentHeight rows overflows the budget.
func Measure(mode RenderMode, layout Layout, contentHeight int, hasMedia bool) bool {
	return contentHeight > layout.Budget(mode, hasMedia)
}

// wrapContent lays text out at width cells, the same way the bubble does.
func wrapContent(text string, width int) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	rendered := lipgloss.NewStyle().Width(max(width, 1)).Render(text)
	return strings.Split(rendered, "\n")
}

// measureRows records the truncation flag of every node row not yet measured
// at the current width. Measuring happens in Update after layout; View only
// reads the flags.
func (m Model) measureRows(rows []row) {
	width := m.contentWidthBase()
	for _, r := range rows {
		if r.kind != rowNode || r.node == nil {
			continue
		}
		w := contentWidth(width, r.depth)
		if m.measuredWidth[r.node.ID] == w {
			continue
		}
		height := len(wrapContent(r.node.Content, w))
		m.store.setTruncated(r.node.ID, Measure(m.mode, m.layout, height, r.node.HasMedia()))
		m.measuredWidth[r.node.ID] = w
	}
}

func (m Model) contentWidthBase() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// contentWidth is the wrap width inside a bubble at depth.
func contentWidth(width, depth int) int {
	w := width - gutterPrefixWidth(depth) - bubbleChrome
	return max(w, 16)
}
