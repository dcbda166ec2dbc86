package thread

import (
	"github.com/CrestNiraj12/rantthread/domain"
)

type zoneKind int

const (
	zoneReact zoneKind = iota
	zoneReactors
	zoneChip
	zoneFilter
	zoneDisclosure
	zoneContinue
	zoneShowMore
	zonePinned
)

// zone is a clickable span on one content line. x1 is exclusive.
type zone struct {
	kind     zoneKind
	nodeID   string
	line     int
	x0, x1   int
	reaction domain.ReactionType
	index    int
}

func (z zone) contains(x, line int) bool {
	return z.line == line && x >= z.x0 && x < z.x1
}

// frame is the laid-out content of the engine before viewport clipping.
// Update and View build it the same way, so hit testing matches what is
// drawn.
type frame struct {
	lines        []string
	zones        []zone
	rows         []row
	rowStart     []int
	rowEnd       []int // exclusive
	sentinelLine int
	cursor       int
}

func (f *frame) add(lines ...string) {
	f.lines = append(f.lines, lines...)
}

// place appends a rendered block and its zones, shifting zones to the block's
// position.
func (f *frame) place(lines []string, zones []zone) (start, end int) {
	start = len(f.lines)
	for _, z := range zones {
		z.line += start
		f.zones = append(f.zones, z)
	}
	f.lines = append(f.lines, lines...)
	return start, len(f.lines)
}

// hit returns the zone under (x, line), if any.
func (f frame) hit(x, line int) (zone, bool) {
	for i := len(f.zones) - 1; i >= 0; i-- {
		if f.zones[i].contains(x, line) {
			return f.zones[i], true
		}
	}
	return zone{}, false
}

// rowAt returns the index of the row drawn on line, or -1.
func (f frame) rowAt(line int) int {
	for i := range f.rows {
		if line >= f.rowStart[i] && line < f.rowEnd[i] {
			return i
		}
	}
	return -1
}

func (m Model) buildFrame() frame {
	rows := m.collectRows()
	f := frame{
		rows:         rows,
		rowStart:     make([]int, len(rows)),
		rowEnd:       make([]int, len(rows)),
		sentinelLine: -1,
		cursor:       m.cursorIndex(rows),
	}

	f.add(m.renderPostHeader()...)
	if len(m.focus) == 0 {
		lines, zones := m.renderPinned()
		f.place(lines, zones)
	}
	f.add("", m.renderCommentsHeader())

	if len(rows) == 0 {
		f.add(mutedLine("No comments yet."))
	}
	for i, r := range rows {
		lines, zones := m.renderRow(r, i == f.cursor)
		f.rowStart[i], f.rowEnd[i] = f.place(lines, zones)
	}

	if len(m.focus) == 0 {
		f.sentinelLine = len(f.lines)
		f.add(m.renderSentinel())
	}
	return f
}

// cursorIndex resolves the cursor to a focusable row, falling back to the
// nearest row when the remembered one disappeared.
func (m Model) cursorIndex(rows []row) int {
	if len(rows) == 0 {
		return -1
	}
	for i, r := range rows {
		if r.key() == m.cursorKey && r.focusable() {
			return i
		}
	}
	idx := min(max(m.cursorIdx, 0), len(rows)-1)
	for d := 0; d < len(rows); d++ {
		if i := idx - d; i >= 0 && rows[i].focusable() {
			return i
		}
		if i := idx + d; i < len(rows) && rows[i].focusable() {
			return i
		}
	}
	return -1
}

func (m *Model) setCursor(rows []row, idx int) {
	if idx < 0 || idx >= len(rows) {
		return
	}
	m.cursorIdx = idx
	m.cursorKey = rows[idx].key()
}

// setCursorByNode moves the cursor onto a node's row if it is rendered.
func (m *Model) setCursorByNode(nodeID string) {
	rows := m.collectRows()
	for i, r := range rows {
		if r.kind == rowNode && r.nodeID == nodeID {
			m.setCursor(rows, i)
			return
		}
	}
}

// moveCursor steps over non-focusable rows.
func (m *Model) moveCursor(delta int) {
	rows := m.collectRows()
	cur := m.cursorIndex(rows)
	if cur < 0 {
		return
	}
	for i := cur + delta; i >= 0 && i < len(rows); i += delta {
		if rows[i].focusable() {
			m.setCursor(rows, i)
			return
		}
	}
	m.setCursor(rows, cur)
}

func (m Model) viewHeight() int {
	return max(m.height-footerHeight, 3)
}

// ensureCursorVisible scrolls so the cursor row is inside the viewport. On
// the last row the sentinel line below it is kept in view too.
func (m *Model) ensureCursorVisible(f frame) {
	if m.height <= 0 || f.cursor < 0 {
		return
	}
	start, end := f.rowStart[f.cursor], f.rowEnd[f.cursor]
	if f.cursor == len(f.rows)-1 && f.sentinelLine >= 0 {
		end = f.sentinelLine + 1
	}
	vh := m.viewHeight()
	if end > m.scroll+vh {
		m.scroll = end - vh
	}
	if start < m.scroll {
		m.scroll = start
	}
	m.clampScroll(f)
}

func (m *Model) clampScroll(f frame) {
	if m.height <= 0 {
		m.scroll = 0
		return
	}
	maxScroll := max(len(f.lines)-m.viewHeight(), 0)
	m.scroll = min(max(m.scroll, 0), maxScroll)
}
