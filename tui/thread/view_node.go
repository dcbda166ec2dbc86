package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

// bubbleChrome is the border and padding width around bubble content.
const bubbleChrome = 4

func gutterPrefixWidth(depth int) int {
	w := indent(depth)
	if depth > 0 {
		w += 2
	}
	return w
}

func gutterPrefix(depth int) string {
	s := strings.Repeat(" ", indent(depth))
	if depth > 0 {
		s += common.GutterStyle.Render("│ ")
	}
	return s
}

func mutedLine(s string) string {
	return common.MutedStyle.Render(s)
}

// renderRow draws one row. A panic while drawing is contained to this row,
// which turns into a placeholder; siblings keep rendering.
func (m Model) renderRow(r row, selected bool) (lines []string, zones []zone) {
	defer func() {
		if rec := recover(); rec != nil {
			m.logger.Error("reply failed to render",
				zap.String("node", r.nodeID),
				zap.Any("panic", rec))
			lines, zones = renderPlaceholder(r.depth), nil
		}
	}()
	if m.renderHook != nil {
		m.renderHook(r)
	}

	switch r.kind {
	case rowNode:
		return m.renderNode(r, selected)
	case rowDisclosure:
		return renderControl(r.depth, disclosureLabel(r), selected, zone{kind: zoneDisclosure, nodeID: r.nodeID})
	case rowContinue:
		label := fmt.Sprintf("Continue thread → (%s)", common.Pluralize(r.hidden, "more reply", "more replies"))
		return renderControl(r.depth+1, label, selected, zone{kind: zoneContinue, nodeID: r.nodeID})
	}
	return renderPlaceholder(r.depth), nil
}

func renderPlaceholder(depth int) []string {
	return []string{gutterPrefix(depth) + common.PlaceholderStyle.Render("⚠ This reply could not be displayed")}
}

func renderControl(depth int, label string, selected bool, z zone) ([]string, []zone) {
	style := common.DisclosureStyle
	marker := "  "
	if selected {
		style = common.FocusedControlStyle
		marker = "› "
	}
	prefix := gutterPrefix(depth)
	text := marker + label
	z.x0 = gutterPrefixWidth(depth)
	z.x1 = z.x0 + ansi.StringWidth(text)
	return []string{prefix + style.Render(text)}, []zone{z}
}

// renderNode draws a reply bubble: parent label, header, content, media,
// the reaction/action line and, when open, the picker and reactor drawer.
func (m Model) renderNode(r row, selected bool) ([]string, []zone) {
	n := r.node
	w := contentWidth(m.contentWidthBase(), r.depth)
	var inner []string
	var zones []zone

	if r.depth > 0 && r.parentLabel != "" {
		inner = append(inner, common.MutedStyle.Render("↪ "+r.parentLabel))
	}
	inner = append(inner, ansi.Truncate(m.nodeHeader(n), w, "…"))

	content := wrapContent(n.Content, w)
	truncated := m.store.isTruncated(n.ID)
	expanded := m.store.expansionFor(n.ID).ContentExpanded
	if budget := m.layout.Budget(m.mode, n.HasMedia()); truncated && !expanded && len(content) > budget {
		content = content[:budget]
	}
	for _, line := range content {
		inner = append(inner, common.ContentStyle.Render(line))
	}
	if truncated {
		label := "… Show more"
		if expanded {
			label = "Show less"
		}
		zones = append(zones, zone{kind: zoneShowMore, nodeID: n.ID, line: len(inner), x0: 0, x1: ansi.StringWidth(label)})
		inner = append(inner, common.DisclosureStyle.Render(label))
	}

	for _, md := range n.AllMedia() {
		inner = append(inner, ansi.Truncate(renderMediaLabel(md), w, "…"))
	}

	actionLine, actionZones := m.renderActionLine(n)
	for _, z := range actionZones {
		z.line = len(inner)
		zones = append(zones, z)
	}
	inner = append(inner, actionLine)

	if m.picker.nodeID == n.ID {
		pickerLine, chipZones := m.renderPicker(n)
		for _, z := range chipZones {
			z.line = len(inner)
			zones = append(zones, z)
		}
		inner = append(inner, pickerLine)
	}

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	box := strings.Split(style.Render(strings.Join(inner, "\n")), "\n")

	prefix := gutterPrefix(r.depth)
	prefixW := gutterPrefixWidth(r.depth)
	lines := make([]string, 0, len(box)+4)
	for _, l := range box {
		lines = append(lines, prefix+l)
	}
	// Inner content sits below the top border, after the left border and
	// padding.
	for i := range zones {
		zones[i].line++
		zones[i].x0 += prefixW + 2
		zones[i].x1 += prefixW + 2
	}

	if m.reactors.nodeID == n.ID {
		drawer, drawerZones := m.renderReactors(n, w+bubbleChrome)
		for _, z := range drawerZones {
			z.line += len(lines)
			z.x0 += prefixW
			z.x1 += prefixW
			zones = append(zones, z)
		}
		for _, l := range drawer {
			lines = append(lines, prefix+l)
		}
	}
	return lines, zones
}

func (m Model) nodeHeader(n *domain.ReplyNode) string {
	parts := []string{
		common.AuthorStyle.Render(n.Author.DisplayName()),
		common.HandleStyle.Render(n.Author.Label()),
	}
	badge := n.TitleBadge
	if badge == "" {
		badge = n.Author.TitleBadge
	}
	if badge != "" {
		parts = append(parts, common.BadgeStyle.Render(badge))
	}
	if n.Author.Role != "" {
		parts = append(parts, common.BadgeStyle.Render(n.Author.Role))
	}
	if n.IsPinned() {
		parts = append(parts, common.PinnedStyle.Render("📌"))
	}
	if m.isOwn(n) {
		parts = append(parts, common.SuccessStyle.Render("(you)"))
	}
	return strings.Join(parts, " ") + common.TimestampStyle.Render(" · "+n.Timestamp)
}

// renderActionLine draws the reaction affordance, the reaction summary and
// the reply count. Zones are relative to the line.
func (m Model) renderActionLine(n *domain.ReplyNode) (string, []zone) {
	current := m.store.reactionFor(n)
	affordance := current.Emoji() + " " + current.Label()
	affStyle := common.ChipInactiveStyle.UnsetPadding()
	if current != domain.ReactionNone {
		affStyle = common.ChipActiveStyle.UnsetPadding()
	}

	tally := domain.DefaultTally(n.Metrics.Likes)
	var summary strings.Builder
	for _, r := range tally.Top(3) {
		summary.WriteString(r.Emoji())
	}
	if summary.Len() > 0 {
		summary.WriteString(" ")
	}
	summary.WriteString(fmt.Sprint(m.store.displayTotal(n)))

	replies := "💬 " + fmt.Sprint(len(liveChildren(n)))
	sep := "   "

	affW := ansi.StringWidth(affordance)
	sumW := ansi.StringWidth(summary.String())
	zones := []zone{
		{kind: zoneReact, nodeID: n.ID, x0: 0, x1: affW},
		{kind: zoneReactors, nodeID: n.ID, x0: affW + len(sep), x1: affW + len(sep) + sumW},
	}
	line := affStyle.Render(affordance) + sep +
		common.TimestampStyle.Render(summary.String()) + sep +
		common.TimestampStyle.Render(replies)
	return line, zones
}

// renderPicker draws the six reaction chips with their digit shortcuts.
func (m Model) renderPicker(n *domain.ReplyNode) (string, []zone) {
	current := m.store.reactionFor(n)
	chips := make([]string, 0, len(domain.AllReactions))
	zones := make([]zone, 0, len(domain.AllReactions))
	x := 0
	for i, r := range domain.AllReactions {
		label := fmt.Sprintf("%s %d", r.Emoji(), i+1)
		if r == current {
			label += "•"
		}
		style := common.ChipInactiveStyle
		if i == m.picker.cursor {
			style = common.ChipActiveStyle
		}
		chip := style.Render(label)
		cw := lipgloss.Width(chip)
		zones = append(zones, zone{kind: zoneChip, nodeID: n.ID, x0: x, x1: x + cw, reaction: r})
		chips = append(chips, chip)
		x += cw
	}
	return strings.Join(chips, ""), zones
}

func (m Model) isOwn(n *domain.ReplyNode) bool {
	if n == nil {
		return false
	}
	return n.Local || (m.viewer.Handle != "" && strings.EqualFold(n.Author.Handle, m.viewer.Handle))
}
