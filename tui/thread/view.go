package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

const footerHeight = 1

// View renders the post, its reply tree and a one-line footer.
func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return common.ErrorStyle.Render("Error: "+m.err.Error()) + "\n" +
				common.MutedStyle.Render("r: retry • q: quit")
		}
		return m.spinner.View() + " Loading post..."
	}
	if m.showHelp {
		return m.help.FullHelpView(helpKeys{m.keys}.FullHelp()) + "\n\n" +
			common.MutedStyle.Render("? or esc: close")
	}

	f := m.buildFrame()
	return m.renderViewport(f.lines) + "\n" + m.footerView()
}

// renderViewport clips content to the window, marking hidden content above
// and below.
func (m Model) renderViewport(lines []string) string {
	if m.height <= 0 {
		return strings.Join(lines, "\n")
	}
	viewHeight := m.viewHeight()
	maxScroll := max(len(lines)-viewHeight, 0)
	scroll := min(max(m.scroll, 0), maxScroll)
	end := min(scroll+viewHeight, len(lines))
	visible := append([]string(nil), lines[scroll:end]...)
	for len(visible) < viewHeight {
		visible = append(visible, "")
	}
	markerTop := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB454")).Bold(true).Render("▲ more above")
	markerBottom := lipgloss.NewStyle().Foreground(lipgloss.Color("#8BD5CA")).Bold(true).Render("▼ more below")
	if scroll > 0 && len(visible) > 0 {
		visible[0] = markerTop
	}
	if end < len(lines) && len(visible) > 0 {
		visible[len(visible)-1] = markerBottom
	}
	return strings.Join(visible, "\n")
}

func (m Model) footerView() string {
	if m.confirmDelete != "" {
		return common.ConfirmStyle.Render("Delete this reply? (y/n)")
	}
	if m.picker.open() {
		return common.MutedStyle.Render("←/→: choose • enter/1-6: react • esc: close")
	}
	if m.reactors.open() {
		return common.MutedStyle.Render("tab/shift+tab: filter • v/esc: close")
	}
	return m.help.ShortHelpView(helpKeys{m.keys}.ShortHelp())
}

func (m Model) renderPostHeader() []string {
	p := m.post
	width := m.contentWidthBase()
	lines := []string{common.AppTitleStyle.Render("🔥 rantthread")}
	if len(m.focus) > 0 {
		lines = append(lines, common.MutedStyle.Render(fmt.Sprintf("Thread › continued (level %d) • esc: back", len(m.focus))))
	}

	header := common.AuthorStyle.Render(p.Author.DisplayName()) + " " +
		common.HandleStyle.Render(p.Author.Label()) +
		common.TimestampStyle.Render(" · "+p.Timestamp)
	if m.unread {
		header += " " + common.UnreadStyle.Render("● new")
	}
	lines = append(lines, header)
	for _, l := range wrapContent(p.Content, width-2) {
		lines = append(lines, common.ContentStyle.Render(l))
	}
	if p.Media != nil {
		lines = append(lines, renderMediaLabel(*p.Media))
	}
	tally := domain.DefaultTally(p.Metrics.Likes)
	lines = append(lines, common.TimestampStyle.Render(fmt.Sprintf("%d reactions • %s",
		domain.DisplayTotal(tally, false, domain.ReactionNone),
		common.Pluralize(p.Metrics.Comments, "comment", "comments"))))
	return lines
}

// renderPinned summarizes pinned top-level replies in a collapsible section.
func (m Model) renderPinned() ([]string, []zone) {
	var pinned []*domain.ReplyNode
	for _, n := range m.post.Replies {
		if n.IsPinned() {
			pinned = append(pinned, n)
		}
	}
	if len(pinned) == 0 {
		return nil, nil
	}
	arrow := "▸"
	if m.pinnedOpen {
		arrow = "▾"
	}
	title := fmt.Sprintf("%s 📌 Pinned (%d)", arrow, len(pinned))
	lines := []string{"", common.PinnedStyle.Render(title)}
	zones := []zone{{kind: zonePinned, line: 1, x0: 0, x1: lipgloss.Width(title)}}
	if m.pinnedOpen {
		width := m.contentWidthBase() - 4
		for _, n := range pinned {
			lines = append(lines, "  "+common.HandleStyle.Render(n.Author.Label())+" "+
				common.ContentStyle.Render(common.QuoteExcerpt(n.Content, max(width-len(n.Author.Label()), 10))))
		}
	}
	return lines, zones
}

func (m Model) renderCommentsHeader() string {
	if len(m.focus) > 0 {
		return common.AuthorStyle.Render("Thread")
	}
	total := len(m.post.Replies)
	return common.AuthorStyle.Render("Comments") + common.TimestampStyle.Render(
		fmt.Sprintf(" · showing %d of %d", min(m.pager.visible, total), total))
}

// renderSentinel draws the line after the last displayed comment. Its
// visibility drives pagination.
func (m Model) renderSentinel() string {
	switch {
	case m.pager.loading:
		return m.spinner.View() + common.MutedStyle.Render(" Loading more comments...")
	case m.pager.canLoadMore():
		return mutedLine(fmt.Sprintf("· · · %d more", m.pager.total-m.pager.visible))
	case m.pager.allLoaded():
		return common.SuccessStyle.Render("✓ All comments loaded")
	}
	return ""
}

type helpKeys struct {
	common.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.React, k.ReactPicker, k.ReplyInline, k.ToggleHints, k.Quit}
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Enter, k.ToggleContent},
		{k.React, k.ReactPicker, k.PickerLeft, k.PickerRight, k.Reactors, k.NextFilter},
		{k.ReplyInline, k.Reply, k.Delete, k.CopyLink, k.Open},
		{k.Pinned, k.Refresh, k.Back, k.ToggleHints, k.Quit},
	}
}
