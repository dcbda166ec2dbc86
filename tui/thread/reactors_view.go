package thread

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

// reactorDrawer is the single "who reacted" drawer of the tree. Opening it
// on a node closes it anywhere else.
type reactorDrawer struct {
	nodeID string
	filter int
}

func (d reactorDrawer) open() bool {
	return d.nodeID != ""
}

func (d *reactorDrawer) toggle(nodeID string) {
	if d.nodeID == nodeID {
		d.close()
		return
	}
	d.nodeID = nodeID
	d.filter = 0
}

func (d *reactorDrawer) close() {
	d.nodeID = ""
	d.filter = 0
}

// cycle moves through the filter tabs. Only tabs with reactors exist.
func (d *reactorDrawer) cycle(t domain.Tally, delta int) {
	n := len(domain.FilterOptions(t))
	d.filter = ((d.filter+delta)%n + n) % n
}

func (d reactorDrawer) current(t domain.Tally) domain.ReactorFilter {
	opts := domain.FilterOptions(t)
	return opts[min(max(d.filter, 0), len(opts)-1)]
}

func (m *Model) toggleReactors(nodeID string) {
	if _, ok := domain.FindReply(m.post.Replies, nodeID); !ok {
		return
	}
	m.reactors.toggle(nodeID)
}

// renderReactors draws the drawer: filter tabs, then the synthesized
// reactors. Zones are relative to the drawer block.
func (m Model) renderReactors(n *domain.ReplyNode, width int) ([]string, []zone) {
	tally := domain.DefaultTally(n.Metrics.Likes)
	active := m.reactors.current(tally)

	var zones []zone
	var tabs []string
	x := 0
	for i, opt := range domain.FilterOptions(tally) {
		style := common.ChipInactiveStyle
		if opt == active {
			style = common.ChipActiveStyle
		}
		tab := style.Render(opt.Label(tally))
		tw := lipgloss.Width(tab)
		zones = append(zones, zone{kind: zoneFilter, nodeID: n.ID, line: 0, x0: x, x1: x + tw, index: i})
		tabs = append(tabs, tab)
		x += tw
	}

	inner := []string{common.MutedStyle.Render("Reactions"), strings.Join(tabs, "")}
	for i := range zones {
		zones[i].line = 1
	}

	list := domain.SynthesizeReactors(tally, active, domain.ReactorListCap)
	if len(list) == 0 {
		inner = append(inner, common.MutedStyle.Render("No reactions yet."))
	} else {
		entries := make([]string, 0, len(list))
		for _, r := range list {
			entries = append(entries, r.Reaction.Emoji()+" @"+r.Handle)
		}
		body := lipgloss.NewStyle().Width(max(width-2, 10)).Render(strings.Join(entries, "  "))
		inner = append(inner, strings.Split(body, "\n")...)
		count := tally.Total()
		if !active.All() {
			count = tally.Count(active.Reaction)
		}
		if rest := count - len(list); rest > 0 {
			inner = append(inner, common.MutedStyle.Render(fmt.Sprintf("+%d more", rest)))
		}
	}

	box := strings.Split(common.DrawerStyle.Render(strings.Join(inner, "\n")), "\n")
	// Top border only, then one cell of padding.
	for i := range zones {
		zones[i].line++
		zones[i].x0++
		zones[i].x1++
	}
	return box, zones
}
