package thread

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/domain"
)

func click(m Model, z zone, action tea.MouseAction, button tea.MouseButton) Model {
	m, _ = m.Update(tea.MouseMsg{X: z.x0, Y: z.line - m.scroll, Action: action, Button: button})
	return m
}

func TestMouse_TapOnAffordanceReacts(t *testing.T) {
	m := newTestModel(t, flatPost(2))
	z, ok := findZone(m.buildFrame(), zoneReact, "r02", domain.ReactionNone)
	if !ok {
		t.Fatalf("missing react zone")
	}
	m = click(m, z, tea.MouseActionPress, tea.MouseButtonLeft)
	if !m.press.pressed("r02") {
		t.Fatalf("left press should enter the pressed state")
	}
	m = click(m, z, tea.MouseActionRelease, tea.MouseButtonLeft)
	if m.Reaction("r02") != domain.DefaultReaction {
		t.Fatalf("reaction = %q", m.Reaction("r02"))
	}
	rows := m.collectRows()
	if rows[m.cursorIndex(rows)].nodeID != "r02" {
		t.Fatalf("clicking a row moves the cursor onto it")
	}
}

func TestMouse_MotionOffTargetCancelsPress(t *testing.T) {
	m := newTestModel(t, flatPost(2))
	z, _ := findZone(m.buildFrame(), zoneReact, "r01", domain.ReactionNone)
	m = click(m, z, tea.MouseActionPress, tea.MouseButtonLeft)
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if m.press.pressed("r01") {
		t.Fatalf("moving off the affordance cancels the press")
	}
}

func TestMouse_RightClickPickerAndChip(t *testing.T) {
	m := newTestModel(t, flatPost(2))
	z, _ := findZone(m.buildFrame(), zoneReact, "r01", domain.ReactionNone)
	m = click(m, z, tea.MouseActionPress, tea.MouseButtonRight)
	if m.ActivePicker() != "r01" {
		t.Fatalf("right click should open the picker")
	}

	chip, ok := findZone(m.buildFrame(), zoneChip, "r01", domain.ReactionHaha)
	if !ok {
		t.Fatalf("missing haha chip")
	}
	m = click(m, chip, tea.MouseActionPress, tea.MouseButtonLeft)
	if m.Reaction("r01") != domain.ReactionHaha || m.ActivePicker() != "" {
		t.Fatalf("chip click should react and close, got %q open=%q", m.Reaction("r01"), m.ActivePicker())
	}
}

func TestMouse_ClickOutsideClosesPicker(t *testing.T) {
	m := newTestModel(t, flatPost(2))
	m, _ = m.Update(SecondaryPressMsg{NodeID: "r01"})
	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.ActivePicker() != "" {
		t.Fatalf("click outside should close the picker")
	}
}

func TestMouse_DisclosureAndReactorsZones(t *testing.T) {
	post := makePost(reply("a", "ana", "root", reply("a1", "bo", "x"), reply("a2", "cy", "y")))
	m := newTestModel(t, post)

	d, ok := findZone(m.buildFrame(), zoneDisclosure, "a", domain.ReactionNone)
	if !ok {
		t.Fatalf("missing disclosure zone")
	}
	m = click(m, d, tea.MouseActionPress, tea.MouseButtonLeft)
	if !m.store.expansionFor("a").ThreadExpanded {
		t.Fatalf("clicking the disclosure should expand")
	}

	r, ok := findZone(m.buildFrame(), zoneReactors, "a1", domain.ReactionNone)
	if !ok {
		t.Fatalf("missing reactors zone")
	}
	m = click(m, r, tea.MouseActionPress, tea.MouseButtonLeft)
	if m.ActiveReactors() != "a1" {
		t.Fatalf("clicking the summary opens the drawer")
	}
}
