package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit          key.Binding
	ForceQuit     key.Binding
	Up            key.Binding
	Down          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Enter         key.Binding // toggle disclosure / continue thread / expand content
	ToggleContent key.Binding // e
	React         key.Binding // l — tap the reaction affordance
	ReactPicker   key.Binding // L — open the reaction picker
	PickerLeft    key.Binding
	PickerRight   key.Binding
	Reactors      key.Binding // v — who reacted
	NextFilter    key.Binding
	PrevFilter    key.Binding
	ReplyInline   key.Binding // c
	Reply         key.Binding // C — reply via $EDITOR
	Delete        key.Binding // d — own replies only
	Confirm       key.Binding
	Cancel        key.Binding
	CopyLink      key.Binding // y
	Open          key.Binding // o — open post detail
	Pinned        key.Binding // p
	Refresh       key.Binding // r
	ToggleHints   key.Binding // ?
	Back          key.Binding // esc
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open/toggle"),
		),
		ToggleContent: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand text"),
		),
		React: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "react 💡"),
		),
		ReactPicker: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "reactions"),
		),
		PickerLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		PickerRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Reactors: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "who reacted"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev filter"),
		),
		ReplyInline: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reply (inline)"),
		),
		Reply: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "reply ($EDITOR)"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open post"),
		),
		Pinned: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pinned"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// PickerDigit returns the zero-based reaction index for keys "1" to "6".
func PickerDigit(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '6' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
