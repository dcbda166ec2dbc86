package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(1, 2, 0, 1)

	// AuthorStyle styles reply author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// HandleStyle styles "@handle" labels.
	HandleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8AADF4"))

	// BadgeStyle styles roles and title badges.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Italic(true)

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles reply text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the reply bubble under the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6600")).
			Padding(0, 1)

	// UnselectedStyle gives other reply bubbles a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// GutterStyle draws the thread line left of nested replies.
	GutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45475A"))

	// DisclosureStyle styles "View N replies" / "Hide replies" / "Continue thread".
	DisclosureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BD5CA")).
			Bold(true)

	// FocusedControlStyle highlights a control row under the cursor.
	FocusedControlStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6600")).
				Bold(true)

	// MutedStyle styles secondary text such as loading and end markers.
	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true)

	// PinnedStyle styles the pinned section header.
	PinnedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F")).
			Bold(true)

	// UnreadStyle marks a post the viewer has not opened before.
	UnreadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// PickerStyle frames the floating reaction picker.
	PickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F5BDE6")).
			Padding(0, 1)

	// ChipActiveStyle styles the highlighted or owned reaction chip.
	ChipActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6600")).
			Bold(true).
			Padding(0, 1)

	// ChipInactiveStyle styles the other reaction chips.
	ChipInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Padding(0, 1)

	// DrawerStyle frames the "who reacted" drawer.
	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#8AADF4")).
			Padding(0, 1)

	// PlaceholderStyle styles rows standing in for media or failed renders.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6FA8DC")).
				Faint(true)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// ConfirmStyle styles the delete confirmation prompt.
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true).
			Padding(0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
