package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/infra/editor"
)

// CharLimit caps an inline reply.
const CharLimit = 500

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// DoneMsg is sent when composing is complete (success or cancel).
type DoneMsg struct {
	ParentID string
	Content  string // Empty if cancelled
	Err      error
}

// Cancelled reports whether the composer closed without a reply.
func (d DoneMsg) Cancelled() bool {
	return d.Err == nil && d.Content == ""
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// Context is the reply target the composer is opened with.
type Context struct {
	ParentID    string
	AuthorLabel string
	Quoted      string
	AvatarURL   string
}

// --- Model ---

// Model holds the state for the reply composer.
type Model struct {
	mode     mode
	ctx      Context
	editor   *editor.EnvEditor
	status   string
	err      error
	textarea textarea.Model // Only used in inline mode
	tmpPath  string         // Temp file path for editor mode
}

// NewEditor creates a composer that opens $EDITOR via tea.Exec, pre-filled
// with the quoted reply target.
func NewEditor(ed *editor.EnvEditor, ctx Context) Model {
	return Model{
		mode:   editorMode,
		ctx:    ctx,
		editor: ed,
		status: "Opening editor...",
	}
}

// NewInline creates a composer with an inline Bubble Tea textarea.
func NewInline(ctx Context) Model {
	ta := textarea.New()
	ta.Placeholder = "Write a reply to " + ctx.AuthorLabel + "..."
	ta.CharLimit = CharLimit
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.Focus()

	return Model{
		mode:     inlineMode,
		ctx:      ctx,
		textarea: ta,
	}
}

// ParentID is the node the reply goes under.
func (m Model) ParentID() string {
	return m.ctx.ParentID
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// launchEditor prepares the editor command and uses tea.ExecProcess to
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	if m.editor == nil {
		return done(DoneMsg{ParentID: m.ctx.ParentID, Err: fmt.Errorf("no editor configured")})
	}
	cmd, tmpPath, err := m.editor.Cmd(m.ctx.Quoted, m.ctx.AuthorLabel)
	if err != nil {
		return done(DoneMsg{ParentID: m.ctx.ParentID, Err: fmt.Errorf("preparing editor: %w", err)})
	}
	m.tmpPath = tmpPath

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the composer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, done(DoneMsg{ParentID: m.ctx.ParentID, Err: fmt.Errorf("editor: %w", msg.err)})
		}

		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, done(DoneMsg{ParentID: m.ctx.ParentID, Err: err})
		}
		// An untouched template reads back as empty: cancel.
		content = editor.StripTemplate(content, m.ctx.AuthorLabel)
		return m, done(DoneMsg{ParentID: m.ctx.ParentID, Content: content})

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}

		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{ParentID: m.ctx.ParentID})

		case "ctrl+d":
			content := strings.TrimSpace(m.textarea.Value())
			if content == "" {
				m.status = "Reply is empty. Type something or press esc."
				return m, nil
			}
			return m, done(DoneMsg{ParentID: m.ctx.ParentID, Content: content})
		}

		m.status = ""
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, nil
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
