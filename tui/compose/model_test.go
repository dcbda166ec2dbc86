package compose

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/infra/editor"
)

var testCtx = Context{ParentID: "node-1", AuthorLabel: "@ana", Quoted: "ship it friday"}

func doneFrom(t *testing.T, cmd tea.Cmd) DoneMsg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(DoneMsg)
	if !ok {
		t.Fatalf("expected DoneMsg")
	}
	return msg
}

func TestInline_SubmitAndCancel(t *testing.T) {
	m := NewInline(testCtx)
	m.textarea.SetValue("  never on a friday  ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	got := doneFrom(t, cmd)
	if got.ParentID != "node-1" || got.Content != "never on a friday" || got.Cancelled() {
		t.Fatalf("unexpected done: %+v", got)
	}

	_, cmd = NewInline(testCtx).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := doneFrom(t, cmd); !got.Cancelled() {
		t.Fatalf("esc should cancel: %+v", got)
	}
}

func TestInline_EmptySubmitStaysOpen(t *testing.T) {
	m := NewInline(testCtx)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if cmd != nil {
		t.Fatalf("empty reply must not finish the composer")
	}
	if !strings.Contains(m.View(), "Reply is empty") {
		t.Fatalf("expected empty hint in view")
	}
}

func TestInline_ViewShowsTarget(t *testing.T) {
	view := NewInline(testCtx).View()
	if !strings.Contains(view, "@ana") || !strings.Contains(view, "ship it friday") {
		t.Fatalf("view should show the reply target:\n%s", view)
	}
}

func TestEditorFinished_StripsTemplate(t *testing.T) {
	dir := t.TempDir()
	write := func(body string) string {
		p := filepath.Join(dir, "reply.md")
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		return p
	}

	m := NewEditor(editor.NewEnvEditor(), testCtx)
	tmpl := "<!-- help -->\n" + editor.Template(testCtx.Quoted, testCtx.AuthorLabel)

	_, cmd := m.Update(editorFinishedMsg{tmpPath: write(tmpl)})
	if got := doneFrom(t, cmd); !got.Cancelled() {
		t.Fatalf("untouched template should cancel, got %+v", got)
	}

	_, cmd = m.Update(editorFinishedMsg{tmpPath: write(tmpl + "agreed\n")})
	got := doneFrom(t, cmd)
	if !strings.HasSuffix(got.Content, "agreed") || got.ParentID != "node-1" {
		t.Fatalf("unexpected reply: %+v", got)
	}

	_, cmd = m.Update(editorFinishedMsg{err: errors.New("exit 1")})
	if got := doneFrom(t, cmd); got.Err == nil {
		t.Fatalf("editor failure should surface")
	}
}
