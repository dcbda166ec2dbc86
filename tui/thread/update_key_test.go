package thread

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/domain"
)

func TestCopyLink_UsesClipboardAndToasts(t *testing.T) {
	var copied string
	m := newTestModelWith(t, flatPost(2), Deps{Clipboard: func(s string) error {
		copied = s
		return nil
	}})
	m = pressKeys(m, "down")
	_, cmd := m.Update(keyMsg("y"))
	toastMsg, ok := findToast(drain(cmd))
	if !ok || toastMsg.Text != "Link copied" {
		t.Fatalf("expected copy toast, got %+v", toastMsg)
	}
	if !strings.HasSuffix(copied, "post-1#reply-r02") {
		t.Fatalf("copied link = %q", copied)
	}

	failing := newTestModelWith(t, flatPost(1), Deps{Clipboard: func(string) error {
		return errors.New("no display")
	}})
	_, cmd = failing.Update(keyMsg("y"))
	toastMsg, ok = findToast(drain(cmd))
	if !ok || !toastMsg.IsErr || !strings.Contains(toastMsg.Text, "no display") {
		t.Fatalf("expected failure toast, got %+v", toastMsg)
	}
}

func TestReactorDrawer_SingletonAndFilters(t *testing.T) {
	m := newTestModel(t, flatPost(2))
	m = pressKeys(m, "v")
	if m.ActiveReactors() != "r01" {
		t.Fatalf("v should open the drawer on the cursor node")
	}
	if !strings.Contains(m.View(), "@reader1") {
		t.Fatalf("drawer should list synthesized reactors")
	}

	tally := domain.DefaultTally(20)
	m = pressKeys(m, "tab")
	if got := m.reactors.current(tally); got.Reaction != domain.ReactionInspired {
		t.Fatalf("first filter after all = %q", got.Reaction)
	}
	m = pressKeys(m, "tab", "tab", "tab", "tab", "tab", "tab")
	if got := m.reactors.current(tally); !got.All() {
		t.Fatalf("filters should wrap back to all, got %q", got.Reaction)
	}

	m = pressKeys(m, "down", "v")
	if m.ActiveReactors() != "r02" {
		t.Fatalf("opening on another node moves the drawer, got %q", m.ActiveReactors())
	}
	m = pressKeys(m, "esc")
	if m.ActiveReactors() != "" {
		t.Fatalf("esc closes the drawer")
	}
}

func TestReplyKeys_RequestComposer(t *testing.T) {
	post := flatPost(1)
	post.Replies[0].Content = "line one\nline two"
	m := newTestModel(t, post)

	_, cmd := m.Update(keyMsg("c"))
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one request, got %v", msgs)
	}
	req, ok := msgs[0].(ReplyRequestedMsg)
	if !ok {
		t.Fatalf("expected ReplyRequestedMsg, got %T", msgs[0])
	}
	if req.ParentID != "r01" || req.AuthorLabel != "@user1" || !req.UseInline {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.QuotedContent != "line one line two" {
		t.Fatalf("quote = %q", req.QuotedContent)
	}

	_, cmd = m.Update(keyMsg("C"))
	req = drain(cmd)[0].(ReplyRequestedMsg)
	if req.UseInline {
		t.Fatalf("C should request the external editor")
	}
}

func TestOpenKey_NavigatesToDetail(t *testing.T) {
	post := flatPost(2)
	post.Index = 7
	m := newTestModel(t, post)
	_, cmd := m.Update(keyMsg("o"))
	nav, ok := drain(cmd)[0].(NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg")
	}
	if nav.PostIndex != 7 || nav.Options.ReplyTo != "r01" || !nav.Options.ShowComments {
		t.Fatalf("unexpected navigation: %+v", nav)
	}
}

func TestCursor_MovesOverRowsAndClamps(t *testing.T) {
	m := newTestModel(t, flatPost(3))
	m = pressKeys(m, "up")
	rows := m.collectRows()
	if rows[m.cursorIndex(rows)].nodeID != "r01" {
		t.Fatalf("cursor should stay on the first row")
	}
	m = pressKeys(m, "G")
	rows = m.collectRows()
	if rows[m.cursorIndex(rows)].nodeID != "r03" {
		t.Fatalf("G should go to the last row")
	}
	m = pressKeys(m, "down")
	rows = m.collectRows()
	if rows[m.cursorIndex(rows)].nodeID != "r03" {
		t.Fatalf("cursor should stay on the last row")
	}
	m = pressKeys(m, "g")
	rows = m.collectRows()
	if rows[m.cursorIndex(rows)].nodeID != "r01" {
		t.Fatalf("g should go to the first row")
	}
}

func TestHelp_ToggleAndEscWithNothingOpen(t *testing.T) {
	m := newTestModel(t, flatPost(1))
	m = pressKeys(m, "?")
	if !m.showHelp || !m.IsOverlayOpen() {
		t.Fatalf("? should open help")
	}
	m, cmd := m.Update(keyMsg("esc"))
	if m.showHelp || cmd != nil {
		t.Fatalf("esc closes help without leaving the view")
	}
}

func TestRefreshKey_RetriesAfterError(t *testing.T) {
	m := New(Deps{Source: stubSource{post: flatPost(1)}})
	m, _ = m.Update(PostErrorMsg{Err: errors.New("offline")})
	m, cmd := m.Update(keyMsg("r"))
	if !m.Loading() || cmd == nil {
		t.Fatalf("r should retry loading")
	}
	m, _ = m.Update(PostLoadedMsg{Post: flatPost(1)})
	if m.Err() != nil || m.Loading() {
		t.Fatalf("successful load clears the error")
	}
}

func TestWindowResize_RemeasuresTruncation(t *testing.T) {
	post := flatPost(1)
	post.Replies[0].Content = strings.Repeat("word ", 60)
	m := newTestModel(t, post)
	if m.store.isTruncated("r01") {
		t.Fatalf("a few wrapped lines fit the budget")
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 0})
	if !m.store.isTruncated("r01") {
		t.Fatalf("narrow window should truncate the same content")
	}
}
