package thread

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/rantthread/domain"
)

type stubSource struct {
	post domain.Post
	err  error
}

func (s stubSource) LoadPost(context.Context) (domain.Post, error) {
	return s.post, s.err
}

type memPrefs struct {
	mu     sync.Mutex
	values map[string]bool
	saves  []string
}

func newMemPrefs() *memPrefs {
	return &memPrefs{values: make(map[string]bool)}
}

func (p *memPrefs) LoadBool(_ context.Context, key string) (bool, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok, nil
}

func (p *memPrefs) SaveBool(_ context.Context, key string, value bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	p.saves = append(p.saves, key)
	return nil
}

func (p *memPrefs) Close() error { return nil }

var testViewer = domain.Author{FirstName: "You", Handle: "you"}

func reply(id, handle, content string, children ...*domain.ReplyNode) *domain.ReplyNode {
	return &domain.ReplyNode{
		ID:        id,
		Author:    domain.Author{FirstName: strings.ToUpper(handle[:1]) + handle[1:], Handle: handle},
		Content:   content,
		Timestamp: "1h",
		Metrics:   domain.Metrics{Likes: 20},
		Replies:   children,
	}
}

func makePost(replies ...*domain.ReplyNode) domain.Post {
	return domain.Post{
		ID:        "post-1",
		Author:    domain.Author{FirstName: "Op", Handle: "op"},
		Content:   "What is the worst bug you shipped?",
		Timestamp: "2h",
		Metrics:   domain.Metrics{Likes: 40, Comments: len(replies)},
		Replies:   replies,
	}
}

// flatPost builds n top-level replies r01..rNN.
func flatPost(n int) domain.Post {
	replies := make([]*domain.ReplyNode, 0, n)
	for i := 1; i <= n; i++ {
		replies = append(replies, reply(fmt.Sprintf("r%02d", i), fmt.Sprintf("user%d", i), fmt.Sprintf("comment %d", i)))
	}
	return makePost(replies...)
}

// chain builds a single-child chain depth nodes deep: c0 -> c1 -> ...
func chain(depth int) *domain.ReplyNode {
	var n *domain.ReplyNode
	for i := depth - 1; i >= 0; i-- {
		var children []*domain.ReplyNode
		if n != nil {
			children = []*domain.ReplyNode{n}
		}
		n = reply(fmt.Sprintf("c%d", i), fmt.Sprintf("deep%d", i), fmt.Sprintf("level %d", i), children...)
	}
	return n
}

func newTestModel(t *testing.T, post domain.Post) Model {
	t.Helper()
	return newTestModelWith(t, post, Deps{})
}

func newTestModelWith(t *testing.T, post domain.Post, deps Deps) Model {
	t.Helper()
	if deps.Viewer == (domain.Author{}) {
		deps.Viewer = testViewer
	}
	if deps.Clipboard == nil {
		deps.Clipboard = func(string) error { return nil }
	}
	m := New(deps)
	m.width = 100
	m, _ = m.Update(PostLoadedMsg{Post: post})
	if !m.loaded {
		t.Fatalf("expected post to be loaded")
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func pressKeys(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

// drain runs cmd and any batched commands. Only use it on commands that do
// not sleep (no ticks, no change watchers).
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if b, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range b {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findToast(msgs []tea.Msg) (ToastMsg, bool) {
	for _, msg := range msgs {
		if t, ok := msg.(ToastMsg); ok {
			return t, true
		}
	}
	return ToastMsg{}, false
}

func nodeRowIDs(rows []row) []string {
	var ids []string
	for _, r := range rows {
		if r.kind == rowNode {
			ids = append(ids, r.nodeID)
		}
	}
	return ids
}

func findRow(rows []row, kind rowKind, id string) (row, bool) {
	for _, r := range rows {
		if r.kind == kind && r.nodeID == id {
			return r, true
		}
	}
	return row{}, false
}

func findZone(f frame, kind zoneKind, id string, reaction domain.ReactionType) (zone, bool) {
	for _, z := range f.zones {
		if z.kind == kind && z.nodeID == id && (reaction == domain.ReactionNone || z.reaction == reaction) {
			return z, true
		}
	}
	return zone{}, false
}
