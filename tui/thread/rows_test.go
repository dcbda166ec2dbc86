package thread

import (
	"strings"
	"testing"

	"github.com/CrestNiraj12/rantthread/domain"
)

func TestIndent_SaturatesAtMaxLevel(t *testing.T) {
	for depth := MaxLevel; depth < MaxLevel+5; depth++ {
		if got := indent(depth); got != MaxLevel*UnitIndent {
			t.Fatalf("indent(%d) = %d, want %d", depth, got, MaxLevel*UnitIndent)
		}
	}
	if indent(-2) != 0 {
		t.Fatalf("negative depth must not indent")
	}
	if indent(1) != UnitIndent {
		t.Fatalf("indent(1) = %d", indent(1))
	}
}

func TestCollectRows_DeepChainStopsAtMaxLevel(t *testing.T) {
	m := newTestModel(t, makePost(chain(7)))

	rows := m.collectRows()
	for _, r := range rows {
		if r.depth > MaxLevel {
			t.Fatalf("row %s rendered at depth %d beyond MaxLevel", r.nodeID, r.depth)
		}
	}
	ids := nodeRowIDs(rows)
	if strings.Join(ids, ",") != "c0,c1,c2,c3" {
		t.Fatalf("unexpected inline nodes: %v", ids)
	}
	cont, ok := findRow(rows, rowContinue, "c3")
	if !ok {
		t.Fatalf("expected continue control under c3")
	}
	if cont.hidden != 3 {
		t.Fatalf("continue control hides %d replies, want 3", cont.hidden)
	}
	if !strings.Contains(m.View(), "Continue thread → (3 more replies)") {
		t.Fatalf("continue label missing from view")
	}
}

func TestContinueThread_FocusesSubtreeAndEscReturns(t *testing.T) {
	m := newTestModel(t, makePost(chain(7)))
	m = pressKeys(m, "down", "down", "down", "down")
	rows := m.collectRows()
	if cur := rows[m.cursorIndex(rows)]; cur.kind != rowContinue {
		t.Fatalf("expected cursor on continue control, got kind %d", cur.kind)
	}

	m = pressKeys(m, "enter")
	if m.focusedID() != "c3" {
		t.Fatalf("expected focus on c3, got %q", m.focusedID())
	}
	ids := nodeRowIDs(m.collectRows())
	if strings.Join(ids, ",") != "c3,c4,c5,c6" {
		t.Fatalf("focused subtree rows = %v", ids)
	}
	if !m.IsOverlayOpen() {
		t.Fatalf("a continued thread must claim esc")
	}

	m, cmd := m.Update(keyMsg("esc"))
	if m.focusedID() != "" || cmd != nil {
		t.Fatalf("esc should pop the continued thread without leaving")
	}
	_, cmd = m.Update(keyMsg("esc"))
	msgs := drain(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected BackMsg, got %v", msgs)
	}
	if _, ok := msgs[0].(BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", msgs[0])
	}
}

func TestDisclosure_CollapsedShowsFirstChildAndCount(t *testing.T) {
	post := makePost(
		reply("a", "ana", "three replies",
			reply("a1", "bo", "first"),
			reply("a2", "cy", "second"),
			reply("a3", "di", "third"),
		),
		reply("b", "ben", "two replies",
			reply("b1", "el", "first"),
			reply("b2", "fa", "second"),
		),
		reply("c", "cat", "one reply", reply("c1", "gu", "only")),
		reply("d", "dan", "no replies"),
	)
	m := newTestModel(t, post)
	rows := m.collectRows()

	if got := strings.Join(nodeRowIDs(rows), ","); got != "a,a1,b,b1,c,c1,d" {
		t.Fatalf("collapsed rows = %s", got)
	}
	dA, ok := findRow(rows, rowDisclosure, "a")
	if !ok || disclosureLabel(dA) != "View 2 replies" {
		t.Fatalf("expected 'View 2 replies' under a, got %+v", dA)
	}
	dB, ok := findRow(rows, rowDisclosure, "b")
	if !ok || disclosureLabel(dB) != "View 1 reply" {
		t.Fatalf("expected 'View 1 reply' under b, got %+v", dB)
	}
	if _, ok := findRow(rows, rowDisclosure, "c"); ok {
		t.Fatalf("a single child needs no disclosure")
	}
	if _, ok := findRow(rows, rowDisclosure, "d"); ok {
		t.Fatalf("a leaf needs no disclosure")
	}

	m.toggleThread("a")
	rows = m.collectRows()
	if got := strings.Join(nodeRowIDs(rows), ","); got != "a,a1,a2,a3,b,b1,c,c1,d" {
		t.Fatalf("expanded rows = %s", got)
	}
	dA, _ = findRow(rows, rowDisclosure, "a")
	if disclosureLabel(dA) != "Hide replies" {
		t.Fatalf("expanded label = %q", disclosureLabel(dA))
	}
	if m.store.expansionFor("b").ThreadExpanded {
		t.Fatalf("expanding a must not touch b")
	}
}

func TestDisclosure_EnterTogglesAndKeepsCursor(t *testing.T) {
	post := makePost(reply("a", "ana", "root", reply("a1", "bo", "x"), reply("a2", "cy", "y")))
	m := newTestModel(t, post)
	m = pressKeys(m, "down", "down")
	m = pressKeys(m, "enter")
	if !m.store.expansionFor("a").ThreadExpanded {
		t.Fatalf("enter on disclosure should expand")
	}
	rows := m.collectRows()
	if cur := rows[m.cursorIndex(rows)]; cur.kind != rowDisclosure || cur.nodeID != "a" {
		t.Fatalf("cursor left the disclosure control: %+v", cur)
	}
	m = pressKeys(m, "enter")
	if m.store.expansionFor("a").ThreadExpanded {
		t.Fatalf("second enter should collapse")
	}
}

func TestCollectRows_NilChildrenSkipped(t *testing.T) {
	post := makePost(reply("a", "ana", "root", nil, reply("a1", "bo", "x"), nil))
	m := newTestModel(t, post)
	rows := m.collectRows()
	if got := strings.Join(nodeRowIDs(rows), ","); got != "a,a1" {
		t.Fatalf("rows = %s", got)
	}
	if _, ok := findRow(rows, rowDisclosure, "a"); ok {
		t.Fatalf("nil children must not count toward the disclosure")
	}
}

func TestCollectHookPanic_IsolatedToSubtree(t *testing.T) {
	post := makePost(
		reply("a", "ana", "fine"),
		reply("b", "ben", "broken", reply("b1", "bo", "child")),
		reply("c", "cat", "fine too"),
	)
	m := newTestModel(t, post)

	m.collectHook = func(n *domain.ReplyNode) {
		if n.ID == "b" {
			panic("bad node")
		}
	}

	rows := m.collectRows()
	if got := strings.Join(nodeRowIDs(rows), ","); got != "a,c" {
		t.Fatalf("siblings should survive: %s", got)
	}
	if _, ok := findRow(rows, rowPlaceholder, "b"); !ok {
		t.Fatalf("expected placeholder for b")
	}
	if !strings.Contains(m.View(), "could not be displayed") {
		t.Fatalf("placeholder text missing from view")
	}
}

func TestRenderHookPanic_IsolatedToRow(t *testing.T) {
	post := makePost(
		reply("a", "ana", "alpha text"),
		reply("b", "ben", "beta text"),
		reply("c", "cat", "gamma text"),
	)
	m := newTestModel(t, post)

	m.renderHook = func(r row) {
		if r.nodeID == "b" {
			panic("render failed")
		}
	}

	view := m.View()
	if !strings.Contains(view, "alpha text") || !strings.Contains(view, "gamma text") {
		t.Fatalf("siblings should render:\n%s", view)
	}
	if strings.Contains(view, "beta text") {
		t.Fatalf("failed row should not render its content")
	}
	if !strings.Contains(view, "could not be displayed") {
		t.Fatalf("expected placeholder:\n%s", view)
	}
}
