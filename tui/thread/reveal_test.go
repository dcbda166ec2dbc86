package thread

import "testing"

func TestReveal_PagesExpandsAndFocuses(t *testing.T) {
	post := flatPost(12)
	post.Replies[8].Replies = append(post.Replies[8].Replies,
		reply("n1", "ana", "first"),
		reply("n2", "bo", "second"),
	)
	m := newTestModel(t, post)

	m = m.Reveal("n2")
	if m.VisibleCount() < 9 {
		t.Fatalf("page holding the ancestor should be exposed, visible=%d", m.VisibleCount())
	}
	if !m.store.expansionFor("r09").ThreadExpanded {
		t.Fatalf("collapsed ancestor should expand")
	}
	rows := m.collectRows()
	if rows[m.cursorIndex(rows)].nodeID != "n2" {
		t.Fatalf("cursor should land on the revealed node")
	}

	deep := newTestModel(t, makePost(chain(7)))
	deep = deep.Reveal("c6")
	if deep.focusedID() != "c3" {
		t.Fatalf("a node beyond MaxLevel opens as a continued thread, focus=%q", deep.focusedID())
	}
	rows = deep.collectRows()
	if rows[deep.cursorIndex(rows)].nodeID != "c6" {
		t.Fatalf("cursor should land on c6")
	}

	if got := deep.Reveal("missing"); got.focusedID() != "c3" {
		t.Fatalf("unknown node leaves the view alone")
	}
}
