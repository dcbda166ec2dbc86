package thread

import (
	"time"

	"github.com/CrestNiraj12/rantthread/domain"
)

const (
	longPressDelay  = 500 * time.Millisecond
	pickerAutoClose = 3000 * time.Millisecond
)

type pressPhase int

const (
	pressIdle pressPhase = iota
	pressPressed
)

// press tracks the gesture on a reaction affordance. Bumping seq cancels the
// pending long-press tick: a tick whose Seq no longer matches is ignored.
type press struct {
	phase  pressPhase
	nodeID string
	seq    int
}

func (p *press) start(nodeID string) int {
	p.phase = pressPressed
	p.nodeID = nodeID
	p.seq++
	return p.seq
}

func (p *press) cancel() {
	if p.phase == pressIdle {
		return
	}
	p.phase = pressIdle
	p.nodeID = ""
	p.seq++
}

func (p press) pressed(nodeID string) bool {
	return p.phase == pressPressed && p.nodeID == nodeID
}

// picker is the single floating reaction picker of the tree. nodeID is the
// active overlay; at most one picker is open at a time.
type picker struct {
	nodeID string
	cursor int
	seq    int
}

func (p picker) open() bool {
	return p.nodeID != ""
}

// show opens the picker on nodeID, closing any other, and returns the seq of
// its fresh auto-close timer.
func (p *picker) show(nodeID string, current domain.ReactionType) int {
	p.nodeID = nodeID
	p.cursor = 0
	for i, r := range domain.AllReactions {
		if r == current {
			p.cursor = i
		}
	}
	p.seq++
	return p.seq
}

func (p *picker) close() {
	p.nodeID = ""
	p.cursor = 0
	p.seq++
}

func (p *picker) move(delta int) {
	n := len(domain.AllReactions)
	p.cursor = ((p.cursor+delta)%n + n) % n
}

func (p picker) highlighted() domain.ReactionType {
	return domain.AllReactions[p.cursor]
}
