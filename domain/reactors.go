package domain

import "fmt"

// ReactorListCap bounds the synthesized "who reacted" list.
const ReactorListCap = 50

// Reactor is one entry of the "who reacted" list. Reactors are synthesized
// from a tally; there is no real identity data behind them.
type Reactor struct {
	Name     string
	Handle   string
	Reaction ReactionType
}

// SynthesizeReactors emits one reactor per unit of count, walking the tally
// in display order and keeping those the filter admits, until limit entries
// exist. limit <= 0 means ReactorListCap. Numbering is stable across filters.
func SynthesizeReactors(t Tally, f ReactorFilter, limit int) []Reactor {
	if limit <= 0 || limit > ReactorListCap {
		limit = ReactorListCap
	}
	out := make([]Reactor, 0, min(limit, t.Total()))
	n := 0
	for _, r := range AllReactions {
		count := t.Count(r)
		if !f.Admits(r) {
			n += count
			continue
		}
		for i := 0; i < count; i++ {
			if len(out) >= limit {
				return out
			}
			n++
			out = append(out, Reactor{
				Name:     fmt.Sprintf("Reader %d", n),
				Handle:   fmt.Sprintf("reader%d", n),
				Reaction: r,
			})
		}
	}
	return out
}

// ReactorFilter selects which reactors the list shows. The zero value shows
// everyone.
type ReactorFilter struct {
	Reaction ReactionType // ReactionNone means all
}

func (f ReactorFilter) All() bool { return f.Reaction == ReactionNone }

func (f ReactorFilter) Admits(r ReactionType) bool { return f.All() || f.Reaction == r }

func (f ReactorFilter) Label(t Tally) string {
	if f.All() {
		return fmt.Sprintf("All %d", t.Total())
	}
	return fmt.Sprintf("%s %d", f.Reaction.Emoji(), t.Count(f.Reaction))
}

// FilterOptions returns "all" followed by every type with a non-zero count.
// Types with a zero count are never offered.
func FilterOptions(t Tally) []ReactorFilter {
	out := []ReactorFilter{{}}
	for _, r := range AllReactions {
		if t.Count(r) > 0 {
			out = append(out, ReactorFilter{Reaction: r})
		}
	}
	return out
}

func FilterReactors(list []Reactor, f ReactorFilter) []Reactor {
	if f.All() {
		return list
	}
	out := make([]Reactor, 0, len(list))
	for _, r := range list {
		if f.Admits(r.Reaction) {
			out = append(out, r)
		}
	}
	return out
}
