package domain

import (
	"sort"
	"strings"
)

// ReactionType names one of the six reaction categories. The zero value is
// ReactionNone.
type ReactionType string

const (
	ReactionNone     ReactionType = ""
	ReactionInspired ReactionType = "inspired"
	ReactionLove     ReactionType = "love"
	ReactionHaha     ReactionType = "haha"
	ReactionWow      ReactionType = "wow"
	ReactionSad      ReactionType = "sad"
	ReactionAngry    ReactionType = "angry"
)

// DefaultReaction is applied by a short tap on the reaction affordance.
const DefaultReaction = ReactionInspired

// AllReactions lists the reaction types in their fixed display order.
var AllReactions = []ReactionType{
	ReactionInspired,
	ReactionLove,
	ReactionHaha,
	ReactionWow,
	ReactionSad,
	ReactionAngry,
}

func (r ReactionType) Emoji() string {
	switch r {
	case ReactionInspired:
		return "💡"
	case ReactionLove:
		return "❤"
	case ReactionHaha:
		return "😂"
	case ReactionWow:
		return "😮"
	case ReactionSad:
		return "😢"
	case ReactionAngry:
		return "😡"
	}
	return "♡"
}

func (r ReactionType) Label() string {
	if r == ReactionNone {
		return "React"
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseReactionType accepts a reaction name in any case.
func ParseReactionType(s string) (ReactionType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range AllReactions {
		if string(r) == s {
			return r, true
		}
	}
	return ReactionNone, false
}

// ToggleReaction returns the reaction a node ends up with when the viewer
// selects selected while owning current: re-selecting clears it.
func ToggleReaction(current, selected ReactionType) ReactionType {
	if current == selected {
		return ReactionNone
	}
	return selected
}

// Tally is the per-type breakdown of an aggregate like count.
type Tally struct {
	Inspired int
	Love     int
	Haha     int
	Wow      int
	Sad      int
	Angry    int
}

// DefaultTally splits likes into the fixed default distribution. Each share is
// floored and the remainder is dropped, so the sum may be below likes.
func DefaultTally(likes int) Tally {
	if likes < 0 {
		likes = 0
	}
	return Tally{
		Inspired: likes * 6 / 10,
		Love:     likes * 2 / 10,
		Haha:     likes / 20,
		Wow:      likes / 20,
		Sad:      likes / 20,
		Angry:    likes / 20,
	}
}

func (t Tally) Count(r ReactionType) int {
	switch r {
	case ReactionInspired:
		return t.Inspired
	case ReactionLove:
		return t.Love
	case ReactionHaha:
		return t.Haha
	case ReactionWow:
		return t.Wow
	case ReactionSad:
		return t.Sad
	case ReactionAngry:
		return t.Angry
	}
	return 0
}

func (t Tally) Total() int {
	return t.Inspired + t.Love + t.Haha + t.Wow + t.Sad + t.Angry
}

// Top returns up to n reaction types with a non-zero count, highest first.
// Ties keep display order.
func (t Tally) Top(n int) []ReactionType {
	out := make([]ReactionType, 0, len(AllReactions))
	for _, r := range AllReactions {
		if t.Count(r) > 0 {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return t.Count(out[i]) > t.Count(out[j])
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DisplayTotal is the total shown next to a node. The viewer's live reaction
// is authoritative for the viewer's own contribution: the count moves by one
// when it disagrees with the reacted-by-default flag. The tally is untouched.
func DisplayTotal(t Tally, reactedByDefault bool, current ReactionType) int {
	total := t.Total()
	switch {
	case current != ReactionNone && !reactedByDefault:
		total++
	case current == ReactionNone && reactedByDefault:
		total--
	}
	if total < 0 {
		total = 0
	}
	return total
}
