package thread

import "github.com/CrestNiraj12/rantthread/domain"

// Expansion holds the two independent per-node disclosure flags.
type Expansion struct {
	ThreadExpanded  bool
	ContentExpanded bool
}

// stateStore keeps per-node UI state keyed by stable node ID, so it survives
// reloads and never shifts when siblings are added or removed.
type stateStore struct {
	expansion map[string]Expansion
	truncated map[string]bool
	reactions map[string]domain.ReactionType
}

func newStateStore() *stateStore {
	return &stateStore{
		expansion: make(map[string]Expansion),
		truncated: make(map[string]bool),
		reactions: make(map[string]domain.ReactionType),
	}
}

func (s *stateStore) expansionFor(id string) Expansion {
	return s.expansion[id]
}

func (s *stateStore) setThreadExpanded(id string, v bool) {
	e := s.expansion[id]
	e.ThreadExpanded = v
	s.expansion[id] = e
}

func (s *stateStore) toggleThread(id string) bool {
	v := !s.expansion[id].ThreadExpanded
	s.setThreadExpanded(id, v)
	return v
}

func (s *stateStore) toggleContent(id string) bool {
	e := s.expansion[id]
	e.ContentExpanded = !e.ContentExpanded
	s.expansion[id] = e
	return e.ContentExpanded
}

func (s *stateStore) isTruncated(id string) bool {
	return s.truncated[id]
}

func (s *stateStore) setTruncated(id string, v bool) {
	s.truncated[id] = v
}

// reactionFor returns the viewer's live reaction. Until the viewer acts, a
// node flagged as reacted-by-default carries the default reaction.
func (s *stateStore) reactionFor(n *domain.ReplyNode) domain.ReactionType {
	if n == nil {
		return domain.ReactionNone
	}
	if r, ok := s.reactions[n.ID]; ok {
		return r
	}
	if n.Metrics.UserReacted {
		return domain.DefaultReaction
	}
	return domain.ReactionNone
}

// applyReaction toggles selected on n and returns the resulting reaction.
func (s *stateStore) applyReaction(n *domain.ReplyNode, selected domain.ReactionType) domain.ReactionType {
	next := domain.ToggleReaction(s.reactionFor(n), selected)
	s.reactions[n.ID] = next
	return next
}

// displayTotal is the reaction count shown next to n.
func (s *stateStore) displayTotal(n *domain.ReplyNode) int {
	return domain.DisplayTotal(domain.DefaultTally(n.Metrics.Likes), n.Metrics.UserReacted, s.reactionFor(n))
}

// forget drops state for a deleted subtree.
func (s *stateStore) forget(n *domain.ReplyNode) {
	if n == nil {
		return
	}
	delete(s.expansion, n.ID)
	delete(s.truncated, n.ID)
	delete(s.reactions, n.ID)
	for _, c := range n.Replies {
		s.forget(c)
	}
}
