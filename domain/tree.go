package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FindReply walks the tree depth-first and returns the node with the given ID.
func FindReply(roots []*ReplyNode, id string) (*ReplyNode, bool) {
	if strings.TrimSpace(id) == "" {
		return nil, false
	}
	for _, n := range roots {
		if n == nil {
			continue
		}
		if n.ID == id {
			return n, true
		}
		if found, ok := FindReply(n.Replies, id); ok {
			return found, true
		}
	}
	return nil, false
}

// ReplyPath returns the chain of nodes from a top-level reply down to id,
// or nil when id is not in the tree.
func ReplyPath(roots []*ReplyNode, id string) []*ReplyNode {
	for _, n := range roots {
		if n == nil {
			continue
		}
		if n.ID == id {
			return []*ReplyNode{n}
		}
		if rest := ReplyPath(n.Replies, id); rest != nil {
			return append([]*ReplyNode{n}, rest...)
		}
	}
	return nil
}

// AppendReply adds node at the end of parentID's replies, or at the end of
// the post's top level when parentID is empty or the post itself.
func AppendReply(p *Post, parentID string, node *ReplyNode) error {
	if p == nil || node == nil {
		return ErrInvalidPost
	}
	if strings.TrimSpace(node.Content) == "" {
		return ErrEmptyReply
	}
	if parentID == "" || parentID == p.ID {
		p.Replies = append(p.Replies, node)
		return nil
	}
	parent, ok := FindReply(p.Replies, parentID)
	if !ok {
		return fmt.Errorf("appending to %s: %w", parentID, ErrReplyNotFound)
	}
	parent.Replies = append(parent.Replies, node)
	return nil
}

// RemoveReply deletes exactly one node (and its subtree) from the tree.
// It reports whether anything was removed; an absent ID is not an error.
func RemoveReply(p *Post, id string) bool {
	if p == nil {
		return false
	}
	var ok bool
	p.Replies, ok = removeReply(p.Replies, id)
	return ok
}

func removeReply(nodes []*ReplyNode, id string) ([]*ReplyNode, bool) {
	for i, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID == id {
			out := make([]*ReplyNode, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			return append(out, nodes[i+1:]...), true
		}
		if rest, ok := removeReply(n.Replies, id); ok {
			n.Replies = rest
			return nodes, true
		}
	}
	return nodes, false
}

// CountReplies returns the number of descendants below n.
func CountReplies(n *ReplyNode) int {
	if n == nil {
		return 0
	}
	total := 0
	for _, c := range n.Replies {
		if c == nil {
			continue
		}
		total += 1 + CountReplies(c)
	}
	return total
}

// SortTopLevel orders top-level replies by their timestamp string. The sort
// is lexical and stable; nested replies keep insertion order.
func SortTopLevel(replies []*ReplyNode) {
	sort.SliceStable(replies, func(i, j int) bool {
		if replies[i] == nil || replies[j] == nil {
			return replies[j] == nil && replies[i] != nil
		}
		return replies[i].Timestamp < replies[j].Timestamp
	})
}
