package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// nodeNamespace scopes the name-based UUIDs minted for ingested replies.
var nodeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("rantthread:reply"))

// AssignIDs gives every reply without an ID a stable identity derived from
// its parent, author handle, timestamp and content. The same input tree always
// yields the same IDs, so per-node UI state survives reloads. Identical
// siblings are told apart by an ordinal.
func AssignIDs(p *Post) {
	if p == nil {
		return
	}
	seen := make(map[string]int)
	markSeen(p.Replies, seen)
	assignIDs(p.ID, p.Replies, seen)
}

func markSeen(nodes []*ReplyNode, seen map[string]int) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID != "" {
			seen[n.ID]++
		}
		markSeen(n.Replies, seen)
	}
}

func assignIDs(parentID string, nodes []*ReplyNode, seen map[string]int) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.ID == "" {
			n.ID = mintNodeID(parentID, n, seen)
		}
		assignIDs(n.ID, n.Replies, seen)
	}
}

func mintNodeID(parentID string, n *ReplyNode, seen map[string]int) string {
	name := strings.Join([]string{parentID, n.Author.Handle, n.Timestamp, n.Content}, "\x1f")
	for ordinal := 0; ; ordinal++ {
		key := name
		if ordinal > 0 {
			key = fmt.Sprintf("%s\x1f%d", name, ordinal)
		}
		id := uuid.NewSHA1(nodeNamespace, []byte(key)).String()
		if seen[id] == 0 {
			seen[id]++
			return id
		}
	}
}

// NewLocalID returns an ID for a reply minted in this session.
func NewLocalID() string {
	return "local-" + uuid.NewString()
}
