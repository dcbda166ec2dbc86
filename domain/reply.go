package domain

// Author is the display identity attached to a post or reply.
type Author struct {
	FirstName  string `yaml:"firstName"`
	LastName   string `yaml:"lastName"`
	Handle     string `yaml:"handle"`
	Avatar     string `yaml:"avatar"`
	Role       string `yaml:"role,omitempty"`
	TitleBadge string `yaml:"titleBadge,omitempty"`
}

// DisplayName returns "First Last", falling back to the handle.
func (a Author) DisplayName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	case a.LastName != "":
		return a.LastName
	}
	return a.Handle
}

// Label is the "@handle" form used when quoting or replying.
func (a Author) Label() string {
	if a.Handle == "" {
		return a.DisplayName()
	}
	return "@" + a.Handle
}

type Media struct {
	Type string `yaml:"type"` // image, video, gifv
	URL  string `yaml:"url"`
	Alt  string `yaml:"alt,omitempty"`
}

// Metrics carries the aggregate counters of a node. Likes is the only source
// the reaction breakdown is derived from.
type Metrics struct {
	Likes       int  `yaml:"likes"`
	Comments    int  `yaml:"comments"`
	UserReacted bool `yaml:"userReacted,omitempty"` // viewer reacted before mount
}

// ReplyNode is one comment in a discussion tree. Replies are kept oldest
// first and are only ever appended to or filtered.
type ReplyNode struct {
	ID         string       `yaml:"id,omitempty"`
	Author     Author       `yaml:"author"`
	Content    string       `yaml:"content"`
	Media      *Media       `yaml:"media,omitempty"`
	MediaItems []Media      `yaml:"mediaItems,omitempty"`
	Timestamp  string       `yaml:"timestamp"`
	Metrics    Metrics      `yaml:"metrics"`
	Replies    []*ReplyNode `yaml:"replies,omitempty"`
	Category   string       `yaml:"category,omitempty"`
	TitleBadge string       `yaml:"titleBadge,omitempty"`
	Local      bool         `yaml:"-"` // minted in this session, not from the source
}

// AllMedia returns Media followed by MediaItems.
func (n *ReplyNode) AllMedia() []Media {
	if n == nil {
		return nil
	}
	out := make([]Media, 0, len(n.MediaItems)+1)
	if n.Media != nil {
		out = append(out, *n.Media)
	}
	return append(out, n.MediaItems...)
}

// HasMedia reports whether the node carries any attachment.
func (n *ReplyNode) HasMedia() bool {
	return n != nil && (n.Media != nil || len(n.MediaItems) > 0)
}

// IsPinned reports whether the node belongs to the pinned section.
func (n *ReplyNode) IsPinned() bool {
	return n != nil && n.Category == CategoryPinned
}

const CategoryPinned = "pinned"

// Post is the root a discussion tree hangs off.
type Post struct {
	ID        string       `yaml:"id"`
	Index     int          `yaml:"index"`
	Author    Author       `yaml:"author"`
	Content   string       `yaml:"content"`
	Media     *Media       `yaml:"media,omitempty"`
	Timestamp string       `yaml:"timestamp"`
	Metrics   Metrics      `yaml:"metrics"`
	Replies   []*ReplyNode `yaml:"replies,omitempty"`
}
