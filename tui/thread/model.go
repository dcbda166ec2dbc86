package thread

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/tui/common"
)

const (
	// MaxLevel is the deepest level rendered inline. Deeper replies are
	// reached through "Continue thread".
	MaxLevel = 3
	// UnitIndent is the left indent, in cells, per level.
	UnitIndent = 4
	// DefaultPageSize is how many top-level comments each page reveals.
	DefaultPageSize = 5

	defaultWidth    = 80
	defaultLinkBase = "https://rantthread.app/p/"
)

// Deps holds everything the engine talks to. Plain struct, not a DI container.
type Deps struct {
	Source    app.PostSource
	Changes   <-chan struct{} // optional; a value triggers a reload
	Prefs     app.PreferenceStore
	Logger    *zap.Logger
	Viewer    domain.Author
	PageSize  int
	Mode      RenderMode
	Layout    Layout
	Clipboard func(string) error
	LinkBase  string
}

type modelServices struct {
	source    app.PostSource
	changes   <-chan struct{}
	prefs     app.PreferenceStore
	logger    *zap.Logger
	clipboard func(string) error
	linkBase  string
}

type postState struct {
	post    domain.Post
	loaded  bool
	loading bool
	err     error
	// Local edits are replayed on reload so they survive a source refresh.
	localReplies []localReply
	deleted      map[string]struct{}
}

type localReply struct {
	parentID string
	node     *domain.ReplyNode
}

type uiState struct {
	width         int
	height        int
	scroll        int
	cursorKey     string
	cursorIdx     int
	focus         []string // continued-thread stack of node IDs
	confirmDelete string
	showHelp      bool
	pinnedOpen    bool
	prefsLoaded   bool
	unread        bool
	measuredWidth map[string]int
}

// Model is the threaded reply engine for one post.
type Model struct {
	modelServices
	postState
	uiState

	viewer   domain.Author
	mode     RenderMode
	layout   Layout
	keys     common.KeyMap
	help     help.Model
	spinner  spinner.Model
	store    *stateStore
	pager    pager
	press    press
	picker   picker
	reactors reactorDrawer

	// Called before a node is collected and before a row is drawn; nil in
	// production.
	collectHook func(*domain.ReplyNode)
	renderHook  func(row)
}

// New creates an engine with injected dependencies.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	layout := deps.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout()
	}
	copyFn := deps.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	linkBase := deps.LinkBase
	if linkBase == "" {
		linkBase = defaultLinkBase
	}

	return Model{
		modelServices: modelServices{
			source:    deps.Source,
			changes:   deps.Changes,
			prefs:     deps.Prefs,
			logger:    logger.Named("thread"),
			clipboard: copyFn,
			linkBase:  linkBase,
		},
		postState: postState{
			loading: deps.Source != nil,
			deleted: make(map[string]struct{}),
		},
		uiState: uiState{
			measuredWidth: make(map[string]int),
		},
		viewer:  deps.Viewer,
		mode:    deps.Mode,
		layout:  layout,
		keys:    common.DefaultKeyMap(),
		help:    help.New(),
		spinner: s,
		store:   newStateStore(),
		pager:   newPager(pageSize, 0),
	}
}

// Init loads the post and starts listening for source changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadPost(),
		m.waitForChange(),
		m.spinner.Tick,
	)
}

func (m Model) loadPost() tea.Cmd {
	if m.source == nil {
		return nil
	}
	src := m.source
	return func() tea.Msg {
		post, err := src.LoadPost(context.Background())
		if err != nil {
			return PostErrorMsg{Err: err}
		}
		return PostLoadedMsg{Post: post}
	}
}

// Post returns the post as currently held in memory.
func (m Model) Post() domain.Post {
	return m.post
}

// Loading reports whether the post itself is loading.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the last post-source error, if any.
func (m Model) Err() error {
	return m.err
}

// Reaction returns the viewer's current reaction on a node.
func (m Model) Reaction(nodeID string) domain.ReactionType {
	n, ok := domain.FindReply(m.post.Replies, nodeID)
	if !ok {
		return domain.ReactionNone
	}
	return m.store.reactionFor(n)
}

// ActivePicker returns the node whose reaction picker is open, or "".
func (m Model) ActivePicker() string {
	return m.picker.nodeID
}

// ActiveReactors returns the node whose reactor drawer is open, or "".
func (m Model) ActiveReactors() string {
	return m.reactors.nodeID
}

// VisibleCount returns how many top-level comments are exposed.
func (m Model) VisibleCount() int {
	return m.pager.visible
}

// PageLoading reports whether a page load is in flight.
func (m Model) PageLoading() bool {
	return m.pager.loading
}

// IsOverlayOpen reports whether something inside the engine wants esc.
func (m Model) IsOverlayOpen() bool {
	return m.picker.open() || m.reactors.open() || m.confirmDelete != "" || m.showHelp || len(m.focus) > 0
}
