package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/infra/editor"
	"github.com/CrestNiraj12/rantthread/tui/common"
	"github.com/CrestNiraj12/rantthread/tui/compose"
	"github.com/CrestNiraj12/rantthread/tui/thread"
)

const (
	statusTTL       = 3 * time.Second
	navigateTimeout = 5 * time.Second
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Source    app.PostSource
	Changes   <-chan struct{}
	Prefs     app.PreferenceStore
	Navigator app.Navigator
	Editor    *editor.EnvEditor
	Logger    *zap.Logger
	Viewer    domain.Author
	PageSize  int
	Mode      thread.RenderMode
}

type activeView int

const (
	threadView activeView = iota
	detailView
	composeView
)

// engineID says which thread engine a message belongs to.
type engineID int

const (
	mainEngine engineID = iota
	detailEngine
)

// engineMsg carries a message produced by one engine's commands back to that
// engine only, so timers and page loads of the two engines never cross.
type engineMsg struct {
	from engineID
	msg  tea.Msg
}

type detailLoadedMsg struct {
	post    domain.Post
	replyTo string
	err     error
}

type clearStatusMsg struct {
	seq int
}

// App is the root Bubble Tea model. It routes between the post's thread, a
// full-page post detail and the reply composer.
type App struct {
	deps      Deps
	logger    *zap.Logger
	active    activeView
	thread    thread.Model
	detail    thread.Model
	hasDetail bool
	compose   compose.Model
	replyFrom engineID
	returnTo  activeView
	keys      common.KeyMap
	status    string // Transient status message (e.g. "Reply added")
	statusErr bool
	statusSeq int
	width     int
	height    int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	deps.Logger = logger
	return App{
		deps:   deps,
		logger: logger.Named("tui"),
		active: threadView,
		thread: thread.New(thread.Deps{
			Source:   deps.Source,
			Changes:  deps.Changes,
			Prefs:    deps.Prefs,
			Logger:   logger,
			Viewer:   deps.Viewer,
			PageSize: deps.PageSize,
			Mode:     deps.Mode,
		}),
		keys: common.DefaultKeyMap(),
	}
}

// Init starts the thread engine.
func (a App) Init() tea.Cmd {
	return tagged(mainEngine, a.thread.Init())
}

// tagged wraps an engine command so its result comes back as an engineMsg.
// Batches are unwrapped so every command in them is tagged too.
func tagged(from engineID, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			out := make(tea.BatchMsg, 0, len(msg))
			for _, c := range msg {
				if c != nil {
					out = append(out, tagged(from, c))
				}
			}
			return out
		default:
			return engineMsg{from: from, msg: msg}
		}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-1, 0)}
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.thread, cmd = a.thread.Update(inner)
		cmds = append(cmds, tagged(mainEngine, cmd))
		if a.hasDetail {
			a.detail, cmd = a.detail.Update(inner)
			cmds = append(cmds, tagged(detailEngine, cmd))
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active != composeView && key.Matches(msg, a.keys.Quit) {
			if a.active == threadView && !a.thread.IsOverlayOpen() {
				return a, tea.Quit
			}
			if a.active == detailView && !a.detail.IsOverlayOpen() {
				a.closeDetail()
				return a, nil
			}
		}

	case engineMsg:
		return a.handleEngineMsg(msg)

	case detailLoadedMsg:
		return a.openDetail(msg)

	case compose.DoneMsg:
		return a.handleComposeDone(msg)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil
	}

	// Delegate to the active sub-model.
	switch a.active {
	case threadView:
		updated, cmd := a.thread.Update(msg)
		a.thread = updated
		return a, tagged(mainEngine, cmd)
	case detailView:
		updated, cmd := a.detail.Update(msg)
		a.detail = updated
		return a, tagged(detailEngine, cmd)
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}

	return a, nil
}

// handleEngineMsg serves the requests an engine makes of its host and sends
// everything else back to the engine that produced it.
func (a App) handleEngineMsg(em engineMsg) (tea.Model, tea.Cmd) {
	switch msg := em.msg.(type) {
	case thread.ToastMsg:
		cmd := a.setStatus(msg.Text, msg.IsErr)
		return a, cmd

	case thread.ReplyRequestedMsg:
		ctx := compose.Context{
			ParentID:    msg.ParentID,
			AuthorLabel: msg.AuthorLabel,
			Quoted:      msg.QuotedContent,
			AvatarURL:   msg.AvatarURL,
		}
		if msg.UseInline || a.deps.Editor == nil {
			a.compose = compose.NewInline(ctx)
		} else {
			a.compose = compose.NewEditor(a.deps.Editor, ctx)
		}
		a.replyFrom = em.from
		a.returnTo = a.active
		a.active = composeView
		a.status = ""
		return a, a.compose.Init()

	case thread.NavigateMsg:
		if a.deps.Navigator == nil {
			cmd := a.setStatus("Post detail is not available", true)
			return a, cmd
		}
		return a, a.navigate(msg)

	case thread.BackMsg:
		if em.from == detailEngine {
			a.closeDetail()
		}
		return a, nil

	case thread.DeleteConfirmedMsg:
		a.logger.Info("reply deleted locally", zap.String("node", msg.ID))
		return a, nil
	}

	var cmd tea.Cmd
	switch em.from {
	case mainEngine:
		a.thread, cmd = a.thread.Update(em.msg)
	case detailEngine:
		if !a.hasDetail {
			return a, nil
		}
		a.detail, cmd = a.detail.Update(em.msg)
	}
	return a, tagged(em.from, cmd)
}

func (a App) handleComposeDone(msg compose.DoneMsg) (tea.Model, tea.Cmd) {
	a.active = a.returnTo
	if a.active == detailView && !a.hasDetail {
		a.active = threadView
	}
	if msg.Err != nil {
		a.logger.Warn("composing reply failed", zap.Error(msg.Err))
		cmd := a.setStatus("Error: "+msg.Err.Error(), true)
		return a, cmd
	}
	if msg.Cancelled() {
		cmd := a.setStatus("Cancelled.", false)
		return a, cmd
	}
	return a.handleEngineMsg(engineMsg{
		from: a.replyFrom,
		msg:  thread.AddLocalReplyMsg{ParentID: msg.ParentID, Content: msg.Content},
	})
}

func (a App) navigate(msg thread.NavigateMsg) tea.Cmd {
	nav := a.deps.Navigator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), navigateTimeout)
		defer cancel()
		post, err := nav.OpenPostDetail(ctx, msg.PostIndex, msg.Options)
		return detailLoadedMsg{post: post, replyTo: msg.Options.ReplyTo, err: err}
	}
}

// openDetail shows a loaded post in a linear engine.
func (a App) openDetail(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.logger.Warn("opening post detail failed", zap.Error(msg.err))
		cmd := a.setStatus("Could not open post: "+msg.err.Error(), true)
		return a, cmd
	}
	d := thread.New(thread.Deps{
		Prefs:    a.deps.Prefs,
		Logger:   a.deps.Logger,
		Viewer:   a.deps.Viewer,
		PageSize: a.deps.PageSize,
		Mode:     thread.ModeLinear,
	})
	if a.width > 0 {
		d, _ = d.Update(tea.WindowSizeMsg{Width: a.width, Height: max(a.height-1, 0)})
	}
	d, cmd := d.Update(thread.PostLoadedMsg{Post: msg.post})
	if msg.replyTo != "" {
		d = d.Reveal(msg.replyTo)
	}
	a.detail = d
	a.hasDetail = true
	a.active = detailView
	a.logger.Info("post detail opened", zap.String("post", msg.post.ID))
	return a, tagged(detailEngine, cmd)
}

func (a *App) closeDetail() {
	a.hasDetail = false
	a.detail = thread.Model{}
	a.active = threadView
}

func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.statusSeq++
	a.status = text
	a.statusErr = isErr
	seq := a.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case threadView:
		s = a.thread.View()
	case detailView:
		s = a.detail.View()
	case composeView:
		s = a.compose.View()
	}

	// Append transient status if present.
	if a.status != "" {
		style := common.StatusBarStyle
		if a.statusErr {
			style = common.ErrorStyle
		}
		s += "\n" + style.Render(a.status)
	}

	return s
}
