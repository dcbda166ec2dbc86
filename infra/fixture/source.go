package fixture

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
)

//go:embed sample/post.yaml
var samplePost []byte

// Source reads a post and its reply tree from a YAML file. It satisfies
// app.PostSource, app.WatchingSource and app.Navigator.
type Source struct {
	path    string
	sortTop bool
	logger  *zap.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
	closed  bool
}

// New creates a Source for path. An empty path serves the built-in sample
// post. When sortTop is set, top-level replies are
// ordered by their timestamp string after loading.
func New(path string, sortTop bool, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		path:    path,
		sortTop: sortTop,
		logger:  logger,
		changes: make(chan struct{}, 1),
	}
}

// LoadPost decodes the fixture and assigns stable IDs to every reply.
func (s *Source) LoadPost(ctx context.Context) (domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return domain.Post{}, err
	}
	if s.path == "" {
		return Decode(samplePost, s.sortTop)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Post{}, fmt.Errorf("reading post fixture: %w", err)
	}
	return Decode(data, s.sortTop)
}

// Decode parses a YAML post document.
func Decode(data []byte, sortTop bool) (domain.Post, error) {
	var post domain.Post
	if err := yaml.Unmarshal(data, &post); err != nil {
		return domain.Post{}, fmt.Errorf("decoding post fixture: %w", err)
	}
	if strings.TrimSpace(post.ID) == "" {
		return domain.Post{}, fmt.Errorf("post has no id: %w", domain.ErrInvalidPost)
	}
	domain.AssignIDs(&post)
	if sortTop {
		domain.SortTopLevel(post.Replies)
	}
	return post, nil
}

// OpenPostDetail returns the post shown by the detail view. The fixture holds
// a single post, so any other index is rejected.
func (s *Source) OpenPostDetail(ctx context.Context, postIndex int, _ app.NavigateOptions) (domain.Post, error) {
	post, err := s.LoadPost(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	if post.Index != postIndex {
		return domain.Post{}, fmt.Errorf("post index %d: %w", postIndex, domain.ErrInvalidPost)
	}
	return post, nil
}

// Changes delivers a value whenever the fixture is rewritten. Bursts of
// events collapse into one pending notification.
func (s *Source) Changes() <-chan struct{} {
	return s.changes
}

// Watch starts watching the fixture's directory. Editors often replace files
// by rename, so the directory is watched rather than the file itself.
func (s *Source) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("watching a closed source")
	}
	if s.watcher != nil || s.path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	s.watcher = watcher
	s.done = make(chan struct{})
	go s.run(watcher, s.done)
	s.logger.Info("watching post fixture", zap.String("path", s.path))
	return nil
}

func (s *Source) run(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	name := filepath.Base(s.path)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			select {
			case s.changes <- struct{}{}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("fixture watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher, if any, waits for its goroutine to exit and then
// closes the Changes channel. Closing twice is a no-op.
func (s *Source) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	watcher, done := s.watcher, s.done
	s.watcher = nil
	s.mu.Unlock()

	var err error
	if watcher != nil {
		err = watcher.Close()
		<-done
	}
	close(s.changes)
	if err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		return err
	}
	return nil
}
