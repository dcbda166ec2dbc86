package fixture

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/CrestNiraj12/rantthread/app"
	"github.com/CrestNiraj12/rantthread/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadPost_DecodesSampleFixture(t *testing.T) {
	src := New("", false, nil)
	post, err := src.LoadPost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "post-42", post.ID)
	require.Len(t, post.Replies, 12)
	assert.True(t, post.Replies[0].IsPinned())
	assert.True(t, post.Replies[1].Metrics.UserReacted)
	assert.Len(t, post.Replies[1].Replies, 3)
	for _, n := range post.Replies {
		assert.NotEmpty(t, n.ID)
	}

	again, err := src.LoadPost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, post.Replies[1].Replies[0].ID, again.Replies[1].Replies[0].ID, "ids are stable across loads")
}

func TestLoadPost_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.yaml")
	require.NoError(t, os.WriteFile(path, samplePost, 0o600))
	post, err := New(path, false, nil).LoadPost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "post-42", post.ID)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"), false, nil).LoadPost(context.Background())
	assert.Error(t, err)
}

func TestDecode_RejectsPostWithoutID(t *testing.T) {
	_, err := Decode([]byte("content: hi\n"), false)
	assert.ErrorIs(t, err, domain.ErrInvalidPost)

	_, err = Decode([]byte("id: [\n"), false)
	assert.Error(t, err)
}

func TestDecode_SortsTopLevelWhenAsked(t *testing.T) {
	doc := []byte(`
id: p
replies:
  - {content: b, timestamp: "2"}
  - {content: a, timestamp: "1"}
`)
	post, err := Decode(doc, true)
	require.NoError(t, err)
	assert.Equal(t, "a", post.Replies[0].Content)
}

func TestOpenPostDetail_ChecksIndex(t *testing.T) {
	src := New("", false, nil)
	post, err := src.OpenPostDetail(context.Background(), 0, app.NavigateOptions{ShowComments: true})
	require.NoError(t, err)
	assert.Equal(t, "post-42", post.ID)

	_, err = src.OpenPostDetail(context.Background(), 3, app.NavigateOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidPost)
}

func TestLoadPost_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New("missing.yaml", false, nil).LoadPost(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatch_SignalsOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: p\n"), 0o600))

	src := New(path, false, nil)
	require.NoError(t, src.Watch())
	defer func() { require.NoError(t, src.Close()) }()

	require.NoError(t, os.WriteFile(path, []byte("id: p\ncontent: changed\n"), 0o600))
	select {
	case <-src.Changes():
	case <-time.After(5 * time.Second):
		t.Fatalf("expected change notification")
	}
}

func TestClose_ClosesChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: p\n"), 0o600))

	src := New(path, false, nil)
	require.NoError(t, src.Watch())
	require.NoError(t, src.Close())

	select {
	case _, ok := <-src.Changes():
		assert.False(t, ok, "Changes should be closed after Close")
	case <-time.After(time.Second):
		t.Fatalf("Changes still open after Close")
	}
	assert.NoError(t, src.Close(), "second Close is a no-op")
	assert.Error(t, src.Watch(), "a closed source cannot watch again")
}

func TestClose_WithoutWatchClosesChanges(t *testing.T) {
	src := New("", false, nil)
	require.NoError(t, src.Close())
	_, ok := <-src.Changes()
	assert.False(t, ok)
}
