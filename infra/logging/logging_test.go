package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug("page loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"page loaded"`), string(data))
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", "info")
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}
