package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Preference backends.
const (
	PrefsFile   = "file"
	PrefsSQLite = "sqlite"
	PrefsPebble = "pebble"
)

const (
	DefaultPageSize = 5
	maxPageSize     = 100
)

// Config holds application-level configuration.
type Config struct {
	PostPath     string // YAML fixture holding the post; empty serves the sample
	StateDir     string // Directory for preferences and logs
	PrefsBackend string // file, sqlite or pebble
	PageSize     int    // Top-level comments revealed per page
	ViewerHandle string // Handle of the person using the client
	ViewerName   string
	LogFile      string // Empty disables logging
	LogLevel     string
	Watch        bool // Reload the post when the fixture changes
	SortTopLevel bool // Sort top-level replies by timestamp
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
//
//	RANTTHREAD_POST       — Post fixture path (default: built-in sample)
//	RANTTHREAD_STATE_DIR  — State directory (default: ~/.config/rantthread)
//	RANTTHREAD_PREFS      — Preference backend: file, sqlite, pebble (default: file)
//	RANTTHREAD_PAGE_SIZE  — Comments per page (default: 5)
//	RANTTHREAD_VIEWER     — Viewer handle (default: "you")
//	RANTTHREAD_VIEWER_NAME
//	RANTTHREAD_LOG_FILE   — Log file (default: <state dir>/rantthread.log, "off" disables)
//	RANTTHREAD_LOG_LEVEL  — debug, info, warn, error (default: info)
//	RANTTHREAD_WATCH      — Reload on fixture change (default: true)
//	RANTTHREAD_SORT_TOP   — "timestamp" sorts top-level replies
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	postPath := strings.TrimSpace(os.Getenv("RANTTHREAD_POST"))

	stateDir := strings.TrimSpace(os.Getenv("RANTTHREAD_STATE_DIR"))
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".config", "rantthread")
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("RANTTHREAD_PREFS")))
	if backend == "" {
		backend = PrefsFile
	}
	if err := ValidateBackend(backend); err != nil {
		return Config{}, err
	}

	pageSize := DefaultPageSize
	if raw := strings.TrimSpace(os.Getenv("RANTTHREAD_PAGE_SIZE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RANTTHREAD_PAGE_SIZE: %w", err)
		}
		if err := ValidatePageSize(n); err != nil {
			return Config{}, err
		}
		pageSize = n
	}

	viewer := strings.TrimPrefix(strings.TrimSpace(os.Getenv("RANTTHREAD_VIEWER")), "@")
	if viewer == "" {
		viewer = "you"
	}
	viewerName := strings.TrimSpace(os.Getenv("RANTTHREAD_VIEWER_NAME"))
	if viewerName == "" {
		viewerName = "You"
	}

	logFile := strings.TrimSpace(os.Getenv("RANTTHREAD_LOG_FILE"))
	switch strings.ToLower(logFile) {
	case "":
		logFile = filepath.Join(stateDir, "rantthread.log")
	case "off", "none":
		logFile = ""
	}
	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv("RANTTHREAD_LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	watch := true
	if raw := strings.TrimSpace(os.Getenv("RANTTHREAD_WATCH")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RANTTHREAD_WATCH: %w", err)
		}
		watch = v
	}

	return Config{
		PostPath:     postPath,
		StateDir:     stateDir,
		PrefsBackend: backend,
		PageSize:     pageSize,
		ViewerHandle: viewer,
		ViewerName:   viewerName,
		LogFile:      logFile,
		LogLevel:     logLevel,
		Watch:        watch,
		SortTopLevel: strings.EqualFold(strings.TrimSpace(os.Getenv("RANTTHREAD_SORT_TOP")), "timestamp"),
	}, nil
}

// ValidateBackend rejects unknown preference backends.
func ValidateBackend(name string) error {
	switch name {
	case PrefsFile, PrefsSQLite, PrefsPebble:
		return nil
	}
	return fmt.Errorf("invalid preference backend %q: want file, sqlite or pebble", name)
}

func ValidatePageSize(n int) error {
	if n < 1 || n > maxPageSize {
		return fmt.Errorf("invalid page size %d: must be between 1 and %d", n, maxPageSize)
	}
	return nil
}

// PrefsPath returns where the selected backend keeps its data.
func (c Config) PrefsPath() string {
	switch c.PrefsBackend {
	case PrefsSQLite:
		return filepath.Join(c.StateDir, "prefs.db")
	case PrefsPebble:
		return filepath.Join(c.StateDir, "prefs.pebble")
	}
	return filepath.Join(c.StateDir, "ui_state.json")
}
