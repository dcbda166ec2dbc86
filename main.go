package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/rantthread/domain"
	"github.com/CrestNiraj12/rantthread/infra/config"
	"github.com/CrestNiraj12/rantthread/infra/editor"
	"github.com/CrestNiraj12/rantthread/infra/fixture"
	"github.com/CrestNiraj12/rantthread/infra/logging"
	"github.com/CrestNiraj12/rantthread/infra/prefs"
	"github.com/CrestNiraj12/rantthread/tui"
	"github.com/CrestNiraj12/rantthread/tui/thread"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cliFlags override the environment configuration when set.
type cliFlags struct {
	post     string
	prefs    string
	pageSize int
	verbose  bool
	noWatch  bool
	linear   bool
}

func newRootCmd() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:   "rantthread",
		Short: "Threaded comments for a single post, in your terminal",
		Long: `rantthread shows one post and its nested replies.

Replies nest up to three levels; deeper threads continue in their own view.
Top-level comments load a page at a time as you scroll. React with l (tap)
or L (picker), reply with c or C, and press ? for every key.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := applyFlags(cmd, flags, &cfg); err != nil {
				return err
			}
			return run(cfg, flags.linear)
		},
	}
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	bindFlags(cmd, &flags)
	return cmd
}

func bindFlags(cmd *cobra.Command, flags *cliFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.post, "post", "", "post fixture (YAML); defaults to the built-in sample")
	f.StringVar(&flags.prefs, "prefs", "", "preference backend: file, sqlite or pebble")
	f.IntVar(&flags.pageSize, "page-size", 0, "top-level comments per page")
	f.BoolVarP(&flags.verbose, "verbose", "V", false, "debug logging")
	f.BoolVar(&flags.noWatch, "no-watch", false, "do not reload when the fixture changes")
	f.BoolVar(&flags.linear, "linear", false, "measure truncation by line count instead of card height")
}

// applyFlags lays explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, flags cliFlags, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("post") {
		cfg.PostPath = strings.TrimSpace(flags.post)
	}
	if f.Changed("prefs") {
		backend := strings.ToLower(strings.TrimSpace(flags.prefs))
		if err := config.ValidateBackend(backend); err != nil {
			return err
		}
		cfg.PrefsBackend = backend
	}
	if f.Changed("page-size") {
		if err := config.ValidatePageSize(flags.pageSize); err != nil {
			return err
		}
		cfg.PageSize = flags.pageSize
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if flags.noWatch {
		cfg.Watch = false
	}
	return nil
}

func run(cfg config.Config, linear bool) error {
	// 1. Logging and state directory.
	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Build infrastructure.
	source := fixture.New(cfg.PostPath, cfg.SortTopLevel, logger.Named("fixture"))
	defer source.Close()
	if cfg.Watch {
		if err := source.Watch(); err != nil {
			logger.Warn("watching post fixture failed", zap.String("path", cfg.PostPath), zap.Error(err))
		}
	}

	store, err := prefs.Open(cfg.PrefsBackend, cfg.PrefsPath())
	if err != nil {
		return fmt.Errorf("opening %s preferences: %w", cfg.PrefsBackend, err)
	}
	defer store.Close()

	mode := thread.ModeCard
	if linear {
		mode = thread.ModeLinear
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("post", cfg.PostPath),
		zap.String("prefs", cfg.PrefsBackend),
		zap.Int("page_size", cfg.PageSize))

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Source:    source,
		Changes:   source.Changes(),
		Prefs:     store,
		Navigator: source,
		Editor:    editor.NewEnvEditor(),
		Logger:    logger,
		Viewer:    domain.Author{FirstName: cfg.ViewerName, Handle: cfg.ViewerHandle},
		PageSize:  cfg.PageSize,
		Mode:      mode,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("rantthread: %w", err)
	}
	return nil
}

func versionString() string {
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
	return fmt.Sprintf("rantthread %s\ncommit: %s\nbuilt: %s", v, c, d)
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
