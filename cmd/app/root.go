package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/platform"
	"github.com/akyairhashvil/lexodoro/internal/store"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/akyairhashvil/lexodoro/internal/tui"
	"github.com/akyairhashvil/lexodoro/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Flag names.
const (
	flagFocus      = "focus"
	flagBreak      = "break"
	flagTheme      = "theme"
	flagNoIcons    = "no-icons"
	flagConfigDir  = "config-dir"
	flagDataDir    = "data-dir"
	flagEphemeral  = "ephemeral"
	flagLogFile    = "log-file"
	flagFullscreen = "fullscreen"
)

var errNotTerminal = errors.New("lexodoro needs an interactive terminal")

// isTerminal is swapped in tests.
var isTerminal = func(fd int) bool { return term.IsTerminal(fd) }

type rootOptions struct {
	focus      int
	brk        int
	theme      string
	noIcons    bool
	configDir  string
	dataDir    string
	ephemeral  bool
	logFile    string
	fullscreen bool
}

func newRootCmd() *cobra.Command {
	return newRootCommand(&rootOptions{})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "A compiler-themed focus/break timer for the terminal",
		Long: `Lexodoro alternates a focus interval with a break interval and shows
progress as four compiler phases: LEX, PARSE, OPT and GEN.

Keys: space start/pause, r reset, s skip, f fullscreen, "," settings,
e export report, ? help, q quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.focus, flagFocus, config.DefaultFocusMinutes, fmt.Sprintf("focus minutes (%d-%d)", config.MinFocusMinutes, config.MaxFocusMinutes))
	f.IntVar(&opts.brk, flagBreak, config.DefaultBreakMinutes, fmt.Sprintf("break minutes (%d-%d)", config.MinBreakMinutes, config.MaxBreakMinutes))
	f.StringVar(&opts.theme, flagTheme, config.DefaultTheme, "color theme: "+strings.Join(tui.ThemeNames(), ", "))
	f.BoolVar(&opts.noIcons, flagNoIcons, false, "hide button icons")
	f.BoolVar(&opts.ephemeral, flagEphemeral, false, "keep settings in memory only")
	f.StringVar(&opts.logFile, flagLogFile, "", "log file (default: <data-dir>/lexodoro.log)")
	f.BoolVar(&opts.fullscreen, flagFullscreen, false, "start in the alternate screen")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configDir, flagConfigDir, "", "configuration directory (default: $XDG_CONFIG_HOME/lexodoro)")
	pf.StringVar(&opts.dataDir, flagDataDir, "", "data directory (default: $XDG_DATA_HOME/lexodoro)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// session is the fully resolved start-up configuration.
type session struct {
	prefs      store.Preferences
	theme      string
	fullscreen bool
}

// resolvePaths applies flag > config file > default to the data dir and
// log file.
func (o *rootOptions) resolvePaths(file config.File) (dataDir, logFile string) {
	dataDir = firstNonEmpty(o.dataDir, file.DataDir, util.DataDir(config.AppName))
	logFile = firstNonEmpty(o.logFile, file.LogFile, filepath.Join(dataDir, config.LogFileName))
	return dataDir, logFile
}

// fileDefaults turns config.yaml into the defaults handed to the store.
func fileDefaults(file config.File) store.Preferences {
	s := timer.Settings{FocusMinutes: file.FocusMinutes, BreakMinutes: file.BreakMinutes}.Sanitize()
	return store.Preferences{
		FocusMinutes: s.FocusMinutes,
		BreakMinutes: s.BreakMinutes,
		ShowIcons:    file.ShowIcons,
	}
}

// applyFlags overrides stored preferences with explicitly set flags.
func (o *rootOptions) applyFlags(cmd *cobra.Command, file config.File, stored store.Preferences) (session, error) {
	s := session{prefs: stored, theme: file.Theme, fullscreen: file.Fullscreen}
	flags := cmd.Flags()
	if flags.Changed(flagFocus) {
		s.prefs.FocusMinutes = o.focus
	}
	if flags.Changed(flagBreak) {
		s.prefs.BreakMinutes = o.brk
	}
	if flags.Changed(flagNoIcons) {
		s.prefs.ShowIcons = !o.noIcons
	}
	if flags.Changed(flagTheme) {
		s.theme = o.theme
	}
	if flags.Changed(flagFullscreen) {
		s.fullscreen = o.fullscreen
	}
	if s.theme == "" {
		s.theme = config.DefaultTheme
	}
	if _, ok := tui.Themes[s.theme]; !ok {
		return session{}, fmt.Errorf("unknown theme %q (want one of %s)", s.theme, strings.Join(tui.ThemeNames(), ", "))
	}
	settings := timer.Settings{FocusMinutes: s.prefs.FocusMinutes, BreakMinutes: s.prefs.BreakMinutes}.Sanitize()
	s.prefs.FocusMinutes = settings.FocusMinutes
	s.prefs.BreakMinutes = settings.BreakMinutes
	return s, nil
}

func (o *rootOptions) openStore(ctx context.Context, dataDir string) (store.PreferenceStore, func(), error) {
	if o.ephemeral {
		return store.NewMemory(), func() {}, nil
	}
	db, err := store.Open(ctx, filepath.Join(dataDir, config.StoreFileName))
	if err != nil {
		return nil, nil, err
	}
	return db, func() { util.LogError("close settings store", db.Close()) }, nil
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	file, err := config.Load(config.ResolveConfigDir(o.configDir))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !isTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	dataDir, logFile := o.resolvePaths(file)
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logOut, err := tea.LogToFile(logFile, config.AppName)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logOut.Close()

	prefsStore, closeStore, err := o.openStore(ctx, dataDir)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer closeStore()

	loadCtx, cancel := context.WithTimeout(ctx, config.StoreTimeout)
	stored, err := prefsStore.LoadPreferences(loadCtx, fileDefaults(file))
	cancel()
	if err != nil {
		util.LogError("load settings", err)
		stored = fileDefaults(file)
	}

	s, err := o.applyFlags(cmd, file, stored)
	if err != nil {
		return err
	}
	tui.SetTheme(s.theme)

	wakeLock := platform.NewDBusWakeLock(config.AppName, "Focus timer running")
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), config.WakeLockTimeout)
		defer cancel()
		util.LogError("release wake lock", wakeLock.Close(closeCtx))
	}()

	model := tui.NewModel(ctx, tui.Options{
		Settings:   timer.Settings{FocusMinutes: s.prefs.FocusMinutes, BreakMinutes: s.prefs.BreakMinutes},
		ShowIcons:  s.prefs.ShowIcons,
		WakeLock:   wakeLock,
		Fullscreen: platform.NewAltScreen(s.fullscreen),
		Store:      prefsStore,
		ReportsDir: util.ReportsDir(config.AppName),
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithReportFocus()}
	if s.fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	util.LogEvent("lexodoro starting", "focus_min", s.prefs.FocusMinutes, "break_min", s.prefs.BreakMinutes, "theme", s.theme)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
