package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/platform"
	"github.com/akyairhashvil/lexodoro/internal/report"
	"github.com/akyairhashvil/lexodoro/internal/store"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Options wires the model to its collaborators. Nil collaborators fall back
// to in-memory or no-op implementations.
type Options struct {
	Settings   timer.Settings
	ShowIcons  bool
	WakeLock   platform.WakeLock
	Fullscreen platform.Fullscreen
	Store      store.PreferenceStore
	ReportsDir string
	Now        func() time.Time
}

// Model is the root bubbletea model. The engine owns the timer state; the
// model schedules ticks and completions and talks to the collaborators.
type Model struct {
	ctx        context.Context
	engine     *timer.Engine
	log        *report.Log
	wakeLock   platform.WakeLock
	fullscreen platform.Fullscreen
	prefs      store.PreferenceStore
	keys       *HandlerRegistry
	help       help.Model
	progress   progress.Model
	settings   SettingsPanel
	reportsDir string

	showIcons    bool
	tickSeq      int
	tickInterval time.Duration
	lockHeld     bool
	quitting     bool
	width        int
	height       int

	Message string
}

func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.WakeLock == nil {
		opts.WakeLock = platform.NoopWakeLock{}
	}
	if opts.Fullscreen == nil {
		opts.Fullscreen = platform.NewAltScreen(false)
	}
	if opts.Store == nil {
		opts.Store = store.NewMemory()
	}
	engine := timer.New(opts.Settings)

	h := help.New()
	h.ShortSeparator = "  "

	return Model{
		ctx:          ctx,
		engine:       engine,
		log:          report.NewLog(opts.Now),
		wakeLock:     opts.WakeLock,
		fullscreen:   opts.Fullscreen,
		prefs:        opts.Store,
		keys:         defaultBindings(),
		help:         h,
		progress:     newProgressBar(config.ProgressWidth),
		settings:     newSettingsPanel(engine.Settings(), opts.ShowIcons),
		reportsDir:   opts.ReportsDir,
		showIcons:    opts.ShowIcons,
		tickInterval: config.TickInterval,
	}
}

func newProgressBar(width int) progress.Model {
	p := progress.New(
		progress.WithSolidFill(CurrentTheme.FocusBar),
		progress.WithoutPercentage(),
	)
	p.Width = width
	p.EmptyColor = CurrentTheme.EmptyBar
	return p
}

// Engine exposes the timer for inspection.
func (m Model) Engine() *timer.Engine { return m.engine }

// Log exposes the session history.
func (m Model) Log() *report.Log { return m.log }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("<Lexodoro/>")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case CompleteMsg:
		return m.handleComplete(msg)
	case wakeLockMsg:
		return m.handleWakeLock(msg)
	case tea.FocusMsg:
		return m.handleFocus()
	case settingsSavedMsg:
		return m.handleSettingsSaved(msg)
	case reportMsg:
		return m.handleReport(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.handleQuit()
		}
		if m.settings.IsOpen() {
			return m.updateSettings(msg)
		}
		if next, cmd, handled := m.keys.Handle(m, msg); handled {
			return next, cmd
		}
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.progress.Width = progressWidth(msg.Width)
	return m, nil
}

func progressWidth(termWidth int) int {
	w := config.ProgressWidth
	if termWidth > 0 && termWidth-12 < w {
		w = termWidth - 12
	}
	if w < config.MinProgressWidth {
		w = config.MinProgressWidth
	}
	return w
}
