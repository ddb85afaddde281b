package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/platform"
	"github.com/akyairhashvil/lexodoro/internal/store"
	"github.com/akyairhashvil/lexodoro/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// wakeLockMsg reports the outcome of an Acquire or Release.
type wakeLockMsg struct {
	held bool
	err  error
}

type settingsSavedMsg struct {
	err error
}

type reportMsg struct {
	path string
	err  error
}

// syncWakeLockCmd moves the lock toward the engine's running state. It
// returns nil when the lock already matches or is unavailable.
func (m Model) syncWakeLockCmd() tea.Cmd {
	want := m.engine.Running()
	if want == m.lockHeld {
		return nil
	}
	return m.wakeLockCmd(want)
}

func (m Model) wakeLockCmd(acquire bool) tea.Cmd {
	if !m.wakeLock.Supported() {
		return nil
	}
	wl, parent := m.wakeLock, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, config.WakeLockTimeout)
		defer cancel()
		if acquire {
			return wakeLockMsg{held: true, err: wl.Acquire(ctx)}
		}
		return wakeLockMsg{held: false, err: wl.Release(ctx)}
	}
}

// handleWakeLock records the lock state and re-syncs if the timer changed
// while the call was in flight. Failures are logged and dropped.
func (m Model) handleWakeLock(msg wakeLockMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		if !errors.Is(msg.err, platform.ErrUnsupported) {
			util.LogError("wake lock", msg.err)
		}
		m.lockHeld = false
		return m, nil
	}
	m.lockHeld = msg.held
	return m, m.syncWakeLockCmd()
}

// handleFocus re-acquires the lock when the terminal regains focus, since
// the session manager may have dropped the inhibitor meanwhile.
func (m Model) handleFocus() (Model, tea.Cmd) {
	if !m.engine.Running() {
		return m, nil
	}
	return m, m.wakeLockCmd(true)
}

func (m Model) saveSettingsCmd(p store.Preferences) tea.Cmd {
	st, parent := m.prefs, m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, config.StoreTimeout)
		defer cancel()
		return settingsSavedMsg{err: st.SavePreferences(ctx, p)}
	}
}

func (m Model) handleSettingsSaved(msg settingsSavedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		util.LogError("save settings", msg.err)
		m.Message = fmt.Sprintf("Settings not saved: %v", msg.err)
	}
	return m, nil
}

func (m Model) handleReport(msg reportMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		util.LogError("export report", msg.err)
		m.Message = fmt.Sprintf("Report failed: %v", msg.err)
		return m, nil
	}
	util.LogEvent("report exported", "path", msg.path)
	m.Message = "Report saved: " + msg.path
	return m, nil
}
