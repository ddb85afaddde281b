package tui

import (
	"fmt"
	"path/filepath"

	"github.com/akyairhashvil/lexodoro/internal/report"
	"github.com/akyairhashvil/lexodoro/internal/store"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/akyairhashvil/lexodoro/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleToggle() (Model, tea.Cmd) {
	if m.engine.Running() {
		return m.pause()
	}
	return m.start()
}

func (m Model) start() (Model, tea.Cmd) {
	if !m.engine.Start() {
		return m, nil
	}
	// A new source replaces any tick still in flight.
	m.stopTicks()
	m.Message = ""
	util.LogEvent("timer started", "mode", m.engine.Mode(), "remaining", m.engine.Remaining())
	return m, tea.Batch(m.tickCmd(), m.syncWakeLockCmd())
}

func (m Model) pause() (Model, tea.Cmd) {
	m.engine.Pause()
	m.stopTicks()
	util.LogEvent("timer paused", "mode", m.engine.Mode(), "remaining", m.engine.Remaining())
	cmds := []tea.Cmd{m.syncWakeLockCmd()}
	if tag := m.engine.Pending(); tag != 0 {
		cmds = append(cmds, completeCmd(tag))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleReset() (Model, tea.Cmd) {
	m.engine.Reset()
	m.stopTicks()
	m.Message = ""
	util.LogEvent("timer reset", "mode", m.engine.Mode())
	return m, m.syncWakeLockCmd()
}

func (m Model) handleSkip() (Model, tea.Cmd) {
	s := m.engine.Snapshot()
	elapsed := s.DurationFor(s.Mode) - s.Remaining
	m.engine.Skip()
	m.stopTicks()
	m.log.Add(s.Mode, elapsed, report.OutcomeSkipped)
	util.LogEvent("interval skipped", "mode", s.Mode, "elapsed", elapsed)
	if m.engine.Mode() == timer.ModeBreak {
		m.Message = "Skipped to break."
	} else {
		m.Message = "Skipped to focus."
	}
	return m, m.syncWakeLockCmd()
}

func (m Model) handleFullscreen() (Model, tea.Cmd) {
	return m, m.fullscreen.Toggle()
}

func (m Model) handleHelpToggle() (Model, tea.Cmd) {
	m.help.ShowAll = !m.help.ShowAll
	return m, nil
}

func (m Model) handleQuit() (Model, tea.Cmd) {
	m.quitting = true
	m.stopTicks()
	return m, tea.Quit
}

func (m Model) handleOpenSettings() (Model, tea.Cmd) {
	cmd := m.settings.Open(m.showIcons)
	return m, cmd
}

// updateSettings routes keys while the settings panel has focus. Global
// bindings are disabled so typing "r" or "s" edits a field instead.
func (m Model) updateSettings(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.settings.Close()
		return m, nil
	case "enter":
		return m.applySettings()
	case "tab", "down":
		return m, m.settings.Next()
	case "shift+tab", "up":
		return m, m.settings.Prev()
	case " ", "x":
		if m.settings.Cursor() == fieldIcons {
			m.settings.ToggleIcons()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)
	return m, cmd
}

func (m Model) applySettings() (Model, tea.Cmd) {
	focusText, breakText, icons := m.settings.Values()
	wasRunning := m.engine.Running()
	applied := m.engine.ApplySettings(focusText, breakText)
	m.stopTicks()
	m.showIcons = icons
	m.settings.Close()
	m.Message = fmt.Sprintf("Settings applied: focus %d min, break %d min.", applied.FocusMinutes, applied.BreakMinutes)
	util.LogEvent("settings applied", "focus_min", applied.FocusMinutes, "break_min", applied.BreakMinutes, "icons", icons)

	prefs := store.Preferences{
		FocusMinutes: applied.FocusMinutes,
		BreakMinutes: applied.BreakMinutes,
		ShowIcons:    icons,
	}
	cmds := []tea.Cmd{m.saveSettingsCmd(prefs)}
	if wasRunning {
		cmds = append(cmds, m.syncWakeLockCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleExport() (Model, tea.Cmd) {
	summary := m.log.Summary(m.engine.Snapshot())
	path := filepath.Join(m.reportsDir, report.FileName(summary))
	m.Message = "Exporting report..."
	return m, func() tea.Msg {
		return reportMsg{path: path, err: report.WritePDF(path, summary)}
	}
}
