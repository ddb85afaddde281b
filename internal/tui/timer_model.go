package tui

import (
	"time"

	"github.com/akyairhashvil/lexodoro/internal/report"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/akyairhashvil/lexodoro/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one second of countdown. Seq ties it to the tick source that
// scheduled it; ticks from an older source are dropped.
type TickMsg struct {
	Seq  int
	Time time.Time
}

// CompleteMsg carries the deferred natural completion scheduled by the tick
// that reached zero.
type CompleteMsg struct {
	Tag timer.Transition
}

func (m Model) tickCmd() tea.Cmd {
	seq := m.tickSeq
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}

func completeCmd(tag timer.Transition) tea.Cmd {
	return func() tea.Msg {
		return CompleteMsg{Tag: tag}
	}
}

// stopTicks invalidates every scheduled tick.
func (m *Model) stopTicks() {
	m.tickSeq++
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.Seq != m.tickSeq || !m.engine.Running() {
		return m, nil
	}
	if tag, done := m.engine.Tick(); done {
		// Render 00:00 first; the transition lands on the next turn.
		return m, completeCmd(tag)
	}
	return m, m.tickCmd()
}

func (m Model) handleComplete(msg CompleteMsg) (Model, tea.Cmd) {
	finished := m.engine.Mode()
	length := m.engine.Snapshot().DurationFor(finished)
	if !m.engine.Complete(msg.Tag) {
		return m, nil
	}
	m.stopTicks()
	m.log.Add(finished, length, report.OutcomeCompleted)
	util.LogEvent("interval completed", "mode", finished, "seconds", length, "cycles", m.engine.CompletedCycles())
	if finished == timer.ModeFocus {
		m.Message = "Build succeeded. Break queued."
	} else {
		m.Message = "Break over. Ready to compile."
	}
	return m, m.syncWakeLockCmd()
}
