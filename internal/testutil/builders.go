package testutil

import (
	"github.com/akyairhashvil/lexodoro/internal/report"
	"github.com/akyairhashvil/lexodoro/internal/timer"
)

// StateBuilder provides fluent API for creating timer snapshots.
type StateBuilder struct {
	state timer.State
}

// NewState starts from a paused focus interval with the default lengths.
func NewState() *StateBuilder {
	s := timer.DefaultSettings()
	return &StateBuilder{
		state: timer.State{
			Mode:          timer.ModeFocus,
			FocusDuration: s.FocusMinutes * 60,
			BreakDuration: s.BreakMinutes * 60,
			Remaining:     s.FocusMinutes * 60,
		},
	}
}

func (b *StateBuilder) WithMinutes(focus, brk int) *StateBuilder {
	b.state.FocusDuration = focus * 60
	b.state.BreakDuration = brk * 60
	b.state.Remaining = b.state.DurationFor(b.state.Mode)
	return b
}

// InBreak switches to a full break interval.
func (b *StateBuilder) InBreak() *StateBuilder {
	b.state.Mode = timer.ModeBreak
	b.state.Remaining = b.state.BreakDuration
	return b
}

func (b *StateBuilder) WithRemaining(seconds int) *StateBuilder {
	b.state.Remaining = seconds
	return b
}

func (b *StateBuilder) Running() *StateBuilder {
	b.state.Running = true
	return b
}

// WithCycles sets the completed cycle count and credits the matching focus
// time.
func (b *StateBuilder) WithCycles(n int) *StateBuilder {
	b.state.CompletedCycles = n
	b.state.FocusSeconds = n * b.state.FocusDuration
	return b
}

func (b *StateBuilder) Build() timer.State {
	return b.state
}

// Engine restores an engine from the built snapshot.
func (b *StateBuilder) Engine() *timer.Engine {
	return timer.Restore(b.state)
}

// LogBuilder fills a report log with finished intervals.
type LogBuilder struct {
	log *report.Log
}

func NewLog(log *report.Log) *LogBuilder {
	return &LogBuilder{log: log}
}

func (b *LogBuilder) Completed(mode timer.Mode, seconds int) *LogBuilder {
	b.log.Add(mode, seconds, report.OutcomeCompleted)
	return b
}

func (b *LogBuilder) Skipped(mode timer.Mode, seconds int) *LogBuilder {
	b.log.Add(mode, seconds, report.OutcomeSkipped)
	return b
}

func (b *LogBuilder) Build() *report.Log {
	return b.log
}
