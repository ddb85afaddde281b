package timer

import "fmt"

// Transition identifies a pending natural completion. The zero value means
// nothing is pending.
type Transition uint64

// Engine is the countdown state machine. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Engine struct {
	state   State
	pending Transition
	lastTag Transition
}

// New creates a paused engine in focus mode with a full interval.
func New(s Settings) *Engine {
	s = s.Sanitize()
	e := &Engine{state: State{
		Mode:          ModeFocus,
		FocusDuration: s.FocusMinutes * 60,
		BreakDuration: s.BreakMinutes * 60,
	}}
	e.state.Remaining = e.state.FocusDuration
	return e
}

// Restore builds an engine from a snapshot, clamping it back into a valid
// state. Durations outside the bounds are clamped; Remaining is clamped to
// the current interval. A zero Remaining while running is treated as a
// completed interval awaiting its transition.
func Restore(s State) *Engine {
	settings := Settings{FocusMinutes: s.FocusDuration / 60, BreakMinutes: s.BreakDuration / 60}.Sanitize()
	st := s
	st.FocusDuration = settings.FocusMinutes * 60
	st.BreakDuration = settings.BreakMinutes * 60
	if st.Mode != ModeBreak {
		st.Mode = ModeFocus
	}
	total := st.DurationFor(st.Mode)
	if st.Remaining < 0 {
		st.Remaining = 0
	}
	if st.Remaining > total {
		st.Remaining = total
	}
	if st.CompletedCycles < 0 {
		st.CompletedCycles = 0
	}
	if st.FocusSeconds < 0 {
		st.FocusSeconds = 0
	}
	e := &Engine{state: st}
	if st.Running && st.Remaining == 0 {
		e.arm()
	}
	return e
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State { return e.state }

func (e *Engine) Mode() Mode { return e.state.Mode }
func (e *Engine) Remaining() int { return e.state.Remaining }
func (e *Engine) Running() bool { return e.state.Running }
func (e *Engine) FocusDuration() int { return e.state.FocusDuration }
func (e *Engine) BreakDuration() int { return e.state.BreakDuration }
func (e *Engine) CompletedCycles() int { return e.state.CompletedCycles }
func (e *Engine) FocusSeconds() int { return e.state.FocusSeconds }
func (e *Engine) FocusMinutes() int { return e.state.FocusMinutes() }
func (e *Engine) Pending() Transition { return e.pending }
func (e *Engine) ActivePhase() (int, bool) { return e.state.ActivePhase() }

// Settings returns the configured durations in minutes.
func (e *Engine) Settings() Settings {
	return Settings{FocusMinutes: e.state.FocusDuration / 60, BreakMinutes: e.state.BreakDuration / 60}
}

// Clock renders the remaining time as MM:SS.
func (e *Engine) Clock() string {
	return FormatClock(e.state.Remaining)
}

// StatusText is the one-line status shown under the title.
func (e *Engine) StatusText() string {
	switch {
	case e.state.Mode == ModeBreak:
		return "BREAK MODE ACTIVE..."
	case e.state.Running:
		return "COMPILING FOCUS..."
	default:
		return "READY TO COMPILE..."
	}
}

// Start resumes the countdown. It does nothing when already running or when
// the interval has already reached zero.
func (e *Engine) Start() bool {
	if e.state.Running || e.state.Remaining == 0 {
		return false
	}
	e.state.Running = true
	return true
}

// Pause stops the countdown. A completion already pending is re-tagged so
// callbacks scheduled before the pause are ignored; the caller schedules the
// new tag from Pending.
func (e *Engine) Pause() {
	e.state.Running = false
	if e.pending != 0 {
		e.arm()
	}
}

// Toggle starts a paused engine and pauses a running one.
func (e *Engine) Toggle() {
	if e.state.Running {
		e.Pause()
		return
	}
	e.Start()
}

// Tick advances the countdown by one second. When the decrement reaches
// zero it returns the tag of the pending completion and true. Running stays
// true until Complete is called with that tag.
func (e *Engine) Tick() (Transition, bool) {
	if !e.state.Running || e.state.Remaining == 0 {
		return 0, false
	}
	e.state.Remaining--
	if e.state.Remaining > 0 {
		return 0, false
	}
	return e.arm(), true
}

// Complete applies the natural completion registered under tag. Stale or
// unknown tags are ignored and false is returned.
func (e *Engine) Complete(tag Transition) bool {
	if tag == 0 || tag != e.pending {
		return false
	}
	e.pending = 0
	if e.state.Mode == ModeFocus {
		e.state.CompletedCycles++
		e.state.FocusSeconds += e.state.FocusDuration
	}
	e.state.Running = false
	e.switchMode(e.state.Mode.Other())
	return true
}

// Reset stops the countdown and refills the current interval.
func (e *Engine) Reset() {
	e.pending = 0
	e.state.Running = false
	e.state.Remaining = e.state.DurationFor(e.state.Mode)
}

// Skip stops the countdown and moves to the other mode without touching the
// statistics.
func (e *Engine) Skip() {
	e.pending = 0
	e.state.Running = false
	e.switchMode(e.state.Mode.Other())
}

// ApplySettings sanitizes the two free-text fields, stores the resulting
// durations, stops the countdown and refills the current interval with its
// new length.
func (e *Engine) ApplySettings(focusText, breakText string) Settings {
	s := ParseSettings(focusText, breakText)
	e.SetSettings(s)
	return s
}

// SetSettings is ApplySettings for already numeric input.
func (e *Engine) SetSettings(s Settings) {
	s = s.Sanitize()
	e.pending = 0
	e.state.FocusDuration = s.FocusMinutes * 60
	e.state.BreakDuration = s.BreakMinutes * 60
	e.state.Running = false
	e.state.Remaining = e.state.DurationFor(e.state.Mode)
}

func (e *Engine) switchMode(next Mode) {
	e.state.Mode = next
	e.state.Remaining = e.state.DurationFor(next)
}

func (e *Engine) arm() Transition {
	e.lastTag++
	e.pending = e.lastTag
	return e.pending
}

func (e *Engine) String() string {
	return fmt.Sprintf("%s %s running=%t cycles=%d", e.state.Mode, e.Clock(), e.state.Running, e.state.CompletedCycles)
}
