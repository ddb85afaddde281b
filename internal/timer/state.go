// Package timer implements the focus/break countdown state machine.
//
// An Engine owns a single State and mutates it only through its commands.
// It never schedules anything itself: the caller delivers one Tick per
// second while the engine is running and hands back the Transition returned
// by the tick that reached zero.
package timer

// Mode is the active interval kind.
type Mode int

const (
	ModeFocus Mode = iota
	ModeBreak
)

func (m Mode) String() string {
	if m == ModeBreak {
		return "break"
	}
	return "focus"
}

// Other returns the mode that follows m.
func (m Mode) Other() Mode {
	if m == ModeFocus {
		return ModeBreak
	}
	return ModeFocus
}

// State is a snapshot of the engine. Durations and counters are seconds.
type State struct {
	Mode            Mode
	Remaining       int
	Running         bool
	FocusDuration   int
	BreakDuration   int
	CompletedCycles int
	FocusSeconds    int
}

// DurationFor returns the configured length of mode in seconds.
func (s State) DurationFor(mode Mode) int {
	if mode == ModeBreak {
		return s.BreakDuration
	}
	return s.FocusDuration
}

// ProgressPercent is the elapsed share of the current interval, 0-100.
func (s State) ProgressPercent() float64 {
	total := s.DurationFor(s.Mode)
	if total <= 0 {
		return 0
	}
	return 100 * float64(total-s.Remaining) / float64(total)
}

// FocusMinutes is the accumulated focus time in whole minutes.
func (s State) FocusMinutes() int {
	return s.FocusSeconds / 60
}
