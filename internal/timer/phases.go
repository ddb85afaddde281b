package timer

import "math"

// Phase is one cosmetic quartile of a focus interval.
type Phase struct {
	Name        string
	FullName    string
	Description string
}

// Phases lists the four quartiles in order.
var Phases = [...]Phase{
	{Name: "LEX", FullName: "Lexer", Description: "Tokenizing source code"},
	{Name: "PARSE", FullName: "Parser", Description: "Building abstract syntax tree"},
	{Name: "OPT", FullName: "Optimizer", Description: "Optimizing intermediate code"},
	{Name: "GEN", FullName: "Code Generator", Description: "Generating target machine code"},
}

// PhaseIndexFor maps a progress percentage onto a quartile, clamped to the
// last phase at 100%.
func PhaseIndexFor(progress float64) int {
	if progress <= 0 || math.IsNaN(progress) {
		return 0
	}
	idx := int(math.Floor(progress / 25))
	if idx > len(Phases)-1 {
		return len(Phases) - 1
	}
	return idx
}

// PhaseIndex returns the quartile of the current interval regardless of mode.
func (s State) PhaseIndex() int {
	return PhaseIndexFor(s.ProgressPercent())
}

// ActivePhase returns the quartile index and true during a focus interval.
// No phase is active during a break.
func (s State) ActivePhase() (int, bool) {
	if s.Mode != ModeFocus {
		return 0, false
	}
	return s.PhaseIndex(), true
}
