package timer

import (
	"math"
	"strconv"
	"strings"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/util"
)

// Settings are interval lengths in minutes.
type Settings struct {
	FocusMinutes int
	BreakMinutes int
}

// DefaultSettings returns the built-in 50/10 cadence.
func DefaultSettings() Settings {
	return Settings{FocusMinutes: config.DefaultFocusMinutes, BreakMinutes: config.DefaultBreakMinutes}
}

// Sanitize replaces zero values with the defaults and clamps to bounds.
func (s Settings) Sanitize() Settings {
	return Settings{
		FocusMinutes: sanitizeMinutes(s.FocusMinutes, config.DefaultFocusMinutes, config.MinFocusMinutes, config.MaxFocusMinutes),
		BreakMinutes: sanitizeMinutes(s.BreakMinutes, config.DefaultBreakMinutes, config.MinBreakMinutes, config.MaxBreakMinutes),
	}
}

// ParseSettings turns the two free-text settings fields into bounded
// settings. It never fails.
func ParseSettings(focusText, breakText string) Settings {
	return Settings{
		FocusMinutes: ParseMinutes(focusText, config.DefaultFocusMinutes, config.MinFocusMinutes, config.MaxFocusMinutes),
		BreakMinutes: ParseMinutes(breakText, config.DefaultBreakMinutes, config.MinBreakMinutes, config.MaxBreakMinutes),
	}
}

// ParseMinutes reads the leading integer of text ("25min" is 25). Empty,
// non-numeric or zero input yields fallback; the result is clamped to
// [min, max].
func ParseMinutes(text string, fallback, min, max int) int {
	n, ok := leadingInt(text)
	if !ok {
		n = 0
	}
	return sanitizeMinutes(n, fallback, min, max)
}

func sanitizeMinutes(n, fallback, min, max int) int {
	if n == 0 {
		n = fallback
	}
	return util.Clamp(n, min, max)
}

func leadingInt(text string) (int, bool) {
	s := strings.TrimSpace(text)
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow gets here; it clamps like any large value.
		return sign * math.MaxInt32, true
	}
	return sign * n, true
}
