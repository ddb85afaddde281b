package tui

import (
	"strings"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// buttonLabel prefixes text with icon when icons are enabled.
func buttonLabel(icon, text string, showIcons bool) string {
	if !showIcons {
		return text
	}
	return icon + " " + text
}

// truncate cuts s to width display cells, keeping ANSI styling intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// spread places left and right at the edges of a line of width cells.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// clockCursor is the blinking underscore after the clock. It blinks once a
// second while running and stays lit while paused.
func clockCursor(remaining int, running bool) string {
	if running && remaining%2 == 1 {
		return " "
	}
	return "_"
}
