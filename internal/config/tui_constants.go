package config

// Layout constants.
const (
	// CardWidth is the preferred width of the timer card.
	CardWidth = 64

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ProgressWidth is the preferred width of the progress bar.
	ProgressWidth = 52

	// MinProgressWidth is the narrowest progress bar we draw.
	MinProgressWidth = 10

	// PhaseCardWidth is the width of one card in the phases grid.
	PhaseCardWidth = 14

	// SettingsPanelWidth is the width of the settings overlay.
	SettingsPanelWidth = 34
)

// Input constraints.
const (
	// MaxMinutesInputLength limits the settings minute fields.
	MaxMinutesInputLength = 6
)

// Display.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
