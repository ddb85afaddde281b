// Package store persists user preferences (interval lengths and display
// flags). Timer state and statistics are never stored.
package store

import "context"

// Setting keys.
const (
	KeyFocusMinutes = "focus_minutes"
	KeyBreakMinutes = "break_minutes"
	KeyShowIcons    = "show_icons"
)

// Preferences are the values edited in the settings panel.
type Preferences struct {
	FocusMinutes int
	BreakMinutes int
	ShowIcons    bool
}

// PreferenceStore loads and saves Preferences.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_store_test.go -package=tui
type PreferenceStore interface {
	// LoadPreferences returns the stored preferences, taking any key that
	// was never saved from defaults.
	LoadPreferences(ctx context.Context, defaults Preferences) (Preferences, error)
	SavePreferences(ctx context.Context, p Preferences) error
}

var (
	_ PreferenceStore = (*SQLite)(nil)
	_ PreferenceStore = (*Memory)(nil)
)
