package config

import "time"

// Interval defaults, in minutes.
const (
	DefaultFocusMinutes = 50
	DefaultBreakMinutes = 10
)

// Interval bounds, in minutes.
const (
	MinFocusMinutes = 1
	MaxFocusMinutes = 180
	MinBreakMinutes = 1
	MaxBreakMinutes = 90
)

// Scheduling.
const (
	TickInterval    = time.Second
	WakeLockTimeout = 2 * time.Second
	StoreTimeout    = 3 * time.Second
)

// Application settings.
const (
	AppName        = "lexodoro"
	StoreFileName  = "lexodoro.db"
	LogFileName    = "lexodoro.log"
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	ConfigFileExt  = "config.yaml"
	EnvPrefix      = "LEXODORO"
	DefaultTheme   = "neon"
)
