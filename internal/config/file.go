package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/lexodoro/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config keys, shared by config.yaml and LEXODORO_* environment variables.
const (
	KeyFocusMinutes = "focus_minutes"
	KeyBreakMinutes = "break_minutes"
	KeyTheme        = "theme"
	KeyShowIcons    = "show_icons"
	KeyFullscreen   = "fullscreen"
	KeyDataDir      = "data_dir"
	KeyLogFile      = "log_file"
)

// File is the decoded config.yaml.
type File struct {
	FocusMinutes int    `mapstructure:"focus_minutes" yaml:"focus_minutes"`
	BreakMinutes int    `mapstructure:"break_minutes" yaml:"break_minutes"`
	Theme        string `mapstructure:"theme" yaml:"theme"`
	ShowIcons    bool   `mapstructure:"show_icons" yaml:"show_icons"`
	Fullscreen   bool   `mapstructure:"fullscreen" yaml:"fullscreen"`
	DataDir      string `mapstructure:"data_dir" yaml:"data_dir,omitempty"`
	LogFile      string `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() File {
	return File{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
		Theme:        DefaultTheme,
		ShowIcons:    true,
	}
}

const defaultHeader = `# Lexodoro configuration
# Durations are minutes: focus 1-180, break 1-90.
# Values changed in the settings panel are stored in the data directory
# and take precedence over this file.
`

// DefaultYAML renders the default config.yaml.
func DefaultYAML() ([]byte, error) {
	body, err := yaml.Marshal(Defaults())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}
	return append([]byte(defaultHeader), body...), nil
}

// ResolveConfigDir picks the configuration directory:
// flag > LEXODORO_CONFIG_DIR > $XDG_CONFIG_HOME/lexodoro.
func ResolveConfigDir(flag string) string {
	if dir := strings.TrimSpace(flag); dir != "" {
		return dir
	}
	if dir := strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG_DIR")); dir != "" {
		return dir
	}
	return util.ConfigDir(AppName)
}

// Load reads config.yaml from dir. A missing file yields Defaults.
func Load(dir string) (File, error) {
	v := viper.New()
	def := Defaults()
	v.SetDefault(KeyFocusMinutes, def.FocusMinutes)
	v.SetDefault(KeyBreakMinutes, def.BreakMinutes)
	v.SetDefault(KeyTheme, def.Theme)
	v.SetDefault(KeyShowIcons, def.ShowIcons)
	v.SetDefault(KeyFullscreen, def.Fullscreen)
	v.SetDefault(KeyDataDir, "")
	v.SetDefault(KeyLogFile, "")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return File{}, fmt.Errorf("read config: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	return f, nil
}

// WriteDefault creates dir/config.yaml unless it already exists and
// returns its path.
func WriteDefault(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure config dir: %w", err)
	}
	path := filepath.Join(dir, ConfigFileExt)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat config file: %w", err)
	}
	data, err := DefaultYAML()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}
