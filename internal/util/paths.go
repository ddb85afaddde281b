package util

import (
	"os"
	"path/filepath"
	"strings"
)

// xdgBase returns $env when set, else ~/<fallback...>. Without a home
// directory it falls back to the working directory.
func xdgBase(env string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// DataDir is where the settings database and log live.
func DataDir(app string) string {
	return filepath.Join(xdgBase("XDG_DATA_HOME", ".local", "share"), app)
}

// ConfigDir is where config.yaml lives.
func ConfigDir(app string) string {
	return filepath.Join(xdgBase("XDG_CONFIG_HOME", ".config"), app)
}

// ReportsDir is where exported session reports are written.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app, "reports")
}

// DocumentsDir resolves the user's documents folder from XDG_DOCUMENTS_DIR,
// then user-dirs.dirs, then ~/Documents.
func DocumentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir)
	}
	userDirs := filepath.Join(xdgBase("XDG_CONFIG_HOME", ".config"), "user-dirs.dirs")
	if data, err := os.ReadFile(userDirs); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return xdgBase("", "Documents")
}

// parseUserDir reads KEY="value" from a user-dirs.dirs file.
func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}

// expandHome replaces $HOME and a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") && !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if strings.HasPrefix(path, "~") {
		path = home + strings.TrimPrefix(path, "~")
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
