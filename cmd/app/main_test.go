package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/store"
	"github.com/spf13/cobra"
)

func parseFlags(t *testing.T, args ...string) (*rootOptions, *cobra.Command) {
	t.Helper()
	opts := &rootOptions{}
	cmd := newRootCommand(opts)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return opts, cmd
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "lexodoro dev" {
		t.Fatalf("version output = %q", got)
	}
}

func TestConfigInitWritesOnce(t *testing.T) {
	dir := t.TempDir()
	run := func() string {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"config", "init", "--config-dir", dir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		return out.String()
	}

	if got := run(); !strings.HasPrefix(got, "wrote ") {
		t.Fatalf("first run output = %q", got)
	}
	path := filepath.Join(dir, config.ConfigFileExt)
	if err := os.WriteFile(path, []byte("focus_minutes: 20\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := run(); !strings.HasPrefix(got, "config already exists") {
		t.Fatalf("second run output = %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "focus_minutes: 20\n" {
		t.Fatalf("config init overwrote an existing file")
	}
}

func TestApplyFlagsKeepsStoredWithoutFlags(t *testing.T) {
	opts, cmd := parseFlags(t)
	file := config.Defaults()
	file.Theme = "mono"
	stored := store.Preferences{FocusMinutes: 30, BreakMinutes: 7, ShowIcons: false}

	s, err := opts.applyFlags(cmd, file, stored)
	if err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if s.prefs != stored {
		t.Fatalf("prefs = %+v, want %+v", s.prefs, stored)
	}
	if s.theme != "mono" || s.fullscreen {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestApplyFlagsOverrideStored(t *testing.T) {
	opts, cmd := parseFlags(t, "--focus", "25", "--no-icons", "--theme", "neon", "--fullscreen")
	file := config.Defaults()
	file.Theme = "mono"
	stored := store.Preferences{FocusMinutes: 30, BreakMinutes: 7, ShowIcons: true}

	s, err := opts.applyFlags(cmd, file, stored)
	if err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	want := store.Preferences{FocusMinutes: 25, BreakMinutes: 7, ShowIcons: false}
	if s.prefs != want {
		t.Fatalf("prefs = %+v, want %+v", s.prefs, want)
	}
	if s.theme != "neon" || !s.fullscreen {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestApplyFlagsClampsDurations(t *testing.T) {
	opts, cmd := parseFlags(t, "--focus", "999", "--break", "0")
	s, err := opts.applyFlags(cmd, config.Defaults(), store.Preferences{FocusMinutes: 50, BreakMinutes: 10})
	if err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if s.prefs.FocusMinutes != 180 || s.prefs.BreakMinutes != 10 {
		t.Fatalf("prefs = %+v", s.prefs)
	}
}

func TestApplyFlagsRejectsUnknownTheme(t *testing.T) {
	opts, cmd := parseFlags(t, "--theme", "sepia")
	if _, err := opts.applyFlags(cmd, config.Defaults(), store.Preferences{}); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestFileDefaultsSanitizes(t *testing.T) {
	got := fileDefaults(config.File{FocusMinutes: 0, BreakMinutes: 500, ShowIcons: true})
	want := store.Preferences{FocusMinutes: 50, BreakMinutes: 90, ShowIcons: true}
	if got != want {
		t.Fatalf("fileDefaults = %+v, want %+v", got, want)
	}
}

func TestResolvePaths(t *testing.T) {
	opts := &rootOptions{}
	dataDir, logFile := opts.resolvePaths(config.File{DataDir: "/srv/lexo"})
	if dataDir != "/srv/lexo" || logFile != filepath.Join("/srv/lexo", config.LogFileName) {
		t.Fatalf("got %s %s", dataDir, logFile)
	}

	opts = &rootOptions{dataDir: "/tmp/flag", logFile: "/tmp/run.log"}
	dataDir, logFile = opts.resolvePaths(config.File{DataDir: "/srv/lexo", LogFile: "/srv/lexo.log"})
	if dataDir != "/tmp/flag" || logFile != "/tmp/run.log" {
		t.Fatalf("flags should win, got %s %s", dataDir, logFile)
	}
}

func TestRunRequiresTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config-dir", t.TempDir(), "--data-dir", t.TempDir()})
	if err := cmd.Execute(); !errors.Is(err, errNotTerminal) {
		t.Fatalf("expected errNotTerminal, got %v", err)
	}
}

func TestRunRejectsMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileExt), []byte("focus_minutes: [\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config-dir", dir})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "b", "c"); got != "b" {
		t.Fatalf("firstNonEmpty = %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("firstNonEmpty() = %q", got)
	}
}

func TestVersionLabelIncludesBuildInfo(t *testing.T) {
	origCommit, origTime := gitCommit, buildTime
	t.Cleanup(func() { gitCommit, buildTime = origCommit, origTime })

	gitCommit, buildTime = "abc123", "2026-01-02T03:04:05Z"
	if got := versionLabel(); got != "dev (abc123 2026-01-02T03:04:05Z)" {
		t.Fatalf("versionLabel() = %q", got)
	}
}
