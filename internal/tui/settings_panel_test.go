package tui

import (
	"testing"

	"github.com/akyairhashvil/lexodoro/internal/timer"
)

func TestSettingsPanelCursorCycles(t *testing.T) {
	p := newSettingsPanel(timer.DefaultSettings(), true)
	p.Open(true)
	if p.Cursor() != fieldFocus || !p.focusIn.Focused() {
		t.Fatalf("expected focus field active on open")
	}
	p.Next()
	if p.Cursor() != fieldBreak || !p.breakIn.Focused() || p.focusIn.Focused() {
		t.Fatalf("expected break field active")
	}
	p.Next()
	if p.Cursor() != fieldIcons || p.breakIn.Focused() {
		t.Fatalf("expected icon toggle active")
	}
	p.Next()
	if p.Cursor() != fieldFocus {
		t.Fatalf("expected cursor to wrap, got %d", p.Cursor())
	}
	p.Prev()
	if p.Cursor() != fieldIcons {
		t.Fatalf("expected cursor to wrap backwards, got %d", p.Cursor())
	}
}

func TestSettingsPanelOpenSyncsIcons(t *testing.T) {
	p := newSettingsPanel(timer.DefaultSettings(), true)
	p.ToggleIcons()
	p.Close()
	p.Open(true)
	if _, _, icons := p.Values(); !icons {
		t.Fatalf("open should reload the live icon flag")
	}
}

func TestSettingsPanelCharLimit(t *testing.T) {
	p := newSettingsPanel(timer.DefaultSettings(), true)
	p.Open(true)
	for _, r := range "123456789" {
		p, _ = p.Update(keyMsg(string(r)))
	}
	focusText, _, _ := p.Values()
	if focusText != "501234" {
		t.Fatalf("focus draft = %q", focusText)
	}
}

func TestSettingsPanelIgnoresKeysOnToggle(t *testing.T) {
	p := newSettingsPanel(timer.DefaultSettings(), true)
	p.Open(true)
	p.Next()
	p.Next()
	p, _ = p.Update(keyMsg("9"))
	focusText, breakText, _ := p.Values()
	if focusText != "50" || breakText != "10" {
		t.Fatalf("drafts changed on toggle row: %q %q", focusText, breakText)
	}
}
