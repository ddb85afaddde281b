package tui

import (
	"strconv"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type settingsField int

const (
	fieldFocus settingsField = iota
	fieldBreak
	fieldIcons
	fieldCount
)

// SettingsPanel holds the draft values for the duration fields and the icon
// toggle. Drafts are free text; nothing reaches the engine until Values is
// read on apply. Closing the panel keeps the drafts.
type SettingsPanel struct {
	open      bool
	cursor    settingsField
	focusIn   textinput.Model
	breakIn   textinput.Model
	showIcons bool
}

func newMinutesInput(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = config.MaxMinutesInputLength
	ti.Width = config.MaxMinutesInputLength + 1
	ti.SetValue(strconv.Itoa(value))
	return ti
}

func newSettingsPanel(s timer.Settings, showIcons bool) SettingsPanel {
	return SettingsPanel{
		focusIn:   newMinutesInput(strconv.Itoa(config.DefaultFocusMinutes), s.FocusMinutes),
		breakIn:   newMinutesInput(strconv.Itoa(config.DefaultBreakMinutes), s.BreakMinutes),
		showIcons: showIcons,
	}
}

func (p SettingsPanel) IsOpen() bool { return p.open }

func (p SettingsPanel) Cursor() settingsField { return p.cursor }

// Open shows the panel with the cursor on the focus field. The icon toggle
// is synced to the live value since it has no free-text draft.
func (p *SettingsPanel) Open(showIcons bool) tea.Cmd {
	p.open = true
	p.showIcons = showIcons
	p.cursor = fieldFocus
	return p.focusCursor()
}

func (p *SettingsPanel) Close() {
	p.open = false
	p.focusIn.Blur()
	p.breakIn.Blur()
}

// Values returns the raw drafts; parsing happens in the engine.
func (p SettingsPanel) Values() (focusText, breakText string, showIcons bool) {
	return p.focusIn.Value(), p.breakIn.Value(), p.showIcons
}

// SetDrafts replaces both text drafts.
func (p *SettingsPanel) SetDrafts(focusText, breakText string) {
	p.focusIn.SetValue(focusText)
	p.breakIn.SetValue(breakText)
}

func (p *SettingsPanel) Next() tea.Cmd {
	p.cursor = (p.cursor + 1) % fieldCount
	return p.focusCursor()
}

func (p *SettingsPanel) Prev() tea.Cmd {
	p.cursor = (p.cursor + fieldCount - 1) % fieldCount
	return p.focusCursor()
}

func (p *SettingsPanel) ToggleIcons() {
	p.showIcons = !p.showIcons
}

func (p *SettingsPanel) focusCursor() tea.Cmd {
	p.focusIn.Blur()
	p.breakIn.Blur()
	switch p.cursor {
	case fieldFocus:
		return p.focusIn.Focus()
	case fieldBreak:
		return p.breakIn.Focus()
	}
	return nil
}

// Update forwards a key to the text field under the cursor.
func (p SettingsPanel) Update(msg tea.Msg) (SettingsPanel, tea.Cmd) {
	var cmd tea.Cmd
	switch p.cursor {
	case fieldFocus:
		p.focusIn, cmd = p.focusIn.Update(msg)
	case fieldBreak:
		p.breakIn, cmd = p.breakIn.Update(msg)
	}
	return p, cmd
}
