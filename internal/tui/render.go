package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/lexodoro/internal/config"
	"github.com/akyairhashvil/lexodoro/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	sections := []string{
		m.renderHeader(),
		m.renderCard(),
		m.renderPhases(),
		m.renderFooter(),
	}
	if m.settings.IsOpen() {
		sections = append(sections, m.renderSettings())
	}
	sections = append(sections, m.help.View(m.keys))
	body := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.fullscreen.IsActive() && m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return CurrentTheme.Base.Render(body)
}

func (m Model) cardWidth() int {
	if m.width > 0 && m.width < config.CompactModeThreshold+4 {
		return max(m.width-4, config.MinProgressWidth+4)
	}
	return config.CardWidth
}

func (m Model) compact() bool {
	return m.width > 0 && m.width < config.CompactModeThreshold
}

func (m Model) modeStyle() lipgloss.Style {
	if m.engine.Mode() == timer.ModeBreak {
		return CurrentTheme.Break
	}
	return CurrentTheme.Focus
}

func (m Model) renderHeader() string {
	theme := CurrentTheme
	title := theme.TitleAccent.Render("<Lexodoro/>")
	status := theme.Status.Render(m.engine.StatusText())
	return lipgloss.JoinVertical(lipgloss.Center, title, status, "")
}

func (m Model) renderCard() string {
	theme := CurrentTheme
	width := m.cardWidth()
	inner := width - 4
	state := m.engine.Snapshot()
	phase := timer.Phases[state.PhaseIndex()]

	modeLabel := "▶ COMPILE_MODE"
	if state.Mode == timer.ModeBreak {
		modeLabel = "▶ BREAK_MODE"
	}
	top := spread(m.modeStyle().Render(modeLabel), theme.Dim.Render("PHASE: "+phase.Name), inner)

	clock := m.modeStyle().Render(m.engine.Clock() + clockCursor(state.Remaining, state.Running))
	desc := theme.Dim.Render(truncate(phase.Description, inner))

	bar := m.progress
	bar.Width = min(bar.Width, inner)
	if state.Mode == timer.ModeBreak {
		bar.FullColor = theme.BreakBar
	} else {
		bar.FullColor = theme.FocusBar
	}
	progressLine := bar.ViewAs(state.ProgressPercent() / 100)

	lines := []string{
		top,
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, clock),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, desc),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, progressLine),
		"",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.renderButtons()),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, m.renderHints()),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderButtons() string {
	theme := CurrentTheme
	run := theme.ButtonHot.Render(buttonLabel("▶", "RUN", m.showIcons))
	if m.engine.Running() {
		run = theme.Button.Render(buttonLabel("■", "PAUSE", m.showIcons))
	}
	reset := theme.Button.Render(buttonLabel("↺", "RESET", m.showIcons))
	skip := theme.Button.Render(buttonLabel("⏭", "SKIP", m.showIcons))
	if m.compact() {
		return lipgloss.JoinVertical(lipgloss.Center, run, reset, skip)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, run, " ", reset, " ", skip)
}

func (m Model) renderHints() string {
	theme := CurrentTheme
	hint := func(k, desc string) string {
		return theme.Text.Render(k) + " " + theme.Dim.Render(desc)
	}
	return strings.Join([]string{
		hint("SPACE", "start/pause"),
		hint("R", "reset"),
		hint("S", "skip mode"),
	}, "   ")
}

func (m Model) renderPhases() string {
	theme := CurrentTheme
	active, focusing := m.engine.ActivePhase()
	cards := make([]string, 0, len(timer.Phases))
	for i, p := range timer.Phases {
		lit := focusing && i <= active
		nameStyle, textStyle := theme.Dim, theme.Dim
		border := lipgloss.Color(theme.EmptyBar)
		if lit {
			nameStyle = theme.Phases[i]
			textStyle = theme.Text
			border = theme.Border
		}
		marker := " "
		if focusing && i == active {
			marker = nameStyle.Render("●")
		}
		body := strings.Join([]string{
			textStyle.Render(fmt.Sprintf("PHASE %d", i+1)),
			nameStyle.Render(p.Name),
			textStyle.Render(truncate(p.FullName, config.PhaseCardWidth)),
			marker,
		}, "\n")
		cards = append(cards, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(config.PhaseCardWidth).
			Align(lipgloss.Center).
			Render(body))
	}
	if m.compact() {
		top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
		return lipgloss.JoinVertical(lipgloss.Center, top, bottom)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderFooter() string {
	theme := CurrentTheme
	session := "COMPILING"
	if m.engine.Mode() == timer.ModeBreak {
		session = "BREAKING"
	}
	stat := func(label string, style lipgloss.Style, value string) string {
		return style.Render(label) + " " + theme.Text.Render(value)
	}
	stats := strings.Join([]string{
		stat("session", theme.Phases[2], session),
		stat("cycles", theme.Phases[1], fmt.Sprintf("%d", m.engine.CompletedCycles())),
		stat("focus_min", theme.Phases[0], fmt.Sprintf("%d", m.engine.FocusMinutes())),
	}, "    ")
	lines := []string{"", stats}
	if m.Message != "" {
		lines = append(lines, theme.Message.Render(truncate(m.Message, m.cardWidth())))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) renderSettings() string {
	theme := CurrentTheme
	p := m.settings
	label := func(field settingsField, text string) string {
		if p.cursor == field {
			return m.modeStyle().Render("> " + text)
		}
		return theme.Dim.Render("  " + text)
	}
	check := "[ ]"
	if p.showIcons {
		check = "[x]"
	}
	lines := []string{
		theme.Dim.Render("SETTINGS"),
		"",
		label(fieldFocus, "FOCUS MINUTES"),
		"  " + p.focusIn.View(),
		label(fieldBreak, "BREAK MINUTES"),
		"  " + p.breakIn.View(),
		label(fieldIcons, check+" show button icons"),
		"",
		theme.Dim.Render("enter apply · esc close · tab next"),
	}
	return theme.Input.Width(config.SettingsPanelWidth).Render(strings.Join(lines, "\n"))
}
