package platform

import tea "github.com/charmbracelet/bubbletea"

// Fullscreen switches the view between inline and full-screen rendering.
// The methods return the program command that performs the switch.
type Fullscreen interface {
	Enter() tea.Cmd
	Exit() tea.Cmd
	Toggle() tea.Cmd
	IsActive() bool
}

// AltScreen maps fullscreen onto the terminal alternate screen buffer.
type AltScreen struct {
	active bool
}

// NewAltScreen reports active when the program was started with
// tea.WithAltScreen.
func NewAltScreen(active bool) *AltScreen {
	return &AltScreen{active: active}
}

func (a *AltScreen) Enter() tea.Cmd {
	if a.active {
		return nil
	}
	a.active = true
	return tea.EnterAltScreen
}

func (a *AltScreen) Exit() tea.Cmd {
	if !a.active {
		return nil
	}
	a.active = false
	return tea.ExitAltScreen
}

func (a *AltScreen) Toggle() tea.Cmd {
	if a.active {
		return a.Exit()
	}
	return a.Enter()
}

func (a *AltScreen) IsActive() bool { return a.active }
