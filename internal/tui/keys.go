package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func wrap(fn func(Model) (Model, tea.Cmd)) KeyHandler {
	return func(m Model) (Model, tea.Cmd, bool) {
		next, cmd := fn(m)
		return next, cmd, true
	}
}

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Handler: wrap(Model.handleToggle),
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "reset")),
		Handler: wrap(Model.handleReset),
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", "skip mode")),
		Handler: wrap(Model.handleSkip),
	})
	r.Register(KeyBinding{
		Binding: key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("f", "fullscreen")),
		Handler: wrap(Model.handleFullscreen),
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
		Handler:  wrap(Model.handleOpenSettings),
		FullOnly: true,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "export report")),
		Handler:  wrap(Model.handleExport),
		FullOnly: true,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Handler:  wrap(Model.handleHelpToggle),
		FullOnly: true,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Handler:  wrap(Model.handleQuit),
		Priority: 10,
		FullOnly: true,
	})
	return r
}
