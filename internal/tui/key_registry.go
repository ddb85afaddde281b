package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs a bound action. Returning false lets lower priority
// bindings for the same key try.
type KeyHandler func(m Model) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
	// FullOnly hides the binding from the short help line.
	FullOnly bool
}

// HandlerRegistry dispatches keys by priority and lists them for help in
// registration order.
type HandlerRegistry struct {
	bindings []KeyBinding
	dispatch []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	r.dispatch = append([]KeyBinding(nil), r.bindings...)
	sort.SliceStable(r.dispatch, func(i, j int) bool {
		return r.dispatch[i].Priority > r.dispatch[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	for _, b := range r.dispatch {
		if !b.Binding.Enabled() || !key.Matches(msg, b.Binding) {
			continue
		}
		next, cmd, handled := b.Handler(m)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

// ShortHelp implements help.KeyMap.
func (r *HandlerRegistry) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range r.bindings {
		if !b.FullOnly {
			out = append(out, b.Binding)
		}
	}
	return out
}

// FullHelp implements help.KeyMap: timer controls first, then the rest.
func (r *HandlerRegistry) FullHelp() [][]key.Binding {
	var short, rest []key.Binding
	for _, b := range r.bindings {
		if b.FullOnly {
			rest = append(rest, b.Binding)
		} else {
			short = append(short, b.Binding)
		}
	}
	return [][]key.Binding{short, rest}
}
