package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name        string
	Base        lipgloss.Style
	Border      lipgloss.Color
	Title       lipgloss.Style
	TitleAccent lipgloss.Style
	Status      lipgloss.Style
	Focus       lipgloss.Style
	Break       lipgloss.Style
	Clock       lipgloss.Style
	Text        lipgloss.Style
	Dim         lipgloss.Style
	Button      lipgloss.Style
	ButtonHot   lipgloss.Style
	Message     lipgloss.Style
	Input       lipgloss.Style
	// FocusBar and BreakBar feed progress.WithSolidFill, which takes hex strings.
	FocusBar string
	BreakBar string
	EmptyBar string
	// Phases colors the LEX, PARSE, OPT and GEN cards in order.
	Phases [4]lipgloss.Style
}

var Themes = map[string]Theme{
	"neon": {
		Name:        "Neon",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("#00ffc8"),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("#e6edf3")).Bold(true),
		TitleAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffc8")).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e")),
		Focus:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffc8")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("#58a6ff")).Bold(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("#e6edf3")).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("#c9d1d9")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("#484f58")),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("#c9d1d9")).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#30363d")).Padding(0, 1),
		ButtonHot:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0d1117")).Background(lipgloss.Color("#00ffc8")).Bold(true).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#00ffc8")).Padding(0, 1),
		Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d2a8ff")).Italic(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#00ffc8")).Padding(0, 1),
		FocusBar:    "#3fb950",
		BreakBar:    "#58a6ff",
		EmptyBar:    "#30363d",
		Phases: [4]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("#7ee787")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#79c0ff")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#d2a8ff")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#ff7b72")).Bold(true),
		},
	},
	"mono": {
		Name:        "Mono",
		Base:        lipgloss.NewStyle().Margin(1, 2),
		Border:      lipgloss.Color("250"),
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		TitleAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focus:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Break:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
		Clock:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		ButtonHot:   lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("252")).Bold(true).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("252")).Padding(0, 1),
		Message:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
		Input:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		FocusBar:    "#e0e0e0",
		BreakBar:    "#9e9e9e",
		EmptyBar:    "#3a3a3a",
		Phases: [4]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		},
	},
}

// CurrentTheme holds the active theme. It starts as neon so rendering works
// before SetTheme is called.
var CurrentTheme = Themes["neon"]

// SetTheme switches the active theme. Unknown names leave it unchanged.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

// ThemeNames lists the registered themes for flag help.
func ThemeNames() []string {
	return []string{"neon", "mono"}
}
