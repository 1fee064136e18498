package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	PaneTitle lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Focus     lipgloss.Style
	Break     lipgloss.Style
	Input     lipgloss.Style
	Class     lipgloss.Style
	Lift      lipgloss.Style
	Practice  lipgloss.Style
	Match     lipgloss.Style
	Study     lipgloss.Style
	Recovery  lipgloss.Style
	Other     lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		PaneTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Focus:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Class:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Lift:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Practice:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Study:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Recovery:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Other:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"varsity": {
		Name:      "Varsity",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("94"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Align(lipgloss.Center),
		PaneTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("94")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("102")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Focus:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220")).Padding(0, 1).Width(50),
		Class:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		Lift:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Practice:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Match:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Study:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Recovery:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Other:     lipgloss.NewStyle().Foreground(lipgloss.Color("144")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("102")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	},
}

// ThemeOrder lists the selectable themes in cycle order.
var ThemeOrder = []string{"default", "varsity"}

func themeOr(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
