// Package theme holds the lipgloss styles shared by the edit box widget
// and the demo form.
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name string

	AppFrame     lipgloss.Style
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusValue  lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style

	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputSelection   lipgloss.Style
	InputSuffix      lipgloss.Style
	InputPrompt      lipgloss.Style
}

func Default() Theme {
	border := lipgloss.RoundedBorder()
	return Theme{
		Name:         "default",
		AppFrame:     lipgloss.NewStyle().Padding(1, 2),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		LabelFocused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Field: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("238")),
		FieldFocused: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("212")),
		StatusBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusKey:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		StatusValue: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		InputText:        lipgloss.NewStyle(),
		InputPlaceholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		InputSelection:   lipgloss.NewStyle().Background(lipgloss.Color("#4C3F72")),
		InputSuffix:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		InputPrompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

func Light() Theme {
	th := Default()
	th.Name = "light"
	th.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25"))
	th.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	th.LabelFocused = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("162"))
	th.FieldFocused = th.FieldFocused.BorderForeground(lipgloss.Color("162"))
	th.StatusValue = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	th.InputPlaceholder = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	th.InputSelection = lipgloss.NewStyle().Background(lipgloss.Color("153"))
	return th
}

// Load resolves a theme by name, falling back to the default for names it
// does not know. Unknown names are not an error so a stale settings file
// cannot break startup.
func Load(name string) Theme {
	switch name {
	case "", "default":
		return Default()
	case "light":
		return Light()
	default:
		return Default()
	}
}
