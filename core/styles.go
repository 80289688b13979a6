package core

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	App       lipgloss.Style
	Header    lipgloss.Style
	Section   lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Button    lipgloss.Style
	ButtonOn  lipgloss.Style
	Danger    lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Footer    lipgloss.Style
	Key       lipgloss.Style
	HelpDesc  lipgloss.Style
	Panel     lipgloss.Style
	Popup     lipgloss.Style

	SurfaceColor lipgloss.Color
	MantleColor  lipgloss.Color
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	text := lipgloss.Color(t.Text)
	muted := lipgloss.Color(t.Muted)
	border := lipgloss.Color(t.Border)
	accent := lipgloss.Color(t.Accent)
	focus := lipgloss.Color(t.Focus)
	success := lipgloss.Color(t.Success)
	errColor := lipgloss.Color(t.Error)
	surface := lipgloss.Color(t.Surface)
	mantle := lipgloss.Color(t.Mantle)

	return Styles{
		App:     lipgloss.NewStyle().Foreground(text),
		Header:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Section: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(text).Bold(true),
		Focused: lipgloss.NewStyle().Foreground(focus).Bold(true),
		Value:   lipgloss.NewStyle().Foreground(text),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Error:   lipgloss.NewStyle().Foreground(errColor),
		Button: lipgloss.NewStyle().
			Foreground(text).
			Background(surface).
			Padding(0, 1),
		ButtonOn: lipgloss.NewStyle().
			Foreground(mantle).
			Background(accent).
			Bold(true).
			Padding(0, 1),
		Danger: lipgloss.NewStyle().Foreground(errColor),
		Status: lipgloss.NewStyle().
			Foreground(success).
			Background(surface),
		StatusErr: lipgloss.NewStyle().
			Foreground(errColor).
			Background(surface),
		Footer:   lipgloss.NewStyle().Background(mantle),
		Key:      lipgloss.NewStyle().Foreground(accent).Bold(true).Background(mantle),
		HelpDesc: lipgloss.NewStyle().Foreground(muted).Background(mantle),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focus).
			Padding(1, 2),

		SurfaceColor: surface,
		MantleColor:  mantle,
	}
}
