package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderFooter draws the help line for the bindings visible in scope.
func RenderFooter(reg *KeyRegistry, scope string, width int, st Styles) string {
	bg := st.MantleColor
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	var parts []string
	if reg != nil {
		for _, kb := range reg.HelpBindings(scope) {
			h := kb.Help()
			parts = append(parts, st.Key.Render(h.Key)+space+st.HelpDesc.Render(h.Desc))
		}
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = st.HelpDesc.Render("No shortcuts")
	}
	return renderBar(st.Footer, max(1, width), line, bg)
}

func RenderStatusBar(text string, isErr bool, width int, st Styles) string {
	msg := strings.TrimSpace(text)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(st.StatusErr, max(1, width), msg, st.SurfaceColor)
	}
	return renderBar(st.Status, max(1, width), msg, st.SurfaceColor)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
