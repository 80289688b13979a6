package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered section with a heading line.
type Panel struct {
	Title      string
	Content    string
	Style      lipgloss.Style
	TitleStyle lipgloss.Style
}

func (p Panel) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	frameW, frameH := p.Style.GetFrameSize()
	innerW := max(1, width-frameW)
	body := p.Content
	if strings.TrimSpace(p.Title) != "" {
		body = p.TitleStyle.Render(p.Title) + "\n" + body
	}
	lines := strings.Split(body, "\n")
	if maxLines := max(1, height-frameH); len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i := range lines {
		lines[i] = padRight(lines[i], innerW)
	}
	return p.Style.Render(strings.Join(lines, "\n"))
}
