package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwantia/webterm/render"
)

// Theme holds the lipgloss styles used by the terminal view.
type Theme struct {
	TitleStyle     lipgloss.Style
	PromptStyle    lipgloss.Style
	StatusBarStyle lipgloss.Style
	HelpStyle      lipgloss.Style

	PlainStyle      lipgloss.Style
	DirectoryStyle  lipgloss.Style
	ExecutableStyle lipgloss.Style
	ErrorStyle      lipgloss.Style
	MutedStyle      lipgloss.Style
	AccentStyle     lipgloss.Style
	LinkStyle       lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		PromptStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")),
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0")).
			Background(lipgloss.Color("#303030")).
			Padding(0, 1),
		HelpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),

		PlainStyle: lipgloss.NewStyle(),
		DirectoryStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5F87FF")),
		ExecutableStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		ErrorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")),
		MutedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")),
		AccentStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFAF00")),
		LinkStyle: lipgloss.NewStyle().
			Underline(true),
	}
}

// Span returns the style for a span. Links are underlined on top of their
// base style.
func (t *Theme) Span(span render.Span) lipgloss.Style {
	var style lipgloss.Style
	switch span.Style {
	case render.StyleDirectory:
		style = t.DirectoryStyle
	case render.StyleExecutable:
		style = t.ExecutableStyle
	case render.StyleError:
		style = t.ErrorStyle
	case render.StyleMuted:
		style = t.MutedStyle
	case render.StyleAccent:
		style = t.AccentStyle
	default:
		style = t.PlainStyle
	}
	if span.Href != "" {
		style = style.Inherit(t.LinkStyle)
	}
	return style
}

// Line renders one output line.
func (t *Theme) Line(line render.Line) string {
	var sb strings.Builder
	for _, span := range line {
		if span.Text == "" {
			continue
		}
		sb.WriteString(t.Span(span).Render(span.Text))
	}
	return sb.String()
}

// Content renders every line of content, forcing the error style when
// failed is set and a span carries no style of its own.
func (t *Theme) Content(content render.Content, failed bool) []string {
	lines := make([]string, 0, len(content))
	for _, line := range content {
		if failed {
			styled := make(render.Line, len(line))
			for i, span := range line {
				if span.Style == render.StylePlain {
					span.Style = render.StyleError
				}
				styled[i] = span
			}
			line = styled
		}
		lines = append(lines, t.Line(line))
	}
	return lines
}
