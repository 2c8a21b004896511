// Package render describes terminal output as plain data: lines of styled
// spans that a presentation layer turns into pixels, HTML or ANSI text.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style is a presentation hint attached to a span.
type Style int

const (
	StylePlain Style = iota
	StyleDirectory
	StyleExecutable
	StyleError
	StyleMuted
	StyleAccent
)

func (s Style) String() string {
	switch s {
	case StyleDirectory:
		return "directory"
	case StyleExecutable:
		return "executable"
	case StyleError:
		return "error"
	case StyleMuted:
		return "muted"
	case StyleAccent:
		return "accent"
	default:
		return "plain"
	}
}

// Span is a run of text sharing one style. Href marks the span as a link
// the host may navigate to.
type Span struct {
	Text  string `json:"text"`
	Style Style  `json:"style,omitempty"`
	Href  string `json:"href,omitempty"`
}

// Line is a single output line.
type Line []Span

// Content is a block of output lines.
type Content []Line

func Plain(text string) Span {
	return Span{Text: text}
}

func Styled(text string, style Style) Span {
	return Span{Text: text, Style: style}
}

func Link(text, href string, style Style) Span {
	return Span{Text: text, Style: style, Href: href}
}

// Text converts plain text into content, one line per newline.
func Text(text string) Content {
	lines := strings.Split(text, "\n")
	content := make(Content, 0, len(lines))
	for _, l := range lines {
		content = append(content, Line{Plain(l)})
	}
	return content
}

// StyledText is Text with every line carrying the same style.
func StyledText(text string, style Style) Content {
	content := Text(text)
	for _, line := range content {
		for i := range line {
			line[i].Style = style
		}
	}
	return content
}

// String returns the text of the line without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, span := range l {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// Width returns the display width of the line in terminal cells.
func (l Line) Width() int {
	width := 0
	for _, span := range l {
		width += runewidth.StringWidth(span.Text)
	}
	return width
}

// String returns the text of all lines joined by newlines.
func (c Content) String() string {
	lines := make([]string, len(c))
	for i, line := range c {
		lines[i] = line.String()
	}
	return strings.Join(lines, "\n")
}

// Append returns c followed by other.
func (c Content) Append(other Content) Content {
	return append(c, other...)
}

// IsEmpty reports whether the content holds no visible text.
func (c Content) IsEmpty() bool {
	for _, line := range c {
		for _, span := range line {
			if span.Text != "" {
				return false
			}
		}
	}
	return true
}
