package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// renderMain renders the scrollback with the prompt below it
func (m *Model) renderMain() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderScrollback())
	sections = append(sections, m.renderInput())

	if len(m.completions) > 0 {
		sections = append(sections, strings.Join(m.theme.Content(m.completions, false), "\n"))
	}

	sections = append(sections, m.renderStatus())
	sections = append(sections, m.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitle renders the title bar with current path
func (m *Model) renderTitle() string {
	title := fmt.Sprintf("%s - %s", m.site, m.currentPath)
	return m.theme.TitleStyle.Width(m.width).Render(title)
}

// scrollbackLines renders every scrollback entry, oldest first.
func (m *Model) scrollbackLines() []string {
	var lines []string
	for _, entry := range m.entries {
		lines = append(lines, entry.Lines(m.theme, m.user, m.site)...)
	}
	return lines
}

// renderScrollback renders the part of the scrollback that fits on screen
func (m *Model) renderScrollback() string {
	lines := m.scrollbackLines()
	visible := m.getVisibleLines()

	end := max(len(lines)-m.scroll, 0)
	start := max(end-visible, 0)

	window := lines[start:end]
	for len(window) < visible {
		window = append(window, "")
	}
	return strings.Join(window, "\n")
}

// renderInput renders the prompt and the line being typed
func (m *Model) renderInput() string {
	return m.theme.PromptStyle.Render(prompt(m.user, m.site, m.currentPath)) + " " + m.textInput.View()
}

// renderStatus renders the status bar
func (m *Model) renderStatus() string {
	left := fmt.Sprintf("%d commands", len(m.term.History()))
	if m.scroll > 0 {
		left += fmt.Sprintf(" (scrolled %d)", m.scroll)
	}

	right := m.statusMsg

	spacing := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-4, 0)

	statusLine := left + strings.Repeat(" ", spacing) + right
	return m.theme.StatusBarStyle.Width(m.width).Render(statusLine)
}

// renderHelpBar renders the bottom help bar
func (m *Model) renderHelpBar() string {
	return m.theme.HelpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderHelp renders the full help screen
func (m *Model) renderHelp() string {
	var sections []string

	sections = append(sections, m.theme.TitleStyle.Render(m.site+" - Help"))
	sections = append(sections, "")
	sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	sections = append(sections, "")

	sections = append(sections, m.theme.AccentStyle.Render("Commands:"))
	sections = append(sections, "  Type help at the prompt for the list of commands.")
	sections = append(sections, "  Aliases: ll (ls -l), la (ls -a), h (history)")
	sections = append(sections, "")

	sections = append(sections, m.theme.HelpStyle.Render("Press f1 or esc to return"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
