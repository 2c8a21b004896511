package tui

import (
	"fmt"

	"github.com/mwantia/webterm/cmd"
)

// Entry is one command line in the scrollback together with what it
// produced.
type Entry struct {
	Path   string
	Input  string
	Result cmd.Result
	// Notice replaces the rendered result, e.g. for external redirects.
	Notice string
}

// Prompt returns the prompt text shown in front of the input.
func (e *Entry) Prompt(user, site string) string {
	return prompt(user, site, e.Path)
}

// Lines renders the entry: the prompt line followed by its output.
func (e *Entry) Lines(theme *Theme, user, site string) []string {
	lines := []string{theme.PromptStyle.Render(e.Prompt(user, site)) + " " + e.Input}

	if e.Notice != "" {
		return append(lines, theme.MutedStyle.Render(e.Notice))
	}

	switch e.Result.Kind {
	case cmd.KindError, cmd.KindOutput:
		lines = append(lines, theme.Content(e.Result.Content, e.Result.Kind == cmd.KindError)...)
	}
	return lines
}

func prompt(user, site, path string) string {
	return fmt.Sprintf("%s@%s:%s$", user, site, path)
}
