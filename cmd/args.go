package cmd

import (
	"strings"
)

// Args contains parsed command arguments
type Args struct {
	// Option characters gathered from every token starting with "-"
	Options []rune

	// Positional targets with "~" rewritten to the root
	Targets []string

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// Has reports whether option c was given.
func (a *Args) Has(c rune) bool {
	for _, o := range a.Options {
		if o == c {
			return true
		}
	}
	return false
}

// Check validates the options against the allowed set and reports the
// first offending character.
func (a *Args) Check(command Name, allowed string) error {
	for _, o := range a.Options {
		if !strings.ContainsRune(allowed, o) {
			return &OptionError{Command: command, Option: o, Allowed: allowed}
		}
	}
	return nil
}
