package cmd

import "strings"

// Alias is a fixed textual macro expanded before anything else runs.
type Alias struct {
	Name      string
	Expansion string
}

var aliases = []Alias{
	{Name: "ll", Expansion: "ls -la"},
	{Name: "la", Expansion: "ls -a"},
	{Name: "h", Expansion: "history"},
}

// Aliases returns the alias table.
func Aliases() []Alias {
	return append([]Alias(nil), aliases...)
}

// LookupAlias finds an alias by exact name.
func LookupAlias(name string) (Alias, bool) {
	for _, a := range aliases {
		if a.Name == name {
			return a, true
		}
	}
	return Alias{}, false
}

// ExpandAlias rewrites input whose first word is an alias. Trailing
// arguments are forwarded verbatim.
func ExpandAlias(input string) string {
	trimmed := strings.TrimSpace(input)
	for _, a := range aliases {
		if trimmed == a.Name {
			return a.Expansion
		}
		if rest, ok := strings.CutPrefix(trimmed, a.Name+" "); ok {
			return a.Expansion + " " + rest
		}
	}
	return input
}
