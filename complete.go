package webterm

import (
	"sort"
	"strings"

	"github.com/mwantia/webterm/cmd"
)

// Complete returns the tab-completion candidates for partial typed at path.
// The first word completes to command names and aliases, later words to
// entries of the directory they point into. Directory candidates end in
// "/"; cd is only offered directories.
func (t *Terminal) Complete(path, partial string) []string {
	fields := strings.Fields(partial)
	if len(fields) == 0 {
		return nil
	}

	word := fields[0]
	name := cmd.ParseName(word)
	trailing := strings.HasSuffix(partial, " ")

	if len(fields) == 1 && !trailing {
		if name != cmd.Unknown {
			return nil
		}
		if strings.Contains(word, "/") {
			return t.completePath(path, word)
		}
		return completeCommand(word)
	}

	target := ""
	if !trailing {
		target = fields[len(fields)-1]
	}

	candidates := t.completePath(path, target)
	if name != cmd.Cd {
		return candidates
	}

	dirs := candidates[:0]
	for _, c := range candidates {
		if strings.HasSuffix(c, "/") {
			dirs = append(dirs, c)
		}
	}
	return dirs
}

// completeCommand matches command words and aliases by prefix.
func completeCommand(prefix string) []string {
	var matches []string
	for _, word := range cmd.Listed() {
		if strings.HasPrefix(word, prefix) {
			matches = append(matches, word)
		}
	}
	for _, alias := range cmd.Aliases() {
		if strings.HasPrefix(alias.Name, prefix) {
			matches = append(matches, alias.Name)
		}
	}

	sort.Strings(matches)
	return matches
}

// completePath lists the directory target points into, keeping names that
// extend its last segment. Dotfiles, "./" and "../" are only offered when
// that segment starts with a dot.
func (t *Terminal) completePath(path, target string) []string {
	dir, prefix := "", target
	if idx := strings.LastIndex(target, "/"); idx >= 0 {
		dir, prefix = target[:idx+1], target[idx+1:]
	}

	cwd := t.fs.Locate(path)
	id := cwd
	if dir != "" {
		resolved, err := t.fs.Resolve(cwd, dir)
		if err != nil {
			return nil
		}
		id = resolved
	}

	entries, err := t.fs.ReadDirectory(id)
	if err != nil {
		return nil
	}

	hidden := strings.HasPrefix(prefix, ".")

	var names []string
	if hidden {
		names = append(names, "./", "../")
	}
	for _, entry := range entries {
		if !hidden && strings.HasPrefix(entry.Name, ".") {
			continue
		}
		names = append(names, entry.DisplayName())
	}

	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) && name != prefix {
			matches = append(matches, name)
		}
	}
	return matches
}

