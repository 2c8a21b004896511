package builtin

import (
	"context"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/render"
)

// shellBuiltins are reported as builtins rather than programs.
var shellBuiltins = map[cmd.Name]bool{
	cmd.Cd:      true,
	cmd.Echo:    true,
	cmd.History: true,
	cmd.Pwd:     true,
	cmd.Which:   true,
	cmd.Kill:    true,
	cmd.Help:    true,
}

// programPaths are the simulated install locations of every other command.
var programPaths = map[cmd.Name]string{
	cmd.Ls:       "/bin/ls",
	cmd.Cat:      "/bin/cat",
	cmd.Cp:       "/bin/cp",
	cmd.Mv:       "/bin/mv",
	cmd.Rm:       "/bin/rm",
	cmd.Mkdir:    "/bin/mkdir",
	cmd.Date:     "/bin/date",
	cmd.Ps:       "/bin/ps",
	cmd.Touch:    "/usr/bin/touch",
	cmd.Whoami:   "/usr/bin/whoami",
	cmd.Uptime:   "/usr/bin/uptime",
	cmd.Clear:    "/usr/bin/clear",
	cmd.Sudo:     "/usr/bin/sudo",
	cmd.Neofetch: "/usr/local/bin/neofetch",
	cmd.Mines:    "/usr/local/bin/mines",
}

type WhichCommand struct {
}

func (w *WhichCommand) Name() cmd.Name {
	return cmd.Which
}

func (w *WhichCommand) Description() string {
	return "locate a command"
}

func (w *WhichCommand) Usage() string {
	return "which command ..."
}

// Execute describes each argument. The result is an error when any
// argument could not be found, but every line is still printed.
func (w *WhichCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	if len(raw) == 0 {
		return cmd.Errorf("which: missing argument")
	}

	lines := make([]string, 0, len(raw))
	missing := false
	for _, word := range raw {
		line, found := w.lookup(env, word)
		if !found {
			missing = true
		}
		lines = append(lines, line)
	}

	content := render.Text(strings.Join(lines, "\n"))
	if missing {
		return cmd.Error(content)
	}
	return cmd.Output(content)
}

func (w *WhichCommand) lookup(env *cmd.Env, word string) (string, bool) {
	if strings.Contains(word, "/") {
		id, err := env.FS.Resolve(env.Cwd, word)
		if err != nil {
			return word + " not found", false
		}
		node, err := env.FS.Stat(id)
		if err != nil || !node.IsExecutable() {
			return word + " not found", false
		}
		return word, true
	}

	if alias, ok := cmd.LookupAlias(word); ok {
		return word + ": aliased to " + alias.Expansion, true
	}

	name := cmd.ParseName(word)
	if shellBuiltins[name] {
		return word + ": shell builtin", true
	}
	if path, ok := programPaths[name]; ok {
		return path, true
	}

	return word + " not found", false
}
