package builtin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwantia/webterm/cmd"
)

type HistoryCommand struct {
}

func (h *HistoryCommand) Name() cmd.Name {
	return cmd.History
}

func (h *HistoryCommand) Description() string {
	return "display or clear the command history"
}

func (h *HistoryCommand) Usage() string {
	return "history [-c] [n]"
}

// Execute prints the history numbered from 1. With n only the last n
// entries are printed, keeping their numbers. Clearing is done by the
// session, which owns the history; here -c prints nothing.
func (h *HistoryCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.History, "c"); err != nil {
		return cmd.Fail(err)
	}
	if args.Has('c') {
		return cmd.Nothing()
	}
	if len(args.Targets) > 1 {
		return cmd.Errorf("history: too many arguments")
	}

	start := 0
	if len(args.Targets) == 1 {
		n, err := strconv.Atoi(args.Targets[0])
		if err != nil || n < 0 {
			return cmd.Errorf("history: %s: numeric argument required", args.Targets[0])
		}
		start = max(len(env.History)-n, 0)
	}

	lines := make([]string, 0, len(env.History)-start)
	for i := start; i < len(env.History); i++ {
		lines = append(lines, fmt.Sprintf("%4d  %s", i+1, env.History[i]))
	}
	if len(lines) == 0 {
		return cmd.Nothing()
	}

	return cmd.Text(strings.Join(lines, "\n"))
}
