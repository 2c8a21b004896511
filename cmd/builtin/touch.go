package builtin

import (
	"context"
	"errors"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
)

type TouchCommand struct {
}

func (t *TouchCommand) Name() cmd.Name {
	return cmd.Touch
}

func (t *TouchCommand) Description() string {
	return "change file timestamps or create empty files"
}

func (t *TouchCommand) Usage() string {
	return "touch file ..."
}

// Execute creates missing files and refreshes the time of existing ones.
func (t *TouchCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Touch, ""); err != nil {
		return cmd.Fail(err)
	}
	if len(args.Targets) == 0 {
		return cmd.Errorf("touch: missing file operand")
	}

	var collector cmd.Collector
	for _, target := range args.Targets {
		id, err := env.FS.Resolve(env.Cwd, target)
		if err == nil {
			if err := env.FS.Touch(id); err != nil {
				collector.Fail("touch: cannot touch '%s': Permission denied", target)
			}
			continue
		}
		if errors.Is(err, data.ErrNotDirectory) {
			collector.Fail("touch: cannot touch '%s': Not a directory", target)
			continue
		}

		parent, name, ok := locateParent(env, target)
		if !ok || name == "" || strings.HasSuffix(target, "/") {
			collector.Fail("touch: cannot touch '%s': No such file or directory", target)
			continue
		}

		_, err = env.FS.CreateFile(parent, name, data.DynamicContent(""))
		switch {
		case err == nil:
		case errors.Is(err, data.ErrPermission):
			collector.Fail("touch: cannot touch '%s': Permission denied", target)
		case errors.Is(err, data.ErrNotDirectory):
			collector.Fail("touch: cannot touch '%s': Not a directory", target)
		default:
			collector.Fail("touch: cannot touch '%s': No such file or directory", target)
		}
	}

	return collector.Result()
}
