package builtin

import (
	"context"
	"errors"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
)

type CdCommand struct {
}

func (c *CdCommand) Name() cmd.Name {
	return cmd.Cd
}

func (c *CdCommand) Description() string {
	return "change directory (navigate site)"
}

func (c *CdCommand) Usage() string {
	return "cd [dir]"
}

// Execute redirects to the target directory. Changing into the current
// directory is a no-op.
func (c *CdCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Cd, ""); err != nil {
		return cmd.Fail(err)
	}
	if len(args.Targets) >= 2 {
		return cmd.Errorf("cd: too many arguments")
	}

	target := "/"
	if len(args.Targets) == 1 {
		target = args.Targets[0]
	}

	id, err := env.FS.Resolve(env.Cwd, target)
	if errors.Is(err, data.ErrNotDirectory) {
		return cmd.Errorf("cd: not a directory: %s", target)
	}
	if err != nil {
		return cmd.Errorf("cd: no such file or directory: %s", target)
	}
	node, err := env.FS.Stat(id)
	if err != nil {
		return cmd.Errorf("cd: no such file or directory: %s", target)
	}

	switch node.Type {
	case data.NodeTypeDirectory:
		if id == env.Cwd {
			return cmd.Nothing()
		}
		return cmd.Redirect(env.FS.NodePath(id))
	case data.NodeTypeLink:
		return cmd.Errorf("cd: cannot follow link: %s", target)
	default:
		return cmd.Errorf("cd: not a directory: %s", target)
	}
}
