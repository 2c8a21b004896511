package builtin

import (
	"context"
	"errors"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
)

type RmCommand struct {
}

func (r *RmCommand) Name() cmd.Name {
	return cmd.Rm
}

func (r *RmCommand) Description() string {
	return "remove files or directories"
}

func (r *RmCommand) Usage() string {
	return "rm [-rf] path ..."
}

// Execute removes every target. -r descends into directories, -f silences
// missing targets.
func (r *RmCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Rm, "rf"); err != nil {
		return cmd.Fail(err)
	}
	if len(args.Targets) == 0 {
		return cmd.Errorf("rm: missing operand")
	}

	recursive := args.Has('r')
	force := args.Has('f')

	var collector cmd.Collector
	for _, target := range args.Targets {
		if _, name := data.SplitPath(target); name == "." || name == ".." {
			collector.Fail("rm: refusing to remove '.' or '..' directory: skipping '%s'", target)
			continue
		}

		id, err := env.FS.Resolve(env.Cwd, target)
		if errors.Is(err, data.ErrNotDirectory) {
			collector.Fail("rm: cannot remove '%s': Not a directory", target)
			continue
		}
		if err != nil {
			if !force {
				collector.Fail("rm: cannot remove '%s': No such file or directory", target)
			}
			continue
		}

		node, err := env.FS.Stat(id)
		if err != nil {
			collector.Fail("rm: cannot remove '%s': No such file or directory", target)
			continue
		}
		if node.IsDir() && !recursive {
			collector.Fail("rm: cannot remove '%s': Is a directory", target)
			continue
		}

		if recursive {
			err = env.FS.DeleteRecursive(id)
		} else {
			err = env.FS.Delete(id)
		}

		switch {
		case err == nil:
		case errors.Is(err, data.ErrDirectoryNotEmpty):
			collector.Fail("rm: cannot remove '%s': Directory not empty", target)
		default:
			collector.Fail("rm: cannot remove '%s': Permission denied", target)
		}
	}

	return collector.Result()
}
