package builtin

import (
	"context"
	"errors"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
	"github.com/mwantia/webterm/vfs"
)

type MkdirCommand struct {
}

func (m *MkdirCommand) Name() cmd.Name {
	return cmd.Mkdir
}

func (m *MkdirCommand) Description() string {
	return "make directories"
}

func (m *MkdirCommand) Usage() string {
	return "mkdir dir ..."
}

func (m *MkdirCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Mkdir, ""); err != nil {
		return cmd.Fail(err)
	}
	if len(args.Targets) == 0 {
		return cmd.Errorf("mkdir: missing operand")
	}

	var collector cmd.Collector
	for _, target := range args.Targets {
		parent, name, ok := locateParent(env, target)
		if !ok || name == "" {
			collector.Fail("mkdir: cannot create directory '%s': No such file or directory", target)
			continue
		}

		_, err := env.FS.CreateDirectory(parent, name)
		switch {
		case err == nil:
		case errors.Is(err, data.ErrExist), errors.Is(err, data.ErrInvalidPath):
			collector.Fail("mkdir: cannot create directory '%s': File exists", target)
		case errors.Is(err, data.ErrPermission):
			collector.Fail("mkdir: cannot create directory '%s': Permission denied", target)
		case errors.Is(err, data.ErrNotDirectory):
			collector.Fail("mkdir: cannot create directory '%s': Not a directory", target)
		default:
			collector.Fail("mkdir: cannot create directory '%s': No such file or directory", target)
		}
	}

	return collector.Result()
}

// locateParent splits target into the directory it would be created in and
// its base name.
func locateParent(env *cmd.Env, target string) (vfs.NodeID, string, bool) {
	parentPath, name := data.SplitPath(target)
	if parentPath == "" {
		return env.Cwd, name, true
	}

	parent, err := env.FS.Resolve(env.Cwd, parentPath)
	if err != nil {
		return vfs.InvalidNode, "", false
	}
	return parent, name, true
}
