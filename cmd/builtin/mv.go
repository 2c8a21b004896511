package builtin

import (
	"context"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
	"github.com/mwantia/webterm/vfs"
)

type MvCommand struct {
}

func (m *MvCommand) Name() cmd.Name {
	return cmd.Mv
}

func (m *MvCommand) Description() string {
	return "move (rename) files"
}

func (m *MvCommand) Usage() string {
	return "mv [-rf] source ... dest"
}

// Execute moves every source to the last target by copying it and then
// removing the original. A source whose copy fails is left untouched.
func (m *MvCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Mv, "rf"); err != nil {
		return cmd.Fail(err)
	}
	if len(args.Targets) < 2 {
		return cmd.Errorf("mv: missing destination file operand")
	}

	dest := args.Targets[len(args.Targets)-1]

	var collector cmd.Collector
	for _, source := range args.Targets[:len(args.Targets)-1] {
		if msg := m.move(env, source, dest); msg != "" {
			collector.Fail("%s", msg)
		}
	}
	return collector.Result()
}

func (m *MvCommand) move(env *cmd.Env, source, dest string) string {
	fs := env.FS

	srcID, err := fs.Resolve(env.Cwd, source)
	if err != nil {
		return "mv: cannot stat '" + source + "': No such file or directory"
	}
	src, err := fs.Stat(srcID)
	if err != nil {
		return "mv: cannot stat '" + source + "': No such file or directory"
	}
	if src.Permissions.Immutable {
		return "mv: cannot move '" + source + "': Permission denied"
	}

	if m.same(fs, env.Cwd, srcID, src, dest) {
		return "mv: '" + source + "' and '" + dest + "' are the same file"
	}
	if src.IsDir() && m.below(fs, env.Cwd, srcID, dest) {
		return "mv: cannot move '" + source + "' to a subdirectory of itself, '" + dest + "'"
	}

	cp := &copier{fs: fs, cwd: env.Cwd, prog: "mv", recursive: src.IsDir()}
	if err := cp.copy(source, dest); err != nil {
		return err.Error()
	}

	if src.IsDir() {
		err = fs.DeleteRecursive(srcID)
	} else {
		err = fs.Delete(srcID)
	}
	if err != nil {
		return "mv: cannot remove '" + source + "': Permission denied"
	}

	return ""
}

// same reports whether dest names the source itself, directly or as the
// entry the source would become inside a destination directory.
func (m *MvCommand) same(fs *vfs.VirtualFileSystem, cwd, srcID vfs.NodeID, src data.Node, dest string) bool {
	destID, err := fs.Resolve(cwd, dest)
	if err != nil {
		return false
	}
	if destID == srcID {
		return true
	}

	node, err := fs.Stat(destID)
	if err != nil || !node.IsDir() {
		return false
	}
	child, err := fs.Resolve(destID, src.Name)
	return err == nil && child == srcID
}

// below reports whether dest, or the directory it would be created in, lies
// inside the subtree at srcID.
func (m *MvCommand) below(fs *vfs.VirtualFileSystem, cwd, srcID vfs.NodeID, dest string) bool {
	destID, err := fs.Resolve(cwd, dest)
	if err != nil {
		parent, _ := data.SplitPath(dest)
		if parent == "" {
			return false
		}
		if destID, err = fs.Resolve(cwd, parent); err != nil {
			return false
		}
	}
	return fs.IsDescendant(destID, srcID)
}
