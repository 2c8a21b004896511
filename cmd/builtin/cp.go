package builtin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
	"github.com/mwantia/webterm/vfs"
)

type CpCommand struct {
}

func (c *CpCommand) Name() cmd.Name {
	return cmd.Cp
}

func (c *CpCommand) Description() string {
	return "copy files and directories"
}

func (c *CpCommand) Usage() string {
	return "cp [-rf] source ... dest"
}

// Execute copies every source to the last target.
func (c *CpCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Cp, "rf"); err != nil {
		return cmd.Fail(err)
	}
	if len(args.Targets) < 2 {
		return cmd.Errorf("cp: missing destination file operand")
	}

	dest := args.Targets[len(args.Targets)-1]
	cp := &copier{fs: env.FS, cwd: env.Cwd, prog: "cp", recursive: args.Has('r')}

	var collector cmd.Collector
	for _, source := range args.Targets[:len(args.Targets)-1] {
		if err := cp.copy(source, dest); err != nil {
			collector.Fail("%s", err)
		}
	}
	return collector.Result()
}

// copier copies nodes between directories; prog prefixes its messages.
type copier struct {
	fs        *vfs.VirtualFileSystem
	cwd       vfs.NodeID
	prog      string
	recursive bool
}

func (c *copier) errorf(format string, args ...any) error {
	return fmt.Errorf("%s: %s", c.prog, fmt.Sprintf(format, args...))
}

// copy duplicates source at dest. An existing directory destination
// receives the source under its own name.
func (c *copier) copy(source, dest string) error {
	srcID, err := c.fs.Resolve(c.cwd, source)
	if err != nil {
		return c.errorf("cannot stat '%s': No such file or directory", source)
	}
	src, err := c.fs.Stat(srcID)
	if err != nil {
		return c.errorf("cannot stat '%s': No such file or directory", source)
	}

	switch {
	case src.IsLink():
		return c.errorf("cannot copy '%s': Links not supported", source)
	case src.IsDir() && !c.recursive:
		return c.errorf("omitting directory '%s': use -r to copy directories", source)
	}

	parent, name, err := c.destination(src, dest)
	if err != nil {
		return err
	}

	if src.IsDir() {
		if c.fs.IsDescendant(parent, srcID) {
			return c.errorf("cannot copy a directory, '%s', into itself, '%s'", source, dest)
		}
		return c.directory(srcID, parent, name)
	}

	if existing, err := c.fs.Resolve(parent, name); err == nil && existing == srcID {
		return c.errorf("'%s' and '%s' are the same file", source, dest)
	}
	return c.file(src.Content, parent, name)
}

// destination picks the parent directory and name the copy is created as.
func (c *copier) destination(src data.Node, dest string) (vfs.NodeID, string, error) {
	if id, err := c.fs.Resolve(c.cwd, dest); err == nil {
		node, err := c.fs.Stat(id)
		if err != nil {
			return vfs.InvalidNode, "", c.errorf("cannot access '%s': No such file or directory", dest)
		}
		if node.IsDir() {
			return id, src.Name, nil
		}

		parent, err := c.fs.Parent(id)
		if err != nil {
			return vfs.InvalidNode, "", c.errorf("cannot access '%s': No such file or directory", dest)
		}
		return parent, node.Name, nil
	}
	if strings.HasSuffix(dest, "/") && !src.IsDir() {
		return vfs.InvalidNode, "", c.errorf("cannot create '%s': Not a directory", dest)
	}

	parentPath, name := data.SplitPath(dest)
	parent := c.cwd
	if parentPath != "" {
		id, err := c.fs.Resolve(c.cwd, parentPath)
		if err != nil {
			return vfs.InvalidNode, "", c.errorf("cannot create '%s': No such file or directory", dest)
		}
		parent = id
	}

	return parent, name, nil
}

// file creates or overwrites a regular file.
func (c *copier) file(content data.FileContent, parent vfs.NodeID, name string) error {
	if existing, err := c.fs.Resolve(parent, name); err == nil {
		node, err := c.fs.Stat(existing)
		if err != nil {
			return c.errorf("cannot create '%s': No such file or directory", name)
		}
		if node.IsDir() {
			return c.errorf("cannot overwrite directory '%s' with non-directory", name)
		}
		if err := c.fs.WriteFile(existing, content); err != nil {
			return c.createError(name, err)
		}
		return nil
	}

	if _, err := c.fs.CreateFile(parent, name, content); err != nil {
		return c.createError(name, err)
	}
	return nil
}

// directory copies the subtree at src into a new directory. Links are
// skipped.
func (c *copier) directory(src, parent vfs.NodeID, name string) error {
	created, err := c.fs.CreateDirectory(parent, name)
	if err != nil {
		return c.createDirectoryError(name, err)
	}

	entries, err := c.fs.ReadDirectory(src)
	if err != nil {
		return c.errorf("cannot read directory: Permission denied")
	}

	for _, entry := range entries {
		child, err := c.fs.Stat(vfs.NodeID(entry.ID))
		if err != nil {
			return c.errorf("cannot access '%s': No such file or directory", entry.Name)
		}

		switch child.Type {
		case data.NodeTypeFile:
			err = c.file(child.Content, created, entry.Name)
		case data.NodeTypeDirectory:
			err = c.directory(vfs.NodeID(entry.ID), created, entry.Name)
		default:
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *copier) createError(name string, err error) error {
	switch {
	case errors.Is(err, data.ErrExist):
		return c.errorf("cannot create '%s': File exists", name)
	case errors.Is(err, data.ErrPermission):
		return c.errorf("cannot create '%s': Permission denied", name)
	case errors.Is(err, data.ErrNotDirectory):
		return c.errorf("cannot create '%s': Not a directory", name)
	case errors.Is(err, data.ErrInvalidPath):
		return c.errorf("cannot create '%s': No such file or directory", name)
	default:
		return c.errorf("cannot create '%s': Unknown error", name)
	}
}

func (c *copier) createDirectoryError(name string, err error) error {
	switch {
	case errors.Is(err, data.ErrExist):
		return c.errorf("cannot create directory '%s': File exists", name)
	case errors.Is(err, data.ErrPermission):
		return c.errorf("cannot create directory '%s': Permission denied", name)
	case errors.Is(err, data.ErrNotDirectory):
		return c.errorf("cannot create directory '%s': Not a directory", name)
	case errors.Is(err, data.ErrInvalidPath):
		return c.errorf("cannot create directory '%s': No such file or directory", name)
	default:
		return c.errorf("cannot create directory '%s': Unknown error", name)
	}
}
