package builtin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
	"github.com/mwantia/webterm/render"
	"github.com/mwantia/webterm/vfs"
)

const defaultWidth = 80

type LsCommand struct {
}

// lsItem is one name in a listing.
type lsItem struct {
	node    data.Node
	links   int
	display string
	path    string
}

type lsListing struct {
	display string
	items   []lsItem
}

// Name returns the command identifier
func (ls *LsCommand) Name() cmd.Name {
	return cmd.Ls
}

// Description returns human-readable help text
func (ls *LsCommand) Description() string {
	return "list directory contents (sitemap)"
}

// Usage returns a usage string for help (e.g. "ls -al [path]")
func (ls *LsCommand) Usage() string {
	return "ls [-al] [path ...]"
}

// Execute lists every target. Missing targets are reported without
// aborting the others.
func (ls *LsCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Ls, "al"); err != nil {
		return cmd.Fail(err)
	}

	all := args.Has('a')
	long := args.Has('l')

	targets := args.Targets
	if len(targets) == 0 {
		targets = []string{""}
	}

	var (
		collector cmd.Collector
		files     []lsItem
		listings  []lsListing
	)

	for _, target := range targets {
		id := env.Cwd
		if target != "" {
			resolved, err := env.FS.Resolve(env.Cwd, target)
			if errors.Is(err, data.ErrNotDirectory) {
				collector.Fail("ls: cannot access '%s': Not a directory", target)
				continue
			}
			if err != nil {
				collector.Fail("ls: cannot access '%s': No such file or directory", target)
				continue
			}
			id = resolved
		}

		node, err := env.FS.Stat(id)
		if err != nil {
			collector.Fail("ls: cannot access '%s': No such file or directory", target)
			continue
		}

		switch node.Type {
		case data.NodeTypeFile:
			files = append(files, lsItem{
				node:    node,
				links:   1,
				display: target,
				path:    env.FS.NodePath(id),
			})
		case data.NodeTypeDirectory:
			items, err := ls.list(env.FS, id, node, all)
			if err != nil {
				collector.Fail("ls: cannot access '%s': Permission denied", target)
				continue
			}
			listings = append(listings, lsListing{display: target, items: items})
		default:
			collector.Fail("ls: cannot access '%s': No such file or directory", target)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].display < files[j].display })
	sort.Slice(listings, func(i, j int) bool { return listings[i].display < listings[j].display })

	if !env.TTY {
		var names []string
		for _, item := range files {
			names = append(names, item.display)
		}
		for _, listing := range listings {
			for _, item := range listing.items {
				names = append(names, item.display)
			}
		}
		if len(names) > 0 {
			collector.Write(render.Text(strings.Join(names, "\n")))
		}
		return collector.Result()
	}

	width := env.Width
	if width <= 0 {
		width = defaultWidth
	}

	multi := len(listings) > 1 || (len(listings) > 0 && len(files) > 0)

	var out render.Content
	if len(files) > 0 {
		out = out.Append(ls.block(files, long, width))
		if multi {
			out = append(out, render.Line{})
		}
	}
	for i, listing := range listings {
		if multi {
			if i > 0 {
				out = append(out, render.Line{})
			}
			out = append(out, render.Line{render.Plain(listing.display + ":")})
		}
		out = out.Append(ls.block(listing.items, long, width))
	}

	if len(files) > 0 || len(listings) > 0 {
		collector.Write(out)
	}
	return collector.Result()
}

// list returns the sorted items of a directory. With all set, "." and ".."
// lead the listing and dotfiles are kept.
func (ls *LsCommand) list(fs *vfs.VirtualFileSystem, id vfs.NodeID, node data.Node, all bool) ([]lsItem, error) {
	entries, err := fs.ReadDirectory(id)
	if err != nil {
		return nil, err
	}

	var dots, items []lsItem
	if all {
		dots = append(dots, lsItem{
			node:    node,
			links:   len(entries) + 2,
			display: ".",
			path:    fs.NodePath(id),
		})

		parent, err := fs.Parent(id)
		if err == nil {
			if item, err := ls.item(fs, parent, ".."); err == nil {
				dots = append(dots, item)
			}
		}
	}

	for _, entry := range entries {
		if !all && strings.HasPrefix(entry.Name, ".") {
			continue
		}
		item, err := ls.item(fs, vfs.NodeID(entry.ID), entry.Name)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].display < items[j].display })
	return append(dots, items...), nil
}

func (ls *LsCommand) item(fs *vfs.VirtualFileSystem, id vfs.NodeID, display string) (lsItem, error) {
	node, err := fs.Stat(id)
	if err != nil {
		return lsItem{}, err
	}

	links := 1
	if node.IsDir() {
		entries, _ := fs.ReadDirectory(id)
		links = len(entries) + 2
	}

	return lsItem{
		node:    node,
		links:   links,
		display: display,
		path:    fs.NodePath(id),
	}, nil
}

func (ls *LsCommand) block(items []lsItem, long bool, width int) render.Content {
	if !long {
		spans := make([]render.Span, 0, len(items))
		for _, item := range items {
			spans = append(spans, item.span())
		}
		return render.Columns(spans, width)
	}

	content := make(render.Content, 0, len(items))
	for _, item := range items {
		content = append(content, render.Line{
			render.Plain(longMeta(item.node, item.links)),
			item.span(),
		})
	}
	return content
}

func (i lsItem) span() render.Span {
	switch {
	case i.node.IsDir():
		return render.Link(i.display, i.path, render.StyleDirectory)
	case i.node.IsExecutable():
		return render.Styled(i.display, render.StyleExecutable)
	default:
		return render.Plain(i.display)
	}
}

// longMeta renders the columns preceding the name in a long listing.
func longMeta(node data.Node, links int) string {
	return fmt.Sprintf("%s %2d %-6s %-6s %6d ",
		node.Permissions.Mode(node.Type),
		links,
		node.Metadata.Owner,
		node.Metadata.Group,
		node.Metadata.Size,
	)
}
