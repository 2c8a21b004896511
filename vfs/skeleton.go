package vfs

import (
	"fmt"
	"strings"

	"github.com/mwantia/webterm/data"
)

// New creates the site filesystem: the static skeleton plus one directory
// below /blog for every post slug.
func New(posts []string, opts ...VirtualFileSystemOption) (*VirtualFileSystem, error) {
	v, err := NewEmpty(opts...)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	errs := data.Errors{}
	now := v.clock()

	systemDir := func(parent NodeID, name string) NodeID {
		return v.insert(parent, data.Node{
			Name:        name,
			Type:        data.NodeTypeDirectory,
			Permissions: data.SystemDirPermissions(),
			Metadata:    data.NewMetadata(data.OwnerSite, data.GroupSite, data.DirectorySize, now),
		})
	}
	file := func(parent NodeID, name string, content data.FileContent, perms data.Permissions) {
		group := data.GroupSite
		if perms.Execute {
			group = data.GroupWheel
		}
		v.insert(parent, data.Node{
			Name:        name,
			Type:        data.NodeTypeFile,
			Content:     content,
			Permissions: perms,
			Metadata:    data.NewMetadata(data.OwnerSite, group, content.Size(), now),
		})
	}

	blog := systemDir(v.root, "blog")
	cv := systemDir(v.root, "cv")

	file(v.root, "mines.sh", data.StaticContent(data.MinesScript), data.ExecutablePermissions())
	file(v.root, "thanks.txt", data.StaticContent(data.ThanksText), data.ReadOnlyPermissions())
	file(v.root, ".zshrc", data.StaticContent(data.ZshrcText), data.ReadOnlyPermissions())
	file(v.root, "nav.rs", data.NavContent("/"), data.ExecutablePermissions())
	file(blog, "nav.rs", data.NavContent("/blog"), data.ExecutablePermissions())
	file(cv, "nav.rs", data.NavContent("/cv"), data.ExecutablePermissions())

	for _, post := range posts {
		if post == "" || post == "." || post == ".." || post == "nav.rs" || strings.Contains(post, "/") {
			errs.Add(fmt.Errorf("%w: blog post %q", data.ErrInvalidPath, post))
			continue
		}
		if _, exists := v.nodes[blog].children.Get(post); exists {
			errs.Add(fmt.Errorf("%w: blog post %q", data.ErrExist, post))
			continue
		}

		dir := systemDir(blog, post)
		file(dir, "nav.rs", data.NavContent("/blog/"+post), data.ExecutablePermissions())
	}

	if err := errs.Errors(); err != nil {
		v.log.Warn("skipped blog posts: %v", err)
	}
	v.log.Debug("filesystem initialized with %d posts (%d nodes)", len(posts)-errs.Len(), v.count)

	return v, nil
}

