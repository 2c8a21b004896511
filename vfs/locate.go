package vfs

import (
	"github.com/mwantia/webterm/data"
)

// Locate maps a host path onto a directory node. Paths that no longer exist
// fall back to their nearest existing ancestor directory.
func (v *VirtualFileSystem) Locate(path string) NodeID {
	v.mu.RLock()
	defer v.mu.RUnlock()

	current := data.ResolvePath("/", path)
	for {
		if id, err := v.resolve(v.root, current); err == nil && v.nodes[id].Type == data.NodeTypeDirectory {
			return id
		}
		if current == "/" {
			return v.root
		}
		parent, _ := data.SplitPath(current)
		current = parent
	}
}
