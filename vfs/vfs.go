package vfs

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mwantia/webterm/data"
	"github.com/mwantia/webterm/log"
	"github.com/tidwall/btree"
)

// NodeID is an opaque handle to a node stored in the filesystem arena.
type NodeID int

// InvalidNode is never assigned to a live node.
const InvalidNode NodeID = -1

type node struct {
	data.Node

	parent NodeID
	// Child names mapped to their ids, kept in name order for listings
	children *btree.Map[string, NodeID]
}

// VirtualFileSystem is an in-memory tree of directories, files and links.
// Nodes live in an arena and reference each other by NodeID; the arena is
// the only owner of node data. All methods are safe for concurrent use.
type VirtualFileSystem struct {
	mu sync.RWMutex

	log   *log.Logger
	clock func() time.Time
	nodes []*node
	root  NodeID
	count int
}

// NewEmpty creates a filesystem holding only a writable root directory.
func NewEmpty(opts ...VirtualFileSystemOption) (*VirtualFileSystem, error) {
	options := newDefaultVirtualFileSystemOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger("vfs", options.LogLevel, options.LogFile, options.NoTerminalLog)
	}

	v := &VirtualFileSystem{
		log:   logger,
		clock: options.Clock,
		root:  InvalidNode,
	}

	v.root = v.insert(InvalidNode, data.Node{
		Type:        data.NodeTypeDirectory,
		Permissions: data.DefaultPermissions(),
		Metadata:    data.NewMetadata(data.OwnerSite, data.GroupSite, data.DirectorySize, v.clock()),
	})

	return v, nil
}

// Root returns the id of the root directory.
func (v *VirtualFileSystem) Root() NodeID {
	return v.root
}

// Len returns the number of live nodes, root included.
func (v *VirtualFileSystem) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.count
}

// Stat returns a snapshot of the node.
func (v *VirtualFileSystem) Stat(id NodeID) (data.Node, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n, err := v.get(id)
	if err != nil {
		return data.Node{}, err
	}

	return n.Node, nil
}

// Parent returns the parent of id. The root is its own parent.
func (v *VirtualFileSystem) Parent(id NodeID) (NodeID, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n, err := v.get(id)
	if err != nil {
		return InvalidNode, err
	}
	if n.parent == InvalidNode {
		return v.root, nil
	}

	return n.parent, nil
}

// Resolve walks path starting at base. Absolute paths and "~" start at the
// root; ".." follows the parent link and stays put at the root. A trailing
// slash only resolves to a directory.
func (v *VirtualFileSystem) Resolve(base NodeID, path string) (NodeID, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.resolve(base, path)
}

func (v *VirtualFileSystem) resolve(base NodeID, path string) (NodeID, error) {
	if _, err := v.get(base); err != nil {
		return InvalidNode, err
	}

	current := base
	dirOnly := strings.HasSuffix(path, "/")
	switch {
	case path == "~":
		return v.root, nil
	case strings.HasPrefix(path, "~/"):
		current, path = v.root, path[2:]
	case strings.HasPrefix(path, "/"):
		current, path = v.root, path[1:]
	}

	for _, segment := range strings.Split(path, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			if parent := v.nodes[current].parent; parent != InvalidNode {
				current = parent
			}
		default:
			n := v.nodes[current]
			if n.children == nil {
				return InvalidNode, fmt.Errorf("%w: %s", data.ErrNotExist, path)
			}
			child, ok := n.children.Get(segment)
			if !ok {
				return InvalidNode, fmt.Errorf("%w: %s", data.ErrNotExist, path)
			}
			current = child
		}
	}

	if dirOnly && v.nodes[current].children == nil {
		return InvalidNode, fmt.Errorf("%w: %s", data.ErrNotDirectory, path)
	}
	return current, nil
}

// CreateFile creates a user-owned file below parent.
func (v *VirtualFileSystem) CreateFile(parent NodeID, name string, content data.FileContent) (NodeID, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.create(parent, data.Node{
		Name:        name,
		Type:        data.NodeTypeFile,
		Content:     content,
		Permissions: data.DefaultPermissions(),
		Metadata:    data.NewMetadata(data.OwnerUser, data.GroupUser, content.Size(), v.clock()),
	})
}

// CreateDirectory creates a user-owned directory below parent.
func (v *VirtualFileSystem) CreateDirectory(parent NodeID, name string) (NodeID, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.create(parent, data.Node{
		Name:        name,
		Type:        data.NodeTypeDirectory,
		Permissions: data.DefaultPermissions(),
		Metadata:    data.NewMetadata(data.OwnerUser, data.GroupUser, data.DirectorySize, v.clock()),
	})
}

// CreateLink creates a link below parent pointing at an absolute target path.
func (v *VirtualFileSystem) CreateLink(parent NodeID, name, target string) (NodeID, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.create(parent, data.Node{
		Name:        name,
		Type:        data.NodeTypeLink,
		LinkTarget:  target,
		Permissions: data.DefaultPermissions(),
		Metadata:    data.NewMetadata(data.OwnerUser, data.GroupUser, int64(len(target)), v.clock()),
	})
}

// create checks the parent before inserting: write bit, then directory
// type, then name collision.
func (v *VirtualFileSystem) create(parent NodeID, child data.Node) (NodeID, error) {
	if child.Name == "" || child.Name == "." || child.Name == ".." || strings.Contains(child.Name, "/") {
		return InvalidNode, fmt.Errorf("%w: %q", data.ErrInvalidPath, child.Name)
	}

	p, err := v.get(parent)
	if err != nil {
		return InvalidNode, err
	}
	if !p.Permissions.Write {
		return InvalidNode, data.ErrPermission
	}
	if p.Type != data.NodeTypeDirectory {
		return InvalidNode, data.ErrNotDirectory
	}
	if _, exists := p.children.Get(child.Name); exists {
		return InvalidNode, data.ErrExist
	}

	id := v.insert(parent, child)
	v.log.Debug("created %s %s", child.Type, v.path(id))

	return id, nil
}

func (v *VirtualFileSystem) insert(parent NodeID, n data.Node) NodeID {
	entry := &node{Node: n, parent: parent}
	if n.Type == data.NodeTypeDirectory {
		entry.children = btree.NewMap[string, NodeID](0)
	}

	id := NodeID(len(v.nodes))
	v.nodes = append(v.nodes, entry)
	v.count++

	if parent != InvalidNode {
		v.nodes[parent].children.Set(n.Name, id)
	}

	return id
}

// ReadFile returns the rendered content of a file, following one link.
func (v *VirtualFileSystem) ReadFile(id NodeID) (string, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n, err := v.follow(id)
	if err != nil {
		return "", err
	}
	if !n.Permissions.Read {
		return "", data.ErrPermission
	}
	if n.Type != data.NodeTypeFile {
		return "", data.ErrNotFile
	}

	return n.Content.Render(), nil
}

// ReadDirectory lists a directory in name order, following one link.
func (v *VirtualFileSystem) ReadDirectory(id NodeID) ([]data.DirEntry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	n, err := v.follow(id)
	if err != nil {
		return nil, err
	}
	if n.Type != data.NodeTypeDirectory {
		return nil, data.ErrNotDirectory
	}
	if !n.Permissions.Read {
		return nil, data.ErrPermission
	}

	entries := make([]data.DirEntry, 0, n.children.Len())
	n.children.Scan(func(name string, child NodeID) bool {
		c := v.nodes[child]
		entries = append(entries, data.DirEntry{
			Name:         name,
			ID:           int(child),
			IsDirectory:  c.Type == data.NodeTypeDirectory,
			IsExecutable: c.IsExecutable(),
		})
		return true
	})

	return entries, nil
}

// follow returns the node, or the node a link points at.
func (v *VirtualFileSystem) follow(id NodeID) (*node, error) {
	n, err := v.get(id)
	if err != nil {
		return nil, err
	}
	if n.Type != data.NodeTypeLink {
		return n, nil
	}

	target, err := v.resolve(v.root, n.LinkTarget)
	if err != nil {
		return nil, err
	}

	return v.nodes[target], nil
}

// WriteFile replaces the content of an existing file.
func (v *VirtualFileSystem) WriteFile(id NodeID, content data.FileContent) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.get(id)
	if err != nil {
		return err
	}
	if n.Type != data.NodeTypeFile {
		return data.ErrNotFile
	}
	if n.Permissions.Immutable || !n.Permissions.Write {
		return data.ErrPermission
	}

	n.Content = content
	n.Metadata.Size = content.Size()
	n.Metadata.Modified = v.clock()

	v.log.Debug("wrote file %s", v.path(id))
	return nil
}

// Touch refreshes the modified time of a node.
func (v *VirtualFileSystem) Touch(id NodeID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.get(id)
	if err != nil {
		return err
	}
	if n.Permissions.Immutable || !n.Permissions.Write {
		return data.ErrPermission
	}

	n.Metadata.Modified = v.clock()
	return nil
}

// Delete removes a single node. Directories must be empty.
func (v *VirtualFileSystem) Delete(id NodeID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.deletable(id)
	if err != nil {
		return err
	}
	if n.children != nil && n.children.Len() > 0 {
		return data.ErrDirectoryNotEmpty
	}

	v.remove(id)
	return nil
}

// DeleteRecursive removes a node and all of its descendants. Nothing is
// removed if any descendant is immutable.
func (v *VirtualFileSystem) DeleteRecursive(id NodeID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, err := v.deletable(id); err != nil {
		return err
	}

	var blocked bool
	v.walk(id, func(child NodeID) {
		if v.nodes[child].Permissions.Immutable {
			blocked = true
		}
	})
	if blocked {
		return data.ErrPermission
	}

	v.walk(id, v.remove)
	return nil
}

func (v *VirtualFileSystem) deletable(id NodeID) (*node, error) {
	n, err := v.get(id)
	if err != nil {
		return nil, err
	}
	if id == v.root || n.Permissions.Immutable {
		return nil, data.ErrPermission
	}

	return n, nil
}

// walk visits every node below id depth-first, children before parents.
func (v *VirtualFileSystem) walk(id NodeID, fn func(NodeID)) {
	n := v.nodes[id]
	if n.children != nil {
		// Copy ids first; fn may detach children from the map.
		children := make([]NodeID, 0, n.children.Len())
		n.children.Scan(func(_ string, child NodeID) bool {
			children = append(children, child)
			return true
		})
		for _, child := range children {
			v.walk(child, fn)
		}
	}
	fn(id)
}

func (v *VirtualFileSystem) remove(id NodeID) {
	n := v.nodes[id]
	path := v.path(id)

	if n.parent != InvalidNode {
		v.nodes[n.parent].children.Delete(n.Name)
	}
	v.nodes[id] = nil
	v.count--

	v.log.Debug("deleted %s %s", n.Type, path)
}

// NodePath returns the absolute path of a node. The root renders as "/".
func (v *VirtualFileSystem) NodePath(id NodeID) string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.path(id)
}

func (v *VirtualFileSystem) path(id NodeID) string {
	var segments []string
	for current := id; current != InvalidNode && current != v.root; {
		n, err := v.get(current)
		if err != nil {
			break
		}
		segments = append(segments, n.Name)
		current = n.parent
	}

	var sb strings.Builder
	for i := len(segments) - 1; i >= 0; i-- {
		sb.WriteString("/")
		sb.WriteString(segments[i])
	}
	if sb.Len() == 0 {
		return "/"
	}

	return sb.String()
}

// IsDescendant reports whether id equals ancestor or lives below it.
func (v *VirtualFileSystem) IsDescendant(id, ancestor NodeID) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for current := id; current != InvalidNode; {
		if current == ancestor {
			return true
		}
		n, err := v.get(current)
		if err != nil {
			return false
		}
		current = n.parent
	}

	return false
}

func (v *VirtualFileSystem) get(id NodeID) (*node, error) {
	if id < 0 || int(id) >= len(v.nodes) || v.nodes[id] == nil {
		return nil, fmt.Errorf("%w: node %d", data.ErrNotExist, id)
	}

	return v.nodes[id], nil
}
