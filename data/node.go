package data

// Node is a read-only snapshot of a filesystem node. Callers receive copies;
// mutation only happens through the filesystem itself.
type Node struct {
	Name        string      `json:"name"`
	Type        NodeType    `json:"type"`
	Content     FileContent `json:"content"`
	LinkTarget  string      `json:"link_target,omitempty"`
	Permissions Permissions `json:"permissions"`
	Metadata    Metadata    `json:"metadata"`
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.Type == NodeTypeDirectory
}

// IsFile reports whether the node is a regular file.
func (n *Node) IsFile() bool {
	return n.Type == NodeTypeFile
}

// IsLink reports whether the node is a link.
func (n *Node) IsLink() bool {
	return n.Type == NodeTypeLink
}

// IsExecutable reports whether the execute bit is set on a non-directory.
func (n *Node) IsExecutable() bool {
	return n.Type != NodeTypeDirectory && n.Permissions.Execute
}

// DirEntry is a single entry of a directory listing.
type DirEntry struct {
	Name         string `json:"name"`
	ID           int    `json:"id"`
	IsDirectory  bool   `json:"is_directory"`
	IsExecutable bool   `json:"is_executable"`
}

// DisplayName returns the name with a trailing marker for directories.
func (e DirEntry) DisplayName() string {
	if e.IsDirectory {
		return e.Name + "/"
	}
	return e.Name
}
