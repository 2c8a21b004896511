package data

// NodeType identifies the kind of node stored in the filesystem.
type NodeType int

// Node type constants.
const (
	NodeTypeDirectory NodeType = iota // Directory holding child nodes
	NodeTypeFile                      // Regular file with content
	NodeTypeLink                      // Link pointing at another path
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeDirectory:
		return "directory"
	case NodeTypeFile:
		return "file"
	case NodeTypeLink:
		return "link"
	default:
		return "unknown"
	}
}
