package data

// Permissions holds the access bits of a node. A single set applies to
// every user; there is no owner/group/other split.
type Permissions struct {
	Read      bool `json:"read"`
	Write     bool `json:"write"`
	Execute   bool `json:"execute"`
	Immutable bool `json:"immutable"`
}

// DefaultPermissions is used for user-created files and directories.
func DefaultPermissions() Permissions {
	return Permissions{Read: true, Write: true}
}

// ReadOnlyPermissions is used for static site content.
func ReadOnlyPermissions() Permissions {
	return Permissions{Read: true, Immutable: true}
}

// ExecutablePermissions is used for runnable files like mines.sh and nav.rs.
func ExecutablePermissions() Permissions {
	return Permissions{Read: true, Execute: true, Immutable: true}
}

// SystemDirPermissions is used for site directories: the directory itself
// cannot be removed but its contents stay writable.
func SystemDirPermissions() Permissions {
	return Permissions{Read: true, Write: true, Execute: true, Immutable: true}
}

// Mode returns the permission bits in Unix ls -l format.
// Example: "drwxrwxrwx" for a system directory.
func (p Permissions) Mode(t NodeType) string {
	var buf [10]byte

	switch t {
	case NodeTypeDirectory:
		buf[0] = 'd'
	case NodeTypeLink:
		buf[0] = 'l'
	default:
		buf[0] = '-'
	}

	const rwx = "rwx"
	bits := [3]bool{p.Read, p.Write, p.Execute}
	for i := 0; i < 3; i++ {
		for j, set := range bits {
			if set {
				buf[1+i*3+j] = rwx[j]
			} else {
				buf[1+i*3+j] = '-'
			}
		}
	}

	return string(buf[:])
}
