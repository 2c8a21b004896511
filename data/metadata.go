package data

import "time"

const (
	// Size reported for every directory
	DirectorySize int64 = 4096
	// Size reported for generated navigation files
	NavFileSize int64 = 512

	OwnerSite  = "hans"
	GroupSite  = "staff"
	GroupWheel = "wheel"
	OwnerUser  = "user"
	GroupUser  = "user"
)

// Metadata is informational data attached to every node.
type Metadata struct {
	Size     int64     `json:"size"`
	Owner    string    `json:"owner"`
	Group    string    `json:"group"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// NewMetadata creates metadata stamped with the given time.
func NewMetadata(owner, group string, size int64, now time.Time) Metadata {
	return Metadata{
		Size:     max(size, 0),
		Owner:    owner,
		Group:    group,
		Created:  now,
		Modified: now,
	}
}
