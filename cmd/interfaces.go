package cmd

import (
	"context"
	"time"

	"github.com/mwantia/webterm/vfs"
)

// Command represents a builtin terminal command.
type Command interface {
	// Name returns the command identifier
	Name() Name

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls [-al] [path ...]")
	Usage() string

	// Execute runs the command with the raw argument tokens
	Execute(ctx context.Context, env *Env, args []string) Result
}

// Env is everything a command may observe about the invoking session.
type Env struct {
	// Filesystem shared by all commands of the session
	FS *vfs.VirtualFileSystem

	// Path is the host's current page path; Cwd is the directory it maps to
	Path string
	Cwd  vfs.NodeID

	// Stdin holds the output of the previous pipeline stage, if any
	Stdin    string
	HasStdin bool

	// TTY is false when output feeds another pipeline stage
	TTY bool

	// Width is the available output width in terminal cells
	Width int

	// History is a read-only snapshot taken before the current line
	History []string

	// Vars holds the expanded environment variables
	Vars map[string]string

	Now func() time.Time
}

// Clock returns the current time from Now, or time.Now when unset.
func (e *Env) Clock() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
