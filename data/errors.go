package data

import (
	"errors"
	"sync"
)

// Standard VFS errors returned by every filesystem operation.
var (
	// Path resolution errors
	ErrNotExist     = errors.New("vfs: file does not exist")
	ErrInvalidPath  = errors.New("vfs: invalid path detected")
	ErrNotDirectory = errors.New("vfs: not a directory")
	ErrNotFile      = errors.New("vfs: not a file")

	// Mutation errors
	ErrExist             = errors.New("vfs: file already exists")
	ErrPermission        = errors.New("vfs: permission denied")
	ErrDirectoryNotEmpty = errors.New("vfs: directory not empty")
	ErrQuotaExceeded     = errors.New("vfs: quota exceeded")

	// Link errors
	ErrLinkUnsupported = errors.New("vfs: links not supported")
)

type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = make([]error, 0)
}

func (e *Errors) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.errors)
}

func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
