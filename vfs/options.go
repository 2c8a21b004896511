package vfs

import (
	"fmt"
	"time"

	"github.com/mwantia/webterm/log"
)

type VirtualFileSystemOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	Logger        *log.Logger
	Clock         func() time.Time
}

type VirtualFileSystemOption func(*VirtualFileSystemOptions) error

func newDefaultVirtualFileSystemOptions() *VirtualFileSystemOptions {
	return &VirtualFileSystemOptions{
		LogLevel:      log.Info,
		NoTerminalLog: true,
		Clock:         time.Now,
	}
}

func WithLogLevel(logLevel log.LogLevel) VirtualFileSystemOption {
	return func(opts *VirtualFileSystemOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithLogFile(logFile string) VirtualFileSystemOption {
	return func(opts *VirtualFileSystemOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithTerminalLog() VirtualFileSystemOption {
	return func(opts *VirtualFileSystemOptions) error {
		opts.NoTerminalLog = false
		return nil
	}
}

// WithLogger replaces the logger built from the level and file options.
func WithLogger(logger *log.Logger) VirtualFileSystemOption {
	return func(opts *VirtualFileSystemOptions) error {
		opts.Logger = logger
		return nil
	}
}

// WithClock sets the time source used for node timestamps.
func WithClock(clock func() time.Time) VirtualFileSystemOption {
	return func(opts *VirtualFileSystemOptions) error {
		if clock == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		opts.Clock = clock
		return nil
	}
}
