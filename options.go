package webterm

import (
	"fmt"
	"time"

	"github.com/mwantia/webterm/log"
	"github.com/mwantia/webterm/metrics"
)

type TerminalOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	Logger        *log.Logger

	History []string
	Width   int
	Env     map[string]string
	Clock   func() time.Time
	Metrics *metrics.Recorder
}

type TerminalOption func(*TerminalOptions) error

func newDefaultTerminalOptions() *TerminalOptions {
	return &TerminalOptions{
		LogLevel: log.Info,
		Width:    80,
		Env:      map[string]string{},
		Clock:    time.Now,
	}
}

func WithLogLevel(logLevel log.LogLevel) TerminalOption {
	return func(opts *TerminalOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithLogFile(logFile string) TerminalOption {
	return func(opts *TerminalOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithoutTerminalLog() TerminalOption {
	return func(opts *TerminalOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

// WithLogger replaces the logger built from the level and file options.
func WithLogger(logger *log.Logger) TerminalOption {
	return func(opts *TerminalOptions) error {
		if logger == nil {
			return fmt.Errorf("webterm: nil logger")
		}
		opts.Logger = logger
		return nil
	}
}

// WithHistory seeds the session history.
func WithHistory(history []string) TerminalOption {
	return func(opts *TerminalOptions) error {
		opts.History = append([]string(nil), history...)
		return nil
	}
}

// WithWidth sets the output width used for columnar listings.
func WithWidth(width int) TerminalOption {
	return func(opts *TerminalOptions) error {
		if width <= 0 {
			return fmt.Errorf("webterm: invalid width %d", width)
		}
		opts.Width = width
		return nil
	}
}

// WithEnv binds an additional environment variable or overrides a seeded
// one. PWD cannot be set; it always follows the current path.
func WithEnv(name, value string) TerminalOption {
	return func(opts *TerminalOptions) error {
		if !isVarName(name) || name == "PWD" {
			return fmt.Errorf("webterm: invalid variable name %q", name)
		}
		opts.Env[name] = value
		return nil
	}
}

func WithClock(clock func() time.Time) TerminalOption {
	return func(opts *TerminalOptions) error {
		if clock == nil {
			return fmt.Errorf("webterm: nil clock")
		}
		opts.Clock = clock
		return nil
	}
}

func WithMetrics(recorder *metrics.Recorder) TerminalOption {
	return func(opts *TerminalOptions) error {
		opts.Metrics = recorder
		return nil
	}
}
