// Package webterm is a terminal emulator over a synthetic filesystem that
// mirrors the structure of a personal website. A Terminal turns command
// lines into results the host renders or navigates to.
package webterm

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwantia/webterm/buildinfo"
	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/cmd/builtin"
	"github.com/mwantia/webterm/log"
	"github.com/mwantia/webterm/metrics"
	"github.com/mwantia/webterm/vfs"
)

// MaxHistory is the number of entries History exposes.
const MaxHistory = 100

// Terminal is one interactive session. It owns its filesystem, so sessions
// never observe each other's changes. All methods are safe for concurrent
// use; command lines are executed one at a time.
type Terminal struct {
	mu sync.Mutex

	id       uuid.UUID
	log      *log.Logger
	fs       *vfs.VirtualFileSystem
	registry *cmd.Registry
	metrics  *metrics.Recorder
	clock    func() time.Time

	history []string
	env     map[string]string
	width   int
}

// New creates a session whose /blog holds one directory per post slug.
func New(posts []string, opts ...TerminalOption) (*Terminal, error) {
	options := newDefaultTerminalOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("webterm: failed to create session id: %w", err)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger("webterm", options.LogLevel, options.LogFile, options.NoTerminalLog)
	}
	logger = logger.Named(id.String())

	fs, err := vfs.New(posts, vfs.WithLogger(logger.Named("vfs")), vfs.WithClock(options.Clock))
	if err != nil {
		return nil, err
	}

	registry := cmd.NewRegistry()
	if err := builtin.InitBuiltin(registry); err != nil {
		return nil, err
	}

	env := map[string]string{
		"USER":    "user",
		"HOME":    "/",
		"SITE":    "hansbaker.com",
		"VERSION": buildinfo.Version,
	}
	maps.Copy(env, options.Env)

	t := &Terminal{
		id:       id,
		log:      logger,
		fs:       fs,
		registry: registry,
		metrics:  options.Metrics,
		clock:    options.Clock,
		history:  options.History,
		env:      env,
		width:    options.Width,
	}

	if t.metrics != nil {
		t.metrics.RecordSession()
		t.metrics.SetNodes(fs.Len())
	}
	t.log.Info("session created with %d posts", len(posts))

	return t, nil
}

// ID returns the session id.
func (t *Terminal) ID() string {
	return t.id.String()
}

// FS returns the session filesystem.
func (t *Terminal) FS() *vfs.VirtualFileSystem {
	return t.fs
}

// SetWidth updates the output width, e.g. after the host was resized.
func (t *Terminal) SetWidth(width int) {
	if width <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.width = width
}

// HandleCommand runs one line typed at path. Aliases are expanded before
// environment variables; stages separated by "|" feed each other's output.
func (t *Terminal) HandleCommand(ctx context.Context, path, input string) cmd.Result {
	if strings.TrimSpace(input) == "" {
		return cmd.EmptyError()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	started := time.Now()

	snapshot := slices.Clone(t.history)
	t.history = append(t.history, input)

	vars := maps.Clone(t.env)
	vars["PWD"] = path

	line := expandVars(cmd.ExpandAlias(input), vars)
	word, _ := cmd.Tokenize(line)

	res := t.pipeline(ctx, path, line, snapshot, vars)

	if t.metrics != nil {
		t.metrics.RecordCommand(metricName(word), res.Kind.String(), time.Since(started))
		t.metrics.SetNodes(t.fs.Len())
	}
	t.log.Debug("executed %q at %s: %s", line, path, res.Kind)

	return res
}

func (t *Terminal) pipeline(ctx context.Context, path, line string, history []string, vars map[string]string) cmd.Result {
	stages := splitPipeline(line)
	for _, stage := range stages {
		if stage == "" && len(stages) > 1 {
			return cmd.Errorf("parse error near `|'")
		}
	}

	var (
		stdin    string
		hasStdin bool
	)
	for i, stage := range stages {
		last := i == len(stages)-1

		word, args := cmd.Tokenize(stage)
		if word == cmd.History.String() && t.clearsHistory(args) {
			t.history = t.history[:0]
			if last {
				return cmd.Nothing()
			}
			stdin, hasStdin = "", true
			continue
		}

		cwd := t.fs.Locate(path)
		env := &cmd.Env{
			FS:       t.fs,
			Path:     t.fs.NodePath(cwd),
			Cwd:      cwd,
			Stdin:    stdin,
			HasStdin: hasStdin,
			TTY:      last,
			Width:    t.width,
			History:  history,
			Vars:     vars,
			Now:      t.clock,
		}

		res := t.registry.Execute(ctx, env, word, args)
		if last || res.IsError() {
			return res
		}

		stdin, hasStdin = "", true
		if res.Kind == cmd.KindOutput {
			stdin = res.Content.String()
		}
	}

	return cmd.Nothing()
}

// clearsHistory reports whether args ask history to clear itself. Invalid
// options are left to the history command to report.
func (t *Terminal) clearsHistory(args []string) bool {
	parsed := cmd.Parse(args)
	return parsed.Check(cmd.History, "c") == nil && parsed.Has('c')
}

// History returns up to the last MaxHistory lines, oldest first.
func (t *Terminal) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	start := max(len(t.history)-MaxHistory, 0)
	return slices.Clone(t.history[start:])
}

// HistoryMatches returns the history entries starting with prefix, oldest
// first. An empty prefix matches everything.
func (t *Terminal) HistoryMatches(prefix string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var matches []string
	for _, entry := range t.history {
		if strings.HasPrefix(entry, prefix) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// metricName keeps label cardinality bounded: unknown words are grouped.
func metricName(word string) string {
	if name := cmd.ParseName(word); name != cmd.Unknown {
		return name.String()
	}
	return cmd.Unknown.String()
}
