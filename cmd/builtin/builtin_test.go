package builtin_test

import (
	"testing"
	"time"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/cmd/builtin"
	"github.com/mwantia/webterm/log"
	"github.com/mwantia/webterm/vfs"
)

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

type testShell struct {
	t        *testing.T
	fs       *vfs.VirtualFileSystem
	registry *cmd.Registry
	history  []string
	tty      bool
	stdin    *string
}

func newTestShell(t *testing.T, posts ...string) *testShell {
	t.Helper()

	fs, err := vfs.New(posts, vfs.WithLogger(log.Discard()), vfs.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("failed to create filesystem: %v", err)
	}

	registry := cmd.NewRegistry()
	if err := builtin.InitBuiltin(registry); err != nil {
		t.Fatalf("failed to init builtins: %v", err)
	}

	return &testShell{t: t, fs: fs, registry: registry, tty: true}
}

// run executes line as if typed at path.
func (s *testShell) run(path, line string) cmd.Result {
	s.t.Helper()

	cwd := s.fs.Locate(path)
	env := &cmd.Env{
		FS:      s.fs,
		Path:    s.fs.NodePath(cwd),
		Cwd:     cwd,
		TTY:     s.tty,
		Width:   80,
		History: s.history,
		Vars:    map[string]string{"USER": "user"},
		Now:     func() time.Time { return fixedNow },
	}
	if s.stdin != nil {
		env.Stdin, env.HasStdin = *s.stdin, true
	}

	word, args := cmd.Tokenize(line)
	return s.registry.Execute(s.t.Context(), env, word, args)
}

func (s *testShell) expect(path, line string, kind cmd.Kind, text string) {
	s.t.Helper()

	res := s.run(path, line)
	if res.Kind != kind {
		s.t.Fatalf("%s: expected kind %s, got %s (%q)", line, kind, res.Kind, res.String())
	}
	if res.String() != text {
		s.t.Errorf("%s: expected %q, got %q", line, text, res.String())
	}
}

func (s *testShell) exists(path string) bool {
	_, err := s.fs.Resolve(s.fs.Root(), path)
	return err == nil
}

func TestInitBuiltin_RegistersEveryName(t *testing.T) {
	registry := cmd.NewRegistry()
	if err := builtin.InitBuiltin(registry); err != nil {
		t.Fatalf("failed to init builtins: %v", err)
	}

	for _, name := range cmd.Names() {
		c, err := registry.Get(name)
		if err != nil {
			t.Errorf("expected %s to be registered: %v", name, err)
			continue
		}
		if c.Description() == "" || c.Usage() == "" {
			t.Errorf("expected %s to describe itself", name)
		}
	}

	if err := builtin.InitBuiltin(registry); err == nil {
		t.Errorf("expected second init to fail on duplicates")
	}
}
