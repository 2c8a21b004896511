package webterm

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/log"
	"github.com/mwantia/webterm/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"
)

func newTestTerminal(t *testing.T, opts ...TerminalOption) *Terminal {
	t.Helper()

	clock := func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	opts = append([]TerminalOption{WithLogger(log.Discard()), WithClock(clock)}, opts...)

	term, err := New([]string{"hello", "world"}, opts...)
	if err != nil {
		t.Fatalf("failed to create terminal: %v", err)
	}
	return term
}

func TestTerminal_Scenarios(t *testing.T) {
	term := newTestTerminal(t)
	ctx := t.Context()

	tests := []struct {
		path, line string
		kind       cmd.Kind
		expected   string
	}{
		{"/blog", "cd ..", cmd.KindRedirect, "/"},
		{"/", "cd ..", cmd.KindNothing, ""},
		{"/", "cat nonexistent.txt", cmd.KindError, "cat: nonexistent.txt: No such file or directory"},
		{"/", "which ll", cmd.KindOutput, "ll: aliased to ls -la"},
		{"/", `echo "hi $(whoami)"`, cmd.KindError, "echo: command substitution not supported"},
		{"/", "mines", cmd.KindRedirect, "https://mines.hansbaker.com"},
		{"/", "nope", cmd.KindError, "command not found: nope"},
	}

	for _, tc := range tests {
		t.Run(tc.path+" "+tc.line, func(t *testing.T) {
			res := term.HandleCommand(ctx, tc.path, tc.line)
			if res.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, res.Kind)
			}
			if res.String() != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, res.String())
			}
		})
	}
}

func TestTerminal_EmptyInput(t *testing.T) {
	term := newTestTerminal(t)

	for _, input := range []string{"", "   ", "\t"} {
		if res := term.HandleCommand(t.Context(), "/", input); res.Kind != cmd.KindEmptyError {
			t.Errorf("expected empty error for %q, got %s", input, res.Kind)
		}
	}
	if n := len(term.History()); n != 0 {
		t.Errorf("expected no history entries, got %d", n)
	}
}

func TestTerminal_History(t *testing.T) {
	term := newTestTerminal(t, WithHistory([]string{"ls", "pwd", "echo hi"}))
	ctx := t.Context()

	res := term.HandleCommand(ctx, "/", "history")
	assert.Equal(t, res.String(), "   1  ls\n   2  pwd\n   3  echo hi")

	res = term.HandleCommand(ctx, "/", "history 2")
	assert.Equal(t, res.String(), "   3  echo hi\n   4  history")

	res = term.HandleCommand(ctx, "/", "h 1")
	assert.Equal(t, res.String(), "   5  history 2")

	res = term.HandleCommand(ctx, "/", "history -c")
	assert.Equal(t, res.Kind, cmd.KindNothing)
	assert.Equal(t, len(term.History()), 0)

	res = term.HandleCommand(ctx, "/", "history")
	assert.Equal(t, res.Kind, cmd.KindNothing)
	assert.DeepEqual(t, term.History(), []string{"history"})
}

func TestTerminal_HistoryCap(t *testing.T) {
	term := newTestTerminal(t)

	for i := range MaxHistory + 20 {
		term.HandleCommand(t.Context(), "/", fmt.Sprintf("echo %d", i))
	}

	history := term.History()
	assert.Equal(t, len(history), MaxHistory)
	assert.Equal(t, history[0], "echo 20")
	assert.Equal(t, history[MaxHistory-1], "echo 119")
}

func TestTerminal_HistoryMatches(t *testing.T) {
	term := newTestTerminal(t, WithHistory([]string{"ls", "echo a", "cd blog", "echo b"}))

	assert.DeepEqual(t, term.HistoryMatches("ec"), []string{"echo a", "echo b"})
	assert.Equal(t, len(term.HistoryMatches("")), 4)
	assert.Equal(t, len(term.HistoryMatches("rm")), 0)
}

func TestTerminal_Aliases(t *testing.T) {
	term := newTestTerminal(t)
	ctx := t.Context()

	res := term.HandleCommand(ctx, "/", "la")
	if !strings.HasPrefix(res.String(), ".  ..  .zshrc  blog") {
		t.Errorf("expected la to list hidden entries, got %q", res.String())
	}

	res = term.HandleCommand(ctx, "/", "ll /blog")
	lines := strings.Split(res.String(), "\n")
	assert.Equal(t, len(lines), 5)
	assert.Assert(t, strings.HasSuffix(lines[2], " hello"))
}

func TestTerminal_Variables(t *testing.T) {
	term := newTestTerminal(t, WithEnv("EDITOR", "vim"))
	ctx := t.Context()

	tests := map[string]struct {
		path, line, expected string
	}{
		"seeded":    {"/", "echo $USER at $SITE", "user at hansbaker.com"},
		"home":      {"/", "echo $HOME", "/"},
		"pwd":       {"/blog", "echo $PWD", "/blog"},
		"custom":    {"/", "echo $EDITOR", "vim"},
		"unbound":   {"/", "echo [$NOPE]", "[]"},
		"literal":   {"/", "echo $ and $-", "$ and $-"},
		"adjacent":  {"/", "echo $USER$USER", "useruser"},
		"alias arg": {"/blog", "ll $PWD", ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := term.HandleCommand(ctx, tc.path, tc.line)
			if tc.expected == "" {
				if res.IsError() {
					t.Errorf("expected success, got %q", res.String())
				}
				return
			}
			assert.Equal(t, res.String(), tc.expected)
		})
	}

	// The raw line is recorded, not its expansion
	history := term.History()
	assert.Equal(t, history[0], "echo $USER at $SITE")
}

func TestTerminal_WithEnvOverridesUser(t *testing.T) {
	term := newTestTerminal(t, WithEnv("USER", "guest"))

	res := term.HandleCommand(t.Context(), "/", "whoami")
	assert.Equal(t, res.String(), "guest")
}

func TestTerminal_Pipeline(t *testing.T) {
	term := newTestTerminal(t)
	ctx := t.Context()

	res := term.HandleCommand(ctx, "/", "ls | cat")
	assert.Equal(t, res.Kind, cmd.KindOutput)
	assert.Equal(t, res.String(), "blog\ncv\nmines.sh\nnav.rs\nthanks.txt")

	res = term.HandleCommand(ctx, "/", "echo piped | cat")
	assert.Equal(t, res.String(), "piped")

	res = term.HandleCommand(ctx, "/", "cat nope | cat")
	assert.Equal(t, res.Kind, cmd.KindError)
	assert.Equal(t, res.String(), "cat: nope: No such file or directory")

	res = term.HandleCommand(ctx, "/", "ls |")
	assert.Equal(t, res.Kind, cmd.KindError)

	res = term.HandleCommand(ctx, "/", "clear | cat")
	assert.Equal(t, res.Kind, cmd.KindNothing)
}

func TestTerminal_MutationsPersist(t *testing.T) {
	term := newTestTerminal(t)
	ctx := t.Context()

	assert.Equal(t, term.HandleCommand(ctx, "/", "mkdir projects").Kind, cmd.KindNothing)
	assert.Equal(t, term.HandleCommand(ctx, "/", "touch projects/todo.txt").Kind, cmd.KindNothing)
	assert.Equal(t, term.HandleCommand(ctx, "/projects", "ls").String(), "todo.txt")

	// A removed page falls back to its nearest existing ancestor
	assert.Equal(t, term.HandleCommand(ctx, "/", "rm -r projects").Kind, cmd.KindNothing)
	assert.Equal(t, term.HandleCommand(ctx, "/projects", "pwd").String(), "/")
	assert.Equal(t, term.HandleCommand(ctx, "/blog/missing", "pwd").String(), "/blog")
}

func TestTerminal_SessionsAreIsolated(t *testing.T) {
	a := newTestTerminal(t)
	b := newTestTerminal(t)

	a.HandleCommand(t.Context(), "/", "touch mine.txt")

	res := b.HandleCommand(t.Context(), "/", "cat mine.txt")
	assert.Equal(t, res.Kind, cmd.KindError)
	assert.Assert(t, a.ID() != b.ID())
}

func TestTerminal_Width(t *testing.T) {
	term := newTestTerminal(t, WithWidth(20))

	res := term.HandleCommand(t.Context(), "/", "ls")
	assert.Assert(t, len(res.Content) > 1)

	term.SetWidth(200)
	res = term.HandleCommand(t.Context(), "/", "ls")
	assert.Equal(t, len(res.Content), 1)
}

func TestTerminal_Options(t *testing.T) {
	tests := map[string]TerminalOption{
		"zero width":  WithWidth(0),
		"pwd binding": WithEnv("PWD", "/"),
		"bad name":    WithEnv("A-B", "x"),
		"nil clock":   WithClock(nil),
		"nil logger":  WithLogger(nil),
	}

	for name, opt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(nil, WithLogger(log.Discard()), opt); err == nil {
				t.Errorf("expected option error")
			}
		})
	}
}

func TestTerminal_Metrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	term := newTestTerminal(t, WithMetrics(recorder))
	ctx := t.Context()

	term.HandleCommand(ctx, "/", "ls")
	term.HandleCommand(ctx, "/", "ls")
	term.HandleCommand(ctx, "/", "nope")

	count, err := testutil.GatherAndCount(recorder.Registry(), "webterm_commands_total")
	if err != nil {
		t.Fatalf("failed to gather: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 series, got %d", count)
	}
}

func TestExpandVars(t *testing.T) {
	vars := map[string]string{"A": "1", "B_2": "two"}

	tests := map[string]string{
		"plain":       "plain",
		"$A":          "1",
		"x$A.y":       "x1.y",
		"$B_2$A":      "two1",
		"$":           "$",
		"$(cmd)":      "$(cmd)",
		"cost: $5":    "cost: ",
		"$missing ok": " ok",
	}

	for input, expected := range tests {
		if got := expandVars(input, vars); got != expected {
			t.Errorf("%q: expected %q, got %q", input, expected, got)
		}
	}
}
