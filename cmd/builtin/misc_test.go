package builtin_test

import (
	"strings"
	"testing"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/cmd/builtin"
	"github.com/mwantia/webterm/render"
)

func TestEcho(t *testing.T) {
	s := newTestShell(t)

	s.expect("/", "echo hello   world", cmd.KindOutput, "hello world")
	s.expect("/", `echo "quoted text"`, cmd.KindOutput, "quoted text")
	s.expect("/", "echo", cmd.KindOutput, "")
	s.expect("/", `echo "hi $(whoami)"`, cmd.KindError, "echo: command substitution not supported")
}

func TestHistory(t *testing.T) {
	s := newTestShell(t)
	s.history = []string{"ls", "pwd", "echo hi"}

	s.expect("/", "history", cmd.KindOutput, "   1  ls\n   2  pwd\n   3  echo hi")
	s.expect("/", "history 2", cmd.KindOutput, "   2  pwd\n   3  echo hi")
	s.expect("/", "history 10", cmd.KindOutput, "   1  ls\n   2  pwd\n   3  echo hi")
	s.expect("/", "history 0", cmd.KindNothing, "")
	s.expect("/", "history -c", cmd.KindNothing, "")
	s.expect("/", "history abc", cmd.KindError, "history: abc: numeric argument required")
	s.expect("/", "history 1 2", cmd.KindError, "history: too many arguments")
	s.expect("/", "history -x", cmd.KindError, "history: invalid option -- 'x'\nThis version of history only supports option 'c'")

	s.history = nil
	s.expect("/", "history", cmd.KindNothing, "")
}

func TestWhich(t *testing.T) {
	s := newTestShell(t)

	tests := []struct {
		line     string
		kind     cmd.Kind
		expected string
	}{
		{"which ll", cmd.KindOutput, "ll: aliased to ls -la"},
		{"which cd", cmd.KindOutput, "cd: shell builtin"},
		{"which ls", cmd.KindOutput, "/bin/ls"},
		{"which neofetch touch", cmd.KindOutput, "/usr/local/bin/neofetch\n/usr/bin/touch"},
		{"which ./mines.sh", cmd.KindOutput, "./mines.sh"},
		{"which ./thanks.txt", cmd.KindError, "./thanks.txt not found"},
		{"which ls nope", cmd.KindError, "/bin/ls\nnope not found"},
		{"which", cmd.KindError, "which: missing argument"},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			s.expect("/", tc.line, tc.kind, tc.expected)
		})
	}
}

func TestPs(t *testing.T) {
	s := newTestShell(t)

	res := s.run("/", "ps")
	lines := strings.Split(res.String(), "\n")
	if lines[0] != "  PID COMMAND" || lines[1] != "    1 leptos-server" {
		t.Errorf("unexpected ps output: %q", res.String())
	}
	if len(lines) != len(builtin.DefaultProcesses())+1 {
		t.Errorf("expected %d lines, got %d", len(builtin.DefaultProcesses())+1, len(lines))
	}

	res = s.run("/", "ps aux")
	lines = strings.Split(res.String(), "\n")
	if lines[0] != "USER       PID %CPU %MEM COMMAND" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[2] != "app         42  0.1  8.7 blog-renderer" {
		t.Errorf("unexpected row: %q", lines[2])
	}

	s.expect("/", "ps -ef", cmd.KindError, "ps: invalid argument -- '-ef'\nUsage: ps [aux]")
	s.expect("/", "ps aux x", cmd.KindError, "ps: too many arguments")
}

func TestKill(t *testing.T) {
	s := newTestShell(t)

	tests := []struct {
		line     string
		expected string
	}{
		{"kill", "kill: not enough arguments"},
		{"kill -9", "kill: not enough arguments"},
		{"kill 1", "kill: kill 1 failed: operation not permitted"},
		{"kill -9 99", "kill: kill 99 failed: operation not permitted"},
		{"kill -KILL 99", "kill: kill 99 failed: operation not permitted"},
		{"kill -kill 99", "kill: unknown signal: SIGKILL"},
		{"kill -hup 1", "kill: unknown signal: SIGHUP"},
		{"kill 42", "Answer to everything terminated\nkill: kill 42 failed: operation not permitted"},
		{"kill 7", "kill: kill 7 failed: no such process"},
		{"kill abc", "kill: illegal pid: abc"},
		{"kill -FOO 1", "kill: unknown signal: SIGFOO"},
		{"kill -99 1", "kill: usage: kill [-n signum] pid"},
		{"kill 7 1", "kill: kill 7 failed: no such process\nkill: kill 1 failed: operation not permitted"},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			s.expect("/", tc.line, cmd.KindError, tc.expected)
		})
	}
}

func TestDate(t *testing.T) {
	s := newTestShell(t)

	s.expect("/", "date", cmd.KindOutput, "Thu Jan 02 03:04:05 UTC 2025")
	s.expect("/", "date +%Y-%m-%d", cmd.KindOutput, "2025-01-02")
	s.expect("/", `date "+%Y-%m-%d %H:%M:%S"`, cmd.KindOutput, "2025-01-02 03:04:05")
	s.expect("/", "date +%s", cmd.KindOutput, "1735787045")
	s.expect("/", "date +%F", cmd.KindOutput, "2025-01-02")
	s.expect("/", "date %Y", cmd.KindError, "date: invalid format (must start with +)")
	s.expect("/", "date +%Y +%m", cmd.KindError, "date: too many arguments")
}

func TestUptime(t *testing.T) {
	s := newTestShell(t)

	res := s.run("/", "uptime")
	if res.Kind != cmd.KindOutput {
		t.Fatalf("expected output, got %s", res.Kind)
	}
	if !strings.HasPrefix(res.String(), "03:04:05 up 42 days, 13:37, load average: ") {
		t.Errorf("unexpected uptime: %q", res.String())
	}
}

func TestSimpleCommands(t *testing.T) {
	s := newTestShell(t, "hello")

	s.expect("/blog/hello", "pwd", cmd.KindOutput, "/blog/hello")
	s.expect("/", "pwd x", cmd.KindError, "pwd: too many arguments")
	s.expect("/", "whoami", cmd.KindOutput, "user")
	s.expect("/", "whoami x", cmd.KindError, "usage: whoami")
	s.expect("/", "clear", cmd.KindNothing, "")
	s.expect("/", "sudo rm -rf /", cmd.KindError, "user is not in the sudoers file. This incident will be reported.")
	s.expect("/", "mines", cmd.KindRedirect, builtin.MinesURL)

	res := s.run("/", "help")
	if !strings.HasPrefix(res.String(), "This is Hans Baker's personal website.") {
		t.Errorf("unexpected help: %q", res.String())
	}
}

func TestNeofetch(t *testing.T) {
	s := newTestShell(t)

	res := s.run("/", "neofetch")
	if res.Kind != cmd.KindOutput {
		t.Fatalf("expected output, got %s", res.Kind)
	}
	if !strings.Contains(res.String(), "Hans Baker") {
		t.Errorf("expected the name in neofetch output")
	}

	var links int
	for _, line := range res.Content {
		for _, span := range line {
			if span.Href != "" {
				links++
			}
			if span.Style == render.StyleAccent && span.Text == "" {
				t.Errorf("expected accent spans to carry a label")
			}
		}
	}
	if links == 0 {
		t.Errorf("expected at least one link")
	}
}

func TestUnknown(t *testing.T) {
	s := newTestShell(t, "hello")

	tests := []struct {
		path, line string
		kind       cmd.Kind
		expected   string
	}{
		{"/", "./mines.sh", cmd.KindRedirect, builtin.MinesURL},
		{"/", "mines.sh", cmd.KindError, "command not found: mines.sh"},
		{"/", "blog", cmd.KindRedirect, "/blog"},
		{"/", "blog/hello", cmd.KindRedirect, "/blog/hello"},
		{"/blog", "..", cmd.KindRedirect, "/"},
		{"/blog", ".", cmd.KindNothing, ""},
		{"/blog", "./nav.rs", cmd.KindRedirect, "/blog"},
		{"/blog", "nav.rs", cmd.KindError, "command not found: nav.rs"},
		{"/", "./thanks.txt", cmd.KindError, "permission denied: ./thanks.txt"},
		{"/", "./thanks.txt/", cmd.KindError, "not a directory: ./thanks.txt/"},
		{"/", "thanks.txt", cmd.KindError, "command not found: thanks.txt"},
		{"/", "foo", cmd.KindError, "command not found: foo"},
		{"/", "blog extra", cmd.KindError, "command not found: blog"},
	}

	for _, tc := range tests {
		t.Run(tc.path+" "+tc.line, func(t *testing.T) {
			s.expect(tc.path, tc.line, tc.kind, tc.expected)
		})
	}
}
