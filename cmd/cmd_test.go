package cmd_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/render"
)

type stubCommand struct {
	name cmd.Name
	out  string
}

func (s *stubCommand) Name() cmd.Name      { return s.name }
func (s *stubCommand) Description() string { return "stub" }
func (s *stubCommand) Usage() string       { return s.name.String() }

func (s *stubCommand) Execute(_ context.Context, _ *cmd.Env, args []string) cmd.Result {
	return cmd.Text(s.out + strings.Join(args, ","))
}

func TestParse(t *testing.T) {
	args := cmd.Parse([]string{"-la", "~/blog", "--r", "~", "cv", "-"})

	if string(args.Options) != "lar" {
		t.Errorf("expected options 'lar', got %q", string(args.Options))
	}
	if got := strings.Join(args.Targets, ","); got != "/blog,/,cv" {
		t.Errorf("expected targets /blog,/,cv, got %s", got)
	}
	if len(args.Raw) != 6 {
		t.Errorf("expected 6 raw arguments, got %d", len(args.Raw))
	}
	if !args.Has('r') || args.Has('f') {
		t.Errorf("unexpected Has results for %q", string(args.Options))
	}
}

func TestArgs_Check(t *testing.T) {
	tests := map[string]struct {
		command  cmd.Name
		raw      []string
		allowed  string
		expected string
	}{
		"no options allowed": {
			command:  cmd.Cat,
			raw:      []string{"-n", "file"},
			expected: "cat: invalid option -- 'n'\nThis version of cat doesn't support any options",
		},
		"two options": {
			command:  cmd.Ls,
			raw:      []string{"-alh"},
			allowed:  "al",
			expected: "ls: invalid option -- 'h'\nThis version of ls only supports options 'a' and 'l'",
		},
		"single option": {
			command:  cmd.History,
			raw:      []string{"-x"},
			allowed:  "c",
			expected: "history: invalid option -- 'x'\nThis version of history only supports option 'c'",
		},
		"valid": {
			command: cmd.Rm,
			raw:     []string{"-rf", "dir"},
			allowed: "rf",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := cmd.Parse(tc.raw).Check(tc.command, tc.allowed)
			if tc.expected == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, cmd.ErrInvalidOption) {
				t.Fatalf("expected ErrInvalidOption, got %v", err)
			}
			if err.Error() != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, err.Error())
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	word, args := cmd.Tokenize("  ls   -la  /blog ")
	if word != "ls" {
		t.Errorf("expected ls, got %q", word)
	}
	if strings.Join(args, "|") != "-la|/blog" {
		t.Errorf("expected [-la /blog], got %v", args)
	}

	if word, args := cmd.Tokenize("   "); word != "" || args != nil {
		t.Errorf("expected empty tokenization, got %q %v", word, args)
	}
}

func TestParseName(t *testing.T) {
	for _, n := range cmd.Names() {
		if got := cmd.ParseName(n.String()); got != n {
			t.Errorf("expected %s to round-trip, got %s", n, got)
		}
	}
	if got := cmd.ParseName("nonexistent"); got != cmd.Unknown {
		t.Errorf("expected Unknown, got %s", got)
	}

	listed := cmd.Listed()
	for _, word := range listed {
		if word == "sudo" {
			t.Errorf("expected sudo to stay unlisted")
		}
	}
	if len(listed) != len(cmd.Names())-1 {
		t.Errorf("expected %d listed commands, got %d", len(cmd.Names())-1, len(listed))
	}
}

func TestExpandAlias(t *testing.T) {
	tests := map[string]string{
		"ll":              "ls -la",
		"la":              "ls -a",
		"h":               "history",
		"ll /blog":        "ls -la /blog",
		"h 5":             "history 5",
		"  la  ":          "ls -a",
		"lls":             "lls",
		"regular_command": "regular_command",
		"echo ll":         "echo ll",
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			if got := cmd.ExpandAlias(input); got != expected {
				t.Errorf("expected %q, got %q", expected, got)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	ctx := t.Context()
	registry := cmd.NewRegistry()

	if err := registry.Register(&stubCommand{name: cmd.Pwd, out: "pwd:"}); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if err := registry.Register(&stubCommand{name: cmd.Pwd}); err == nil {
		t.Errorf("expected duplicate registration to fail")
	}
	if err := registry.Register(&stubCommand{name: cmd.Unknown}); err == nil {
		t.Errorf("expected unknown registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Errorf("expected nil registration to fail")
	}

	res := registry.Execute(ctx, &cmd.Env{}, "pwd", []string{"a", "b"})
	if res.Kind != cmd.KindOutput || res.String() != "pwd:a,b" {
		t.Errorf("expected output 'pwd:a,b', got %s %q", res.Kind, res.String())
	}

	res = registry.Execute(ctx, &cmd.Env{}, "frobnicate", nil)
	if res.Kind != cmd.KindError || res.String() != "command not found: frobnicate" {
		t.Errorf("expected command not found, got %s %q", res.Kind, res.String())
	}

	registry.SetFallback(func(word string) cmd.Command {
		return &stubCommand{name: cmd.Unknown, out: "fallback " + word}
	})
	res = registry.Execute(ctx, &cmd.Env{}, "frobnicate", nil)
	if res.String() != "fallback frobnicate" {
		t.Errorf("expected fallback output, got %q", res.String())
	}

	if res := registry.Execute(ctx, &cmd.Env{}, "", nil); res.Kind != cmd.KindEmptyError {
		t.Errorf("expected empty error, got %s", res.Kind)
	}

	if err := registry.Unregister(cmd.Pwd); err != nil {
		t.Fatalf("failed to unregister: %v", err)
	}
	if _, err := registry.Get(cmd.Pwd); !errors.Is(err, cmd.ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
	if err := registry.Unregister(cmd.Pwd); err == nil {
		t.Errorf("expected second unregister to fail")
	}
}

func TestCollector(t *testing.T) {
	t.Run("silent", func(t *testing.T) {
		var c cmd.Collector
		if res := c.Result(); res.Kind != cmd.KindNothing {
			t.Errorf("expected nothing, got %s", res.Kind)
		}
	})

	t.Run("output", func(t *testing.T) {
		var c cmd.Collector
		c.Write(render.Text("one"))
		c.Write(render.Text("two"))
		res := c.Result()
		if res.Kind != cmd.KindOutput || res.String() != "one\ntwo" {
			t.Errorf("expected output 'one\\ntwo', got %s %q", res.Kind, res.String())
		}
	})

	t.Run("errors before output", func(t *testing.T) {
		var c cmd.Collector
		c.Write(render.Text("content"))
		c.Fail("cat: %s: No such file or directory", "a")
		c.Fail("cat: %s: Is a directory", "b")
		res := c.Result()
		expected := "cat: a: No such file or directory\ncat: b: Is a directory\ncontent"
		if res.Kind != cmd.KindError || res.String() != expected {
			t.Errorf("expected error %q, got %s %q", expected, res.Kind, res.String())
		}
	})
}

func TestResult(t *testing.T) {
	if !cmd.Redirect("https://mines.hansbaker.com").IsExternal() {
		t.Errorf("expected external redirect")
	}
	if cmd.Redirect("/blog").IsExternal() {
		t.Errorf("expected internal redirect")
	}
	if !cmd.Errorf("x").IsError() || !cmd.EmptyError().IsError() || cmd.Nothing().IsError() {
		t.Errorf("unexpected IsError results")
	}
	if got := cmd.Fail(cmd.Usagef("cd: too many arguments")).String(); got != "cd: too many arguments" {
		t.Errorf("expected usage message, got %q", got)
	}
}
