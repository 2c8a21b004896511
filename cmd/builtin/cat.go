package builtin

import (
	"context"
	"errors"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
	"github.com/mwantia/webterm/render"
)

type CatCommand struct {
}

func (c *CatCommand) Name() cmd.Name {
	return cmd.Cat
}

func (c *CatCommand) Description() string {
	return "concatenate files and print to the standard output"
}

func (c *CatCommand) Usage() string {
	return "cat [file ...]"
}

// Execute prints every readable target, separated by newlines. Without
// targets it echoes its standard input.
func (c *CatCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	args := cmd.Parse(raw)
	if err := args.Check(cmd.Cat, ""); err != nil {
		return cmd.Fail(err)
	}

	if len(args.Targets) == 0 {
		if env.HasStdin {
			if env.Stdin == "" {
				return cmd.Nothing()
			}
			return cmd.Text(env.Stdin)
		}
		return cmd.Errorf("cat: missing operand")
	}

	var (
		collector cmd.Collector
		parts     []string
	)

	for _, target := range args.Targets {
		id, err := env.FS.Resolve(env.Cwd, target)
		if errors.Is(err, data.ErrNotDirectory) {
			collector.Fail("cat: %s: Not a directory", target)
			continue
		}
		if err != nil {
			collector.Fail("cat: %s: No such file or directory", target)
			continue
		}

		text, err := env.FS.ReadFile(id)
		switch {
		case err == nil:
			parts = append(parts, text)
		case errors.Is(err, data.ErrNotFile):
			collector.Fail("cat: %s: Is a directory", target)
		case errors.Is(err, data.ErrPermission):
			collector.Fail("cat: %s: Permission denied", target)
		default:
			collector.Fail("cat: %s: No such file or directory", target)
		}
	}

	if text := strings.Join(parts, "\n"); text != "" {
		collector.Write(render.Text(text))
	}
	return collector.Result()
}
