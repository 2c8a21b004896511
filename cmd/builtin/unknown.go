package builtin

import (
	"context"
	"errors"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/mwantia/webterm/data"
)

// minesScript runs the minesweeper app when executed with a path.
const minesScript = "mines.sh"

// UnknownCommand treats an unrecognized command word as a path. Directories
// are navigated to; executables run when named with a path prefix such as
// "./mines.sh".
type UnknownCommand struct {
	word string
}

func NewUnknownCommand(word string) *UnknownCommand {
	return &UnknownCommand{word: word}
}

func (u *UnknownCommand) Name() cmd.Name      { return cmd.Unknown }
func (u *UnknownCommand) Description() string { return "run a path" }
func (u *UnknownCommand) Usage() string       { return "./path" }

func (u *UnknownCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	word := u.word
	notFound := cmd.Errorf("command not found: %s", word)

	id, err := env.FS.Resolve(env.Cwd, word)
	if errors.Is(err, data.ErrNotDirectory) {
		return cmd.Errorf("not a directory: %s", word)
	}
	if err != nil {
		return notFound
	}
	node, err := env.FS.Stat(id)
	if err != nil {
		return notFound
	}

	withPath := strings.Contains(word, "/")
	executable := node.IsExecutable() && withPath

	if len(raw) > 0 && !executable {
		return notFound
	}
	if node.Name == minesScript && executable {
		return cmd.Redirect(MinesURL)
	}

	switch node.Type {
	case data.NodeTypeDirectory:
		if id == env.Cwd {
			return cmd.Nothing()
		}
		return cmd.Redirect(env.FS.NodePath(id))
	case data.NodeTypeFile:
		if node.Content.IsNav() && withPath {
			return cmd.Redirect(node.Content.Target)
		}
		if withPath {
			return cmd.Errorf("permission denied: %s", word)
		}
		return notFound
	default:
		return notFound
	}
}
