package builtin

import (
	"context"
	"strings"

	"github.com/mwantia/webterm/cmd"
)

type EchoCommand struct {
}

func (e *EchoCommand) Name() cmd.Name {
	return cmd.Echo
}

func (e *EchoCommand) Description() string {
	return "display a line of text"
}

func (e *EchoCommand) Usage() string {
	return "echo [text ...]"
}

// Execute joins its arguments with single spaces. Double quotes are
// dropped; command substitution is rejected.
func (e *EchoCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	parts := make([]string, len(raw))
	for i, arg := range raw {
		parts[i] = strings.ReplaceAll(arg, `"`, "")
	}

	message := strings.Join(parts, " ")
	if strings.Contains(message, "$(") {
		return cmd.Errorf("echo: command substitution not supported")
	}

	return cmd.Text(message)
}
