// Package builtin holds the terminal's builtin commands.
package builtin

import (
	"github.com/mwantia/webterm/cmd"
)

// MinesURL is where the minesweeper app lives.
const MinesURL = "https://mines.hansbaker.com"

// InitBuiltin registers every builtin and the unknown-command fallback.
func InitBuiltin(registry *cmd.Registry) error {
	processes := DefaultProcesses()

	commands := []cmd.Command{
		&HelpCommand{},
		&PwdCommand{},
		&LsCommand{},
		&CdCommand{},
		&CatCommand{},
		&ClearCommand{},
		&CpCommand{},
		&DateCommand{},
		&EchoCommand{},
		&HistoryCommand{},
		&MinesCommand{},
		&MkdirCommand{},
		&MvCommand{},
		&RmCommand{},
		&TouchCommand{},
		&WhichCommand{},
		&WhoamiCommand{},
		&NeofetchCommand{},
		&UptimeCommand{},
		NewPsCommand(processes),
		NewKillCommand(processes),
		&SudoCommand{},
	}

	for _, c := range commands {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	registry.SetFallback(func(word string) cmd.Command {
		return NewUnknownCommand(word)
	})

	return nil
}
