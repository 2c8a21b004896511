package builtin

import (
	"context"

	"github.com/mwantia/webterm/cmd"
)

const helpText = `This is Hans Baker's personal website.  Use this terminal to navigate the site.
The commands should feel familiar:
    cat     concatenate files and print to the standard output
    cd      change directory (navigate site)
    clear   clear the terminal screen
    ls      list directory contents (sitemap)
    mines   minesweeper app
    pwd     print name of the current/working directory (current URL path)`

type HelpCommand struct {
}

func (h *HelpCommand) Name() cmd.Name      { return cmd.Help }
func (h *HelpCommand) Description() string { return "show this help" }
func (h *HelpCommand) Usage() string       { return "help" }

func (h *HelpCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	return cmd.Text(helpText)
}

type PwdCommand struct {
}

func (p *PwdCommand) Name() cmd.Name { return cmd.Pwd }
func (p *PwdCommand) Description() string {
	return "print name of the current/working directory (current URL path)"
}
func (p *PwdCommand) Usage() string { return "pwd" }

func (p *PwdCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	if len(raw) > 0 {
		return cmd.Errorf("pwd: too many arguments")
	}
	return cmd.Text(env.Path)
}

type WhoamiCommand struct {
}

func (w *WhoamiCommand) Name() cmd.Name      { return cmd.Whoami }
func (w *WhoamiCommand) Description() string { return "print effective user name" }
func (w *WhoamiCommand) Usage() string       { return "whoami" }

func (w *WhoamiCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	if len(raw) > 0 {
		return cmd.Errorf("usage: whoami")
	}
	if user := env.Vars["USER"]; user != "" {
		return cmd.Text(user)
	}
	return cmd.Text("user")
}

// ClearCommand succeeds silently; the host wipes its scrollback.
type ClearCommand struct {
}

func (c *ClearCommand) Name() cmd.Name      { return cmd.Clear }
func (c *ClearCommand) Description() string { return "clear the terminal screen" }
func (c *ClearCommand) Usage() string       { return "clear" }

func (c *ClearCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	return cmd.Nothing()
}

type SudoCommand struct {
}

func (s *SudoCommand) Name() cmd.Name      { return cmd.Sudo }
func (s *SudoCommand) Description() string { return "execute a command as another user" }
func (s *SudoCommand) Usage() string       { return "sudo command" }

func (s *SudoCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	return cmd.Errorf("user is not in the sudoers file. This incident will be reported.")
}

type MinesCommand struct {
}

func (m *MinesCommand) Name() cmd.Name      { return cmd.Mines }
func (m *MinesCommand) Description() string { return "minesweeper app" }
func (m *MinesCommand) Usage() string       { return "mines" }

func (m *MinesCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	return cmd.Redirect(MinesURL)
}
