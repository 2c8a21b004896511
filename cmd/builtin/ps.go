package builtin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mwantia/webterm/cmd"
)

// Process is an entry of the simulated process table.
type Process struct {
	PID     int
	User    string
	CPU     float64
	Mem     float64
	Command string
}

// DefaultProcesses returns the services the site pretends to run.
func DefaultProcesses() []Process {
	return []Process{
		{PID: 1, User: "root", CPU: 2.3, Mem: 15.2, Command: "leptos-server"},
		{PID: 42, User: "app", CPU: 0.1, Mem: 8.7, Command: "blog-renderer"},
		{PID: 99, User: "app", CPU: 0.2, Mem: 3.1, Command: "terminal-sim"},
		{PID: 128, User: "app", CPU: 0.0, Mem: 2.5, Command: "wasm-hydrator"},
		{PID: 256, User: "app", CPU: 0.0, Mem: 1.8, Command: "rss-generator"},
	}
}

type PsCommand struct {
	processes []Process
}

func NewPsCommand(processes []Process) *PsCommand {
	return &PsCommand{processes: processes}
}

func (p *PsCommand) Name() cmd.Name {
	return cmd.Ps
}

func (p *PsCommand) Description() string {
	return "report a snapshot of the current processes"
}

func (p *PsCommand) Usage() string {
	return "ps [aux]"
}

func (p *PsCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	if len(raw) > 1 {
		return cmd.Errorf("ps: too many arguments")
	}

	detailed := false
	if len(raw) == 1 {
		if raw[0] != "aux" {
			return cmd.Errorf("ps: invalid argument -- '%s'\nUsage: ps [aux]", raw[0])
		}
		detailed = true
	}

	var lines []string
	if detailed {
		lines = append(lines, "USER       PID %CPU %MEM COMMAND")
		for _, proc := range p.processes {
			lines = append(lines, fmt.Sprintf("%-8s %5d %4.1f %4.1f %s", proc.User, proc.PID, proc.CPU, proc.Mem, proc.Command))
		}
	} else {
		lines = append(lines, "  PID COMMAND")
		for _, proc := range p.processes {
			lines = append(lines, fmt.Sprintf("%5d %s", proc.PID, proc.Command))
		}
	}

	return cmd.Text(strings.Join(lines, "\n"))
}

// signals accepted after a leading dash. Names are case-sensitive.
var signals = map[string]bool{
	"HUP": true, "INT": true, "QUIT": true, "ILL": true, "TRAP": true,
	"ABRT": true, "EMT": true, "FPE": true, "KILL": true,
	"1": true, "2": true, "3": true, "4": true, "5": true,
	"6": true, "7": true, "8": true, "9": true,
}

// answerPID gets a special farewell.
const answerPID = 42

type KillCommand struct {
	processes []Process
}

func NewKillCommand(processes []Process) *KillCommand {
	return &KillCommand{processes: processes}
}

func (k *KillCommand) Name() cmd.Name {
	return cmd.Kill
}

func (k *KillCommand) Description() string {
	return "send a signal to a process"
}

func (k *KillCommand) Usage() string {
	return "kill [-n signum] pid ..."
}

// Execute validates the signal and every pid. No process can actually be
// terminated.
func (k *KillCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	if len(raw) == 0 {
		return cmd.Errorf("kill: not enough arguments")
	}

	pids := raw
	if sig, ok := strings.CutPrefix(raw[0], "-"); ok {
		if !signals[sig] {
			if isAlpha(sig) {
				return cmd.Errorf("kill: unknown signal: SIG%s", strings.ToUpper(sig))
			}
			return cmd.Errorf("kill: usage: kill [-n signum] pid")
		}
		pids = raw[1:]
	}
	if len(pids) == 0 {
		return cmd.Errorf("kill: not enough arguments")
	}

	var collector cmd.Collector
	for _, arg := range pids {
		pid, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			collector.Fail("kill: illegal pid: %s", arg)
			continue
		}
		if !k.exists(int(pid)) {
			collector.Fail("kill: kill %d failed: no such process", pid)
			continue
		}
		if pid == answerPID {
			collector.Fail("Answer to everything terminated")
		}
		collector.Fail("kill: kill %d failed: operation not permitted", pid)
	}

	return collector.Result()
}

func (k *KillCommand) exists(pid int) bool {
	for _, proc := range k.processes {
		if proc.PID == pid {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
