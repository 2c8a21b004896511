package cmd

import "sort"

// Name identifies a builtin command. Every Name except Unknown has exactly
// one registered Command.
type Name int

const (
	Unknown Name = iota
	Help
	Pwd
	Ls
	Cd
	Cat
	Clear
	Cp
	Date
	Echo
	History
	Mines
	Mkdir
	Mv
	Rm
	Touch
	Which
	Whoami
	Neofetch
	Uptime
	Ps
	Kill
	Sudo
)

var names = map[Name]string{
	Help:     "help",
	Pwd:      "pwd",
	Ls:       "ls",
	Cd:       "cd",
	Cat:      "cat",
	Clear:    "clear",
	Cp:       "cp",
	Date:     "date",
	Echo:     "echo",
	History:  "history",
	Mines:    "mines",
	Mkdir:    "mkdir",
	Mv:       "mv",
	Rm:       "rm",
	Touch:    "touch",
	Which:    "which",
	Whoami:   "whoami",
	Neofetch: "neofetch",
	Uptime:   "uptime",
	Ps:       "ps",
	Kill:     "kill",
	Sudo:     "sudo",
}

var byName = func() map[string]Name {
	m := make(map[string]Name, len(names))
	for n, s := range names {
		m[s] = n
	}
	return m
}()

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "unknown"
}

// ParseName maps a command word to its Name, or Unknown.
func ParseName(s string) Name {
	if n, ok := byName[s]; ok {
		return n
	}
	return Unknown
}

// Names returns every builtin Name in declaration order.
func Names() []Name {
	all := make([]Name, 0, len(names))
	for n := Help; n <= Sudo; n++ {
		all = append(all, n)
	}
	return all
}

// Listed returns the sorted command words offered to users in help and
// completion. sudo works but is not advertised.
func Listed() []string {
	listed := make([]string, 0, len(names))
	for n, s := range names {
		if n != Sudo {
			listed = append(listed, s)
		}
	}
	sort.Strings(listed)
	return listed
}
