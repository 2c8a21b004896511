package cmd

import "strings"

// Parse splits raw arguments into option characters and targets. Every
// argument starting with "-" contributes its characters (dashes removed) to
// the options. "~" and "~/x" are rewritten to "/" and "/x".
func Parse(raw []string) *Args {
	args := &Args{
		Raw: raw,
	}

	for _, arg := range raw {
		if strings.HasPrefix(arg, "-") {
			for _, c := range arg {
				if c != '-' {
					args.Options = append(args.Options, c)
				}
			}
			continue
		}

		switch {
		case arg == "~":
			arg = "/"
		case strings.HasPrefix(arg, "~/"):
			arg = arg[1:]
		}
		args.Targets = append(args.Targets, arg)
	}

	return args
}

// Tokenize splits a command line on whitespace into the command word and
// its arguments.
func Tokenize(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
