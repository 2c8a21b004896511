package data

import "strings"

// ResolvePath maps a target relative to base onto a canonical absolute path.
// Excess ".." segments clamp at the root.
func ResolvePath(base, target string) string {
	var stack []string

	for strings.HasPrefix(target, "./") {
		target = target[2:]
	}

	switch {
	case target == "~" || strings.HasPrefix(target, "~/"):
		target = strings.TrimPrefix(target, "~")
	case strings.HasPrefix(target, "/"):
	default:
		for _, segment := range strings.Split(base, "/") {
			if segment != "" && segment != "." {
				stack = append(stack, segment)
			}
		}
	}

	target = strings.TrimRight(target, "/")

	for _, segment := range strings.Split(target, "/") {
		switch segment {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}

	return "/" + strings.Join(stack, "/")
}

// SplitPath splits target at its last separator into a parent path and a
// base name. Trailing separators are ignored. A parent of "" means the
// current directory.
func SplitPath(target string) (parent, name string) {
	trimmed := strings.TrimRight(target, "/")
	if trimmed == "" {
		if strings.HasPrefix(target, "/") {
			return "/", ""
		}
		return "", ""
	}

	idx := strings.LastIndex(trimmed, "/")
	switch {
	case idx < 0:
		return "", trimmed
	case idx == 0:
		return "/", trimmed[1:]
	default:
		return trimmed[:idx], trimmed[idx+1:]
	}
}
