package webterm

import "strings"

// expandVars replaces every $NAME with its bound value. Unbound names expand
// to nothing; a "$" not followed by a name character is kept.
func expandVars(line string, vars map[string]string) string {
	if !strings.Contains(line, "$") {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line))

	for i := 0; i < len(line); {
		if line[i] != '$' {
			sb.WriteByte(line[i])
			i++
			continue
		}

		end := i + 1
		for end < len(line) && isNameByte(line[end]) {
			end++
		}
		if end == i+1 {
			sb.WriteByte('$')
			i++
			continue
		}

		sb.WriteString(vars[line[i+1:end]])
		i = end
	}

	return sb.String()
}

func isNameByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isVarName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}

// splitPipeline splits a line into its pipeline stages.
func splitPipeline(line string) []string {
	stages := strings.Split(line, "|")
	for i, stage := range stages {
		stages[i] = strings.TrimSpace(stage)
	}
	return stages
}
