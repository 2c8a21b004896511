package builtin

import (
	"context"
	"strconv"
	"strings"

	"github.com/mwantia/webterm/cmd"
	"github.com/ncruces/go-strftime"
)

// defaultDateFormat renders like "Wed Dec 25 14:30:15 PST 2024".
const defaultDateFormat = "%a %b %d %H:%M:%S %Z %Y"

type DateCommand struct {
}

func (d *DateCommand) Name() cmd.Name {
	return cmd.Date
}

func (d *DateCommand) Description() string {
	return "print the system date and time"
}

func (d *DateCommand) Usage() string {
	return "date [+FORMAT]"
}

// Execute prints the current time, optionally in a strftime format given
// as "+FORMAT". A quoted format may contain spaces.
func (d *DateCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	if len(raw) > 1 && strings.HasPrefix(raw[0], `"`) && strings.HasSuffix(raw[len(raw)-1], `"`) {
		raw = []string{strings.Join(raw, " ")}
	}
	if len(raw) > 1 {
		return cmd.Errorf("date: too many arguments")
	}

	format := defaultDateFormat
	if len(raw) == 1 {
		arg := strings.Trim(raw[0], `"`)
		custom, ok := strings.CutPrefix(arg, "+")
		if !ok {
			return cmd.Errorf("date: invalid format (must start with +)")
		}
		format = custom
	}

	now := env.Clock()
	if format == "%s" {
		return cmd.Text(strconv.FormatInt(now.Unix(), 10))
	}
	return cmd.Text(strftime.Format(format, now))
}
