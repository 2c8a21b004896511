package builtin

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mwantia/webterm/buildinfo"
	"github.com/mwantia/webterm/cmd"
)

type UptimeCommand struct {
}

func (u *UptimeCommand) Name() cmd.Name {
	return cmd.Uptime
}

func (u *UptimeCommand) Description() string {
	return "tell how long the site has been running"
}

func (u *UptimeCommand) Usage() string {
	return "uptime"
}

// Execute reports the time since the build. Load averages drift slowly,
// changing every five minutes.
func (u *UptimeCommand) Execute(ctx context.Context, env *cmd.Env, raw []string) cmd.Result {
	now := env.Clock()
	return cmd.Text(formatUptime(now, buildinfo.Started(now)))
}

func formatUptime(now, started time.Time) string {
	elapsed := now.Sub(started)
	days := int(elapsed.Hours()) / 24
	hours := int(elapsed.Hours()) % 24
	minutes := int(elapsed.Minutes()) % 60

	seed := float64(now.Unix() / 300)
	load1 := 0.08 + math.Sin(seed*0.001)*0.02
	load5 := 0.12 + math.Cos(seed*0.0015)*0.03
	load15 := 0.15 + math.Sin(seed*0.002)*0.02

	return fmt.Sprintf("%s up %d days, %d:%02d, load average: %.2f, %.2f, %.2f",
		now.Format(time.TimeOnly), days, hours, minutes, load1, load5, load15)
}
