// Package buildinfo carries values stamped in at link time:
//
//	go build -ldflags "-X github.com/mwantia/webterm/buildinfo.Version=1.2.0 \
//	  -X github.com/mwantia/webterm/buildinfo.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "time"

var (
	Version   = "0.1.0"
	BuildTime = ""
)

// fallbackUptime is used when the build time is missing or malformed.
const fallbackUptime = 42*24*time.Hour + 13*time.Hour + 37*time.Minute

// Started returns the moment uptime is counted from.
func Started(now time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
		return t
	}
	return now.Add(-fallbackUptime)
}
