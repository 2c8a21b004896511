package buildinfo

import (
	"testing"
	"time"
)

func TestStarted(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	BuildTime = ""
	if got := now.Sub(Started(now)); got != fallbackUptime {
		t.Errorf("expected fallback uptime %s, got %s", fallbackUptime, got)
	}

	BuildTime = "2025-02-01T12:00:00Z"
	t.Cleanup(func() { BuildTime = "" })
	if got := now.Sub(Started(now)); got != 28*24*time.Hour {
		t.Errorf("expected 672h, got %s", got)
	}
}
