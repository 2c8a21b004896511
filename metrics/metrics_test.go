package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_RecordCommand(t *testing.T) {
	r := NewRecorder()

	r.RecordCommand("ls", "output", 10*time.Millisecond)
	r.RecordCommand("ls", "output", 20*time.Millisecond)
	r.RecordCommand("cat", "error", time.Millisecond)

	if got := testutil.ToFloat64(r.commandsTotal.WithLabelValues("ls", "output")); got != 2 {
		t.Errorf("expected 2 ls commands, got %v", got)
	}
	if got := testutil.ToFloat64(r.commandsTotal.WithLabelValues("cat", "error")); got != 1 {
		t.Errorf("expected 1 failed cat, got %v", got)
	}
}

func TestRecorder_Independent(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()

	a.RecordSession()
	a.RecordSession()
	b.RecordSession()

	if got := testutil.ToFloat64(a.sessionsTotal); got != 2 {
		t.Errorf("expected 2 sessions, got %v", got)
	}
	if got := testutil.ToFloat64(b.sessionsTotal); got != 1 {
		t.Errorf("expected 1 session, got %v", got)
	}
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.SetNodes(12)
	r.RecordCatalogLoad("sqlite", false)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("failed to scrape: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	for _, want := range []string{
		"webterm_vfs_nodes 12",
		`webterm_catalog_loads_total{source="sqlite",status="error"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected scrape to contain %q", want)
		}
	}
}
