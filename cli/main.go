package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwantia/webterm"
	"github.com/mwantia/webterm/catalog"
	"github.com/mwantia/webterm/config"
	"github.com/mwantia/webterm/metrics"

	"github.com/mwantia/webterm/cli/tui"
)

// openCatalog opens the configured post source behind a cache that lives
// as long as the host, and returns it with the current post slugs.
func openCatalog(ctx context.Context, cfg *config.Config, recorder *metrics.Recorder) (*catalog.Cache, []string, error) {
	source, err := catalog.NewSource(cfg.Catalog)
	if err != nil {
		return nil, nil, err
	}

	cache, err := catalog.Open(ctx, source, cfg.Catalog.CacheSize)
	if err != nil {
		recorder.RecordCatalogLoad(source.Name(), false)
		return nil, nil, err
	}

	posts, err := cache.Find(ctx, "*")
	recorder.RecordCatalogLoad(cache.Name(), err == nil)
	if err != nil {
		cache.Close(ctx)
		return nil, nil, err
	}

	return cache, catalog.Slugs(posts), nil
}

// serveMetrics exposes the recorder until ctx is done.
func serveMetrics(ctx context.Context, address string, recorder *metrics.Recorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())

	srv := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			tui.DebugLog("metrics server failed: %v", err)
		}
	}()
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugPath := flag.String("debug", "", "Write TUI debug messages to this file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *debugPath != "" {
		tui.InitDebugLog(*debugPath)
		defer tui.CloseDebugLog()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	recorder := metrics.NewRecorder()
	if cfg.MetricsAddress != "" {
		serveMetrics(ctx, cfg.MetricsAddress, recorder)
	}

	cache, posts, err := openCatalog(ctx, cfg, recorder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load posts: %v\n", err)
		os.Exit(1)
	}
	defer cache.Close(ctx)

	// The TUI owns the screen, so logs only go to the configured file
	term, err := webterm.New(posts,
		webterm.WithLogLevel(cfg.Level()),
		webterm.WithLogFile(cfg.LogFile),
		webterm.WithoutTerminalLog(),
		webterm.WithWidth(cfg.Terminal.Width),
		webterm.WithEnv("USER", cfg.Terminal.User),
		webterm.WithEnv("SITE", cfg.Terminal.Site),
		webterm.WithMetrics(recorder),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup terminal: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(ctx, term, cache, cfg.Terminal.User, cfg.Terminal.Site)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}
