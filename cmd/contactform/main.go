// cmd/contactform/main.go
//
// contactform – terminal contact form entry point.
//
// Start-up sequence
// -----------------
//
//  1. Parse flags (pflag).
//
//  2. Load configuration (YAML → env overrides → flag overrides).
//
//  3. Start the daily rotating logger.  The TUI owns the terminal, so
//     console tee applies only when the config asks for it and stdout is
//     not a terminal.
//
//  4. Optionally start the local stand-in endpoint (--stub) and point the
//     client at it.
//
//  5. Optionally expose Prometheus /metrics.
//
//  6. Run the Bubble Tea program.  Quitting it cancels the shared context,
//     which stops every listener; a listener failure likewise stops the TUI.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/yanizio/contactform/internal/config"
	"github.com/yanizio/contactform/internal/endpoint"
	"github.com/yanizio/contactform/internal/form"
	"github.com/yanizio/contactform/internal/logger"
	"github.com/yanizio/contactform/internal/metrics"
	"github.com/yanizio/contactform/internal/server"
	"github.com/yanizio/contactform/internal/stub"
	"github.com/yanizio/contactform/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func run(args []string) error {
	var (
		configPath  string
		useStub     bool
		metricsAddr string
		logDir      string
	)

	flagSet := pflag.NewFlagSet("contactform", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config (default: conf/contactform.yaml when present)")
	flagSet.BoolVar(&useStub, "stub", false, "serve a local stand-in endpoint and submit to it")
	flagSet.StringVar(&metricsAddr, "metrics-addr", "", "expose Prometheus /metrics on this address")
	flagSet.StringVar(&logDir, "log-dir", "", "directory for daily log files")
	flagSet.BoolP("help", "h", false, "show help")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		fmt.Fprintf(os.Stdout, "Usage: contactform [flags]\n\n%s", flagSet.FlagUsages())
		return nil
	}

	//
	// ── 1.  Configuration and logging ───────────────────────────────────
	//
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logDir != "" {
		cfg.Log.Dir = logDir
	}
	if metricsAddr != "" {
		cfg.Metrics.ListenAddr = metricsAddr
	}

	// Console output would tear the TUI, so tee only when stdout is
	// redirected.
	tee := cfg.Log.Tee && !runningInTTY()
	log, err := logger.New(logger.Options{Dir: cfg.Log.Dir, Level: cfg.Log.Level, Tee: tee})
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)

	//
	// ── 2.  Optional listeners ──────────────────────────────────────────
	//
	endpointURL := cfg.Endpoint.URL
	if useStub {
		endpointURL = "http://" + cfg.Stub.ListenAddr + stub.Path
		stubServer := server.New(cfg.Stub.ListenAddr, stub.New(log.Named("stub")).Routes())
		group.Go(func() error { return server.Run(ctx, stubServer, "stub") })
	}

	if cfg.Metrics.ListenAddr != "" {
		router := chi.NewRouter()
		router.Handle("/metrics", promhttp.Handler())
		metricsServer := server.New(cfg.Metrics.ListenAddr, router)
		group.Go(func() error { return server.Run(ctx, metricsServer, "metrics") })
	}

	//
	// ── 3.  Form controller and TUI ─────────────────────────────────────
	//
	client := endpoint.New(endpointURL, cfg.Endpoint.Timeout)
	controller := form.NewController(client,
		form.WithLogger(log),
		form.WithDismissAfter(cfg.Notify.DismissAfter),
		form.WithObserver(form.Observers{form.LogObserver(log), metrics.Observer{}}),
	)
	log.Infow("contact form ready", "endpoint", client.URL(), "stub", useStub)

	group.Go(func() error {
		program := tea.NewProgram(tui.NewModel(ctx, controller), tea.WithAltScreen(), tea.WithContext(ctx))
		_, runErr := program.Run()
		stop()
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return runErr
	})

	err = group.Wait()
	log.Infow("contact form stopped", "err", err)
	return err
}
