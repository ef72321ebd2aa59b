package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/tipsplit/internal/config"
	"github.com/mmynk/tipsplit/internal/device"
	"github.com/mmynk/tipsplit/internal/metrics"
	"github.com/mmynk/tipsplit/internal/middleware"
	"github.com/mmynk/tipsplit/internal/service"
	"github.com/mmynk/tipsplit/internal/storage"
	"github.com/mmynk/tipsplit/internal/storage/memory"
	"github.com/mmynk/tipsplit/internal/storage/sqlite"
	"github.com/mmynk/tipsplit/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	flag.Parse()

	dotEnvErr := loadDotEnv()

	level := logging.Setup()
	if dotEnvErr != nil {
		slog.Warn("Ignoring .env file", "error", dotEnvErr)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	applyLogLevel(level, cfg.Log.Level)

	if *configPath != "" {
		err := config.WatchAndReload(*configPath, func(c *config.Config) {
			applyLogLevel(level, c.Log.Level)
		})
		if err != nil {
			slog.Warn("Config hot reload disabled", "error", err)
		}
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, reg)
	}

	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	store = middleware.LoggingStore(store, slog.Default(), m)
	defer store.Close()
	slog.Info("Storage initialized", "path", cfg.Storage.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := service.NewSession(store, m)
	session.Load(ctx)
	app := device.NewApp(session, cfg.Input.RepeatInterval(), m)

	run(ctx, app, os.Stdin, os.Stdout)

	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := session.Save(saveCtx); err != nil {
		slog.Error("Failed to save settings", "error", err)
		store.Close()
		os.Exit(1)
	}
}

// run feeds input lines to the app until the input ends, the app closes, or
// ctx is cancelled. All calculator access happens on the calling goroutine.
func run(ctx context.Context, app *device.App, in io.Reader, out io.Writer) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprint(out, app.Render())
	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down", "reason", ctx.Err())
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if !handleLine(app, line, out) {
				return
			}
		}
	}
}

// handleLine applies one command and prints the new frame. It returns false
// when the app should close.
func handleLine(app *device.App, line string, out io.Writer) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(out, err)
		return true
	}

	switch cmd.kind {
	case cmdQuit:
		return false
	case cmdShake:
		app.Shake()
	case cmdClicks:
		for _, c := range cmd.clicks {
			if !app.HandleClick(c) {
				return false
			}
		}
	}
	fmt.Fprint(out, app.Render())
	return true
}

// loadDotEnv loads environment files, .env by default. A missing file is not
// an error.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func openStore(path string) (storage.Store, error) {
	if path == config.MemoryStoragePath {
		return memory.New(), nil
	}
	s, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func applyLogLevel(lv *slog.LevelVar, name string) {
	l, err := logging.ParseLevel(name)
	if err != nil {
		slog.Warn("Ignoring log level", "level", name, "error", err)
		return
	}
	lv.Set(l)
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	slog.Info("Metrics server starting", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Metrics server failed", "error", err)
	}
}
