package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"writeyourmep/internal/directory"
	"writeyourmep/internal/letter"
	"writeyourmep/internal/mep/handler"
	"writeyourmep/internal/mep/service"
	"writeyourmep/internal/platform/config"
	"writeyourmep/internal/platform/health"
	"writeyourmep/internal/platform/httpserver"
	"writeyourmep/internal/platform/logger"
	"writeyourmep/internal/platform/tracer"
	"writeyourmep/internal/tracker"
	httptransport "writeyourmep/internal/transport/http"
	request "writeyourmep/pkg/platform/middleware/request"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	log.Info("initializing write-your-mep",
		"addr", cfg.Server.Addr,
		"environment", cfg.Server.Environment,
		"directory_path", cfg.Directory.Path,
		"letter_template", cfg.Letter.Template,
	)
	if cfg.Server.SecretKey == config.DefaultSecretKey && !cfg.IsDevelopment() {
		log.Warn("SECRET_KEY is not set; using the development default")
	}
	if _, err := os.Stat(cfg.Directory.Path); err != nil {
		log.Warn("directory file not found; serving an empty directory until it appears",
			"path", cfg.Directory.Path,
		)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	store := directory.NewStore(ctx, directory.NewFileLoader(cfg.Directory.Path), log,
		directory.WithMetrics(directory.NewMetrics(reg)),
	)

	template, err := letter.ParseTemplate(cfg.Letter.Template)
	if err != nil {
		return err
	}
	letters, err := letter.NewGenerator(template)
	if err != nil {
		return err
	}

	submissions := tracker.New(tracker.Config{
		URL:     cfg.Tracker.URL,
		Timeout: cfg.Tracker.Timeout,
		Tracer:  tracer.NewOTel(),
		Metrics: tracker.NewMetrics(reg),
	}, log)
	if submissions.Enabled() {
		log.Info("submission tracking enabled")
	} else {
		log.Warn("GOOGLE_APPS_SCRIPT_URL not set; submission tracking disabled")
	}

	healthHandler := health.New(cfg.Server.Environment)
	healthHandler.RegisterCheck("directory", store.Check)

	contacts := handler.New(service.New(store, letters, submissions, log), log)
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        request.NewMetrics(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		TrustedProxies: cfg.Server.TrustedProxies,
		RequestTimeout: cfg.Server.RequestTimeout,
	}, contacts, healthHandler)

	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if cfg.Directory.Watch {
		watcher, err := directory.NewWatcher(cfg.Directory.Path, store, log, directory.DefaultDebounce)
		if err != nil {
			log.Warn("directory hot reload unavailable", "error", err)
		} else {
			g.Go(func() error { return watcher.Run(gctx) })
		}
	}

	return g.Wait()
}
