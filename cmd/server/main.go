package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"taskhub/internal/admin/commentadmin"
	"taskhub/internal/admin/manager"
	adminstore "taskhub/internal/admin/store"
	"taskhub/internal/admin/useradmin"
	"taskhub/internal/adminaudit"
	"taskhub/internal/audit"
	audithandler "taskhub/internal/audit/handler"
	"taskhub/internal/platform/config"
	"taskhub/internal/platform/httpserver"
	"taskhub/internal/platform/logger"
	"taskhub/internal/platform/metrics"
	httptransport "taskhub/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Logging)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	infra, err := buildAudit(ctx, cfg, log, audit.NewMetrics(reg))
	if err != nil {
		return err
	}
	defer infra.Close()

	data := adminstore.NewInMemoryStore()
	if err := data.Seed(ctx, adminstore.DefaultFixture()); err != nil {
		return err
	}

	auditor := adminaudit.New(infra.publisher, adminaudit.WithLogger(log))
	router := httptransport.NewRouter(httptransport.Config{
		Logger:     log,
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
		AdminToken: cfg.Server.AdminToken,
		API: []httptransport.Registrar{
			useradmin.NewHandler(useradmin.NewService(data, log), auditor, log),
			commentadmin.NewHandler(commentadmin.NewService(data, log), auditor, log),
			manager.NewHandler(manager.NewService(data, log), auditor, log),
		},
		Operator:     []httptransport.Registrar{audithandler.New(infra.recent, log)},
		HealthChecks: infra.health,
	})

	srv := httpserver.New(cfg.Server.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting taskhub", "addr", cfg.Server.Addr, "audit_sinks", cfg.Audit.Sinks)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
