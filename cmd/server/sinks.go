package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"taskhub/internal/audit"
	audithandler "taskhub/internal/audit/handler"
	"taskhub/internal/audit/sink/kafka"
	"taskhub/internal/audit/sink/logsink"
	"taskhub/internal/audit/store/memory"
	auditpostgres "taskhub/internal/audit/store/postgres"
	"taskhub/internal/audit/store/redisstream"
	"taskhub/internal/platform/config"
	"taskhub/internal/platform/redis"
	httptransport "taskhub/internal/transport/http"
)

// auditInfra owns the audit publisher and every connection its sinks use.
type auditInfra struct {
	publisher *audit.Publisher
	recent    audithandler.RecentLister
	health    map[string]httptransport.HealthCheck
	closers   []func()
}

func (a *auditInfra) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildAudit connects the configured sinks. Remote sinks are written
// through the async buffer when one is configured.
func buildAudit(ctx context.Context, cfg config.Config, log *slog.Logger, metrics *audit.Metrics) (*auditInfra, error) {
	infra := &auditInfra{health: map[string]httptransport.HealthCheck{}}
	opts := []audit.Option{
		audit.WithLogger(log),
		audit.WithMetrics(metrics),
		audit.WithAsyncBuffer(cfg.Audit.AsyncBuffer),
		audit.WithBreaker(cfg.Audit.BreakerThreshold, cfg.Audit.BreakerCooldown),
	}

	if cfg.Audit.HasSink("log") {
		opts = append(opts, audit.WithSink("log", logsink.New(log)))
	}

	switch cfg.Audit.RecentSource {
	case "memory":
	case "postgres":
		if !cfg.Audit.HasSink("postgres") {
			return nil, fmt.Errorf("AUDIT_RECENT_SOURCE=postgres requires the postgres sink")
		}
	default:
		return nil, fmt.Errorf("unknown AUDIT_RECENT_SOURCE %q", cfg.Audit.RecentSource)
	}

	// Memory always retains the newest records; postgres may replace it as the
	// reader behind /admin/audit/recent.
	recent := memory.NewInMemoryStore(cfg.Audit.RecentCapacity)
	infra.recent = recent
	opts = append(opts, audit.WithSink("memory", recent))

	if cfg.Audit.HasSink("redis") {
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			infra.Close()
			return nil, fmt.Errorf("redis sink: %w", err)
		}
		infra.closers = append(infra.closers, func() { _ = client.Close() })
		infra.health["redis"] = client.Health
		opts = append(opts, audit.WithAsyncSink("redis", redisstream.New(client, client.AuditStream())))
	}

	if cfg.Audit.HasSink("postgres") {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			infra.Close()
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		infra.closers = append(infra.closers, func() { _ = db.Close() })
		store := auditpostgres.New(db)
		if err := store.EnsureSchema(ctx); err != nil {
			infra.Close()
			return nil, err
		}
		infra.health["postgres"] = db.PingContext
		opts = append(opts, audit.WithAsyncSink("postgres", store))
		if cfg.Audit.RecentSource == "postgres" {
			infra.recent = store
		}
	}

	if cfg.Audit.HasSink("kafka") {
		sink, err := kafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.closers = append(infra.closers, sink.Close)
		if err := sink.EnsureTopic(ctx, 1, 1); err != nil {
			infra.Close()
			return nil, err
		}
		opts = append(opts, audit.WithAsyncSink("kafka", sink))
	}

	infra.publisher = audit.NewPublisher(opts...)
	return infra, nil
}
