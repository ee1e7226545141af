package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/internal/audit"
	"taskhub/internal/audit/store/memory"
	"taskhub/internal/platform/config"
)

func testAuditConfig(recentSource string, sinks ...string) config.Config {
	return config.Config{Audit: config.Audit{
		Sinks:            sinks,
		BreakerThreshold: 3,
		RecentCapacity:   10,
		RecentSource:     recentSource,
	}}
}

func TestBuildAudit_RecentSource(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory reader by default", func(t *testing.T) {
		infra, err := buildAudit(context.Background(), testAuditConfig("memory", "log"), log, audit.NewMetrics(prometheus.NewRegistry()))
		require.NoError(t, err)
		defer infra.Close()

		assert.IsType(t, &memory.InMemoryStore{}, infra.recent)
	})

	t.Run("postgres reader needs the postgres sink", func(t *testing.T) {
		_, err := buildAudit(context.Background(), testAuditConfig("postgres", "log"), log, audit.NewMetrics(prometheus.NewRegistry()))
		assert.ErrorContains(t, err, "requires the postgres sink")
	})

	t.Run("unknown reader", func(t *testing.T) {
		_, err := buildAudit(context.Background(), testAuditConfig("s3"), log, audit.NewMetrics(prometheus.NewRegistry()))
		assert.ErrorContains(t, err, "unknown AUDIT_RECENT_SOURCE")
	})
}
