// Package logsink writes admin audit records to the structured application log.
package logsink

import (
	"context"
	"log/slog"

	"taskhub/internal/audit"
)

// Sink writes each record as one INFO line whose message is the rendered
// record template. Record fields are attached as attributes for querying.
type Sink struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

// Write never fails; slog handlers swallow their own I/O errors.
func (s *Sink) Write(ctx context.Context, record audit.Record) error {
	attrs := []any{
		"audit_kind", string(record.Kind),
		"group", record.Group,
		"operation", record.Operation,
		"actor_id", record.ActorID,
		"request_id", record.RequestID,
	}
	if record.TraceID != "" {
		attrs = append(attrs, "trace_id", record.TraceID)
	}
	s.logger.InfoContext(ctx, record.Line(), attrs...)
	return nil
}
