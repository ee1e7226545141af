// Package redisstream appends admin audit records to a Redis stream so that
// downstream collectors can consume them with XREAD / consumer groups.
package redisstream

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"taskhub/internal/audit"
)

const defaultMaxLen = 100_000

// Store writes records with XADD, trimming the stream approximately to maxLen.
type Store struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

// Option configures the Store.
type Option func(*Store)

// WithMaxLen caps the stream length. Zero disables trimming.
func WithMaxLen(n int64) Option {
	return func(s *Store) {
		s.maxLen = n
	}
}

func New(client redis.Cmdable, stream string, opts ...Option) *Store {
	s := &Store{client: client, stream: stream, maxLen: defaultMaxLen}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Write(ctx context.Context, record audit.Record) error {
	values := map[string]any{
		"kind":       string(record.Kind),
		"group":      record.Group,
		"operation":  record.Operation,
		"actor_id":   record.ActorID,
		"request_id": record.RequestID,
		"trace_id":   record.TraceID,
		"line":       record.Line(),
	}
	if record.Kind == audit.KindAccess {
		values["request_time"] = audit.FormatTimestamp(record.Timestamp)
		values["request_url"] = record.RequestURL
		values["payload"] = record.Payload
	} else {
		values["result"] = record.Result
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: values,
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}
