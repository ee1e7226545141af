package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Publisher fans admin audit records out to the configured sinks.
//
// Publishing is best-effort: Emit never returns an error and never panics.
// Sink failures are logged, counted and fed to a per-sink circuit breaker.
// Synchronous sinks are written on the caller's goroutine before Emit
// returns; async sinks receive records through a bounded buffer drained by a
// background worker.
type Publisher struct {
	sinks   []*sinkEntry
	logger  *slog.Logger
	metrics *Metrics

	bufferSize       int
	breakerThreshold int
	breakerCooldown  time.Duration

	mu        sync.RWMutex
	closed    bool
	queue     chan queued
	done      chan struct{}
	closeOnce sync.Once
}

type sinkEntry struct {
	name    string
	sink    Sink
	async   bool
	breaker *CircuitBreaker
}

type queued struct {
	ctx    context.Context
	record Record
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a logger for sink failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// WithSink registers a sink written synchronously on every Emit.
func WithSink(name string, sink Sink) Option {
	return func(p *Publisher) {
		p.sinks = append(p.sinks, &sinkEntry{name: name, sink: sink})
	}
}

// WithAsyncSink registers a sink written by the background worker.
// Without WithAsyncBuffer the sink is written synchronously.
func WithAsyncSink(name string, sink Sink) Option {
	return func(p *Publisher) {
		p.sinks = append(p.sinks, &sinkEntry{name: name, sink: sink, async: true})
	}
}

// WithAsyncBuffer sets the capacity of the async buffer. Records arriving
// while the buffer is full are dropped.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.bufferSize = size
	}
}

// WithBreaker configures the per-sink circuit breakers.
func WithBreaker(threshold int, cooldown time.Duration) Option {
	return func(p *Publisher) {
		p.breakerThreshold = threshold
		p.breakerCooldown = cooldown
	}
}

// NewPublisher creates a publisher. Call Close to drain async sinks.
func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	hasAsync := false
	for _, s := range p.sinks {
		s.breaker = NewCircuitBreaker(p.breakerThreshold, p.breakerCooldown)
		if s.async && p.bufferSize <= 0 {
			s.async = false
		}
		hasAsync = hasAsync || s.async
	}

	if !hasAsync {
		close(p.done)
		return p
	}

	p.queue = make(chan queued, p.bufferSize)
	w := newWorker(p.queue, p.writeAsync)
	go func() {
		defer close(p.done)
		_ = w.Run(context.Background())
	}()
	return p
}

// Emit hands a record to every sink. It returns once synchronous sinks have
// been written and the record is queued for async sinks.
func (p *Publisher) Emit(ctx context.Context, record Record) {
	p.metrics.incEmitted(record.Kind, record.Group)

	for _, s := range p.sinks {
		if !s.async {
			p.write(ctx, s, record)
		}
	}
	if p.queue != nil {
		p.enqueue(ctx, record)
	}
}

// Close stops accepting async records and waits until the buffer is drained.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		if p.queue != nil {
			close(p.queue)
		}
		p.mu.Unlock()
	})
	<-p.done
}

func (p *Publisher) enqueue(ctx context.Context, record Record) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.closed {
		select {
		case p.queue <- queued{ctx: context.WithoutCancel(ctx), record: record}:
			return
		default:
		}
	}

	for _, s := range p.sinks {
		if s.async {
			p.metrics.incDropped(s.name, DropBufferFull)
		}
	}
	p.logger.WarnContext(ctx, "admin audit buffer full, record dropped",
		"operation", record.Operation,
		"audit_kind", string(record.Kind),
		"request_id", record.RequestID,
	)
}

func (p *Publisher) writeAsync(ctx context.Context, record Record) {
	for _, s := range p.sinks {
		if s.async {
			p.write(ctx, s, record)
		}
	}
}

func (p *Publisher) write(ctx context.Context, s *sinkEntry, record Record) {
	if !s.breaker.Allow() {
		p.metrics.incDropped(s.name, DropBreakerOpen)
		return
	}

	if err := safeWrite(ctx, s.sink, record); err != nil {
		p.metrics.incWriteFailure(s.name)
		if s.breaker.RecordFailure() {
			p.metrics.setBreakerOpen(s.name, true)
			p.logger.ErrorContext(ctx, "admin audit sink unhealthy, circuit opened",
				"sink", s.name,
			)
		}
		p.logger.WarnContext(ctx, "admin audit sink write failed",
			"sink", s.name,
			"operation", record.Operation,
			"audit_kind", string(record.Kind),
			"request_id", record.RequestID,
			"error", err,
		)
		return
	}

	s.breaker.RecordSuccess()
	p.metrics.setBreakerOpen(s.name, false)
}

func safeWrite(ctx context.Context, sink Sink, record Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	return sink.Write(ctx, record)
}
