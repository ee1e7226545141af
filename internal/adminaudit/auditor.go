package adminaudit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"taskhub/internal/audit"
	"taskhub/pkg/requestcontext"
)

const tracerName = "taskhub/adminaudit"

// Emitter receives audit records. Implementations must not block for long
// and must be safe for concurrent use. *audit.Publisher satisfies it.
type Emitter interface {
	Emit(ctx context.Context, record audit.Record)
}

// Operation is the per-call view of an audited invocation.
type Operation struct {
	Group      Group
	Name       string
	ActorID    string
	RequestURL string
	Timestamp  time.Time
}

// Void is the result type of operations that return no content.
type Void struct{}

func (Void) String() string { return "no content" }

// Auditor decorates operations with access and response records.
type Auditor struct {
	emitter Emitter
	tracer  trace.Tracer
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures the Auditor.
type Option func(*Auditor)

// WithTracer overrides the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Auditor) {
		a.tracer = tracer
	}
}

// WithClock sets the clock used when the request context carries no time.
func WithClock(now func() time.Time) Option {
	return func(a *Auditor) {
		a.now = now
	}
}

// WithLogger sets the logger used to report emitter panics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Auditor) {
		a.logger = logger
	}
}

// New creates an Auditor emitting to emitter.
func New(emitter Emitter, opts ...Option) *Auditor {
	a := &Auditor{
		emitter: emitter,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tracer == nil {
		a.tracer = otel.Tracer(tracerName)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.DiscardHandler)
	}
	return a
}

// Func1 decorates a single-argument operation. Operations outside the audited
// groups, and a nil Auditor, return fn unchanged.
func Func1[A, R any](a *Auditor, operationID string, fn func(context.Context, A) (R, error)) func(context.Context, A) (R, error) {
	group := Match(operationID)
	if a == nil || group == NoMatch {
		return fn
	}
	_, name, _ := splitOperation(operationID)
	return func(ctx context.Context, arg A) (R, error) {
		return invoke(ctx, a, group, name, []any{arg}, func(ctx context.Context) (R, error) {
			return fn(ctx, arg)
		})
	}
}

// Func2 decorates a two-argument operation. See Func1.
func Func2[A, B, R any](a *Auditor, operationID string, fn func(context.Context, A, B) (R, error)) func(context.Context, A, B) (R, error) {
	group := Match(operationID)
	if a == nil || group == NoMatch {
		return fn
	}
	_, name, _ := splitOperation(operationID)
	return func(ctx context.Context, first A, second B) (R, error) {
		return invoke(ctx, a, group, name, []any{first, second}, func(ctx context.Context) (R, error) {
			return fn(ctx, first, second)
		})
	}
}

func invoke[R any](ctx context.Context, a *Auditor, group Group, name string, args []any, call func(context.Context) (R, error)) (R, error) {
	parent := trace.SpanContextFromContext(ctx)
	ctx, span := a.tracer.Start(ctx, "adminaudit."+name, trace.WithAttributes(
		attribute.String("audit.group", group.Label()),
		attribute.String("audit.operation", name),
	))
	defer span.End()

	op := a.operation(ctx, group, name)
	correlation := correlationIDs(ctx, span, parent)

	access := audit.Record{
		Kind:       audit.KindAccess,
		Group:      group.Label(),
		Operation:  op.Name,
		ActorID:    op.ActorID,
		Timestamp:  op.Timestamp,
		RequestURL: op.RequestURL,
		Payload:    ExtractPayload(args),
	}
	a.emit(ctx, correlation.apply(access))

	result, err := call(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	response := audit.Record{
		Kind:      audit.KindResponse,
		Group:     group.Label(),
		Operation: op.Name,
		ActorID:   op.ActorID,
		Result:    fmt.Sprint(result),
	}
	a.emit(ctx, correlation.apply(response))
	return result, nil
}

func (a *Auditor) operation(ctx context.Context, group Group, name string) Operation {
	ts, ok := requestcontext.Time(ctx)
	if !ok {
		ts = a.now()
	}
	return Operation{
		Group:      group,
		Name:       name,
		ActorID:    requestcontext.ActorID(ctx),
		RequestURL: requestcontext.RequestURL(ctx),
		Timestamp:  ts,
	}
}

// emit never lets an emitter failure reach the operation.
func (a *Auditor) emit(ctx context.Context, record audit.Record) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "admin audit emit panicked",
				"operation", record.Operation,
				"audit_kind", string(record.Kind),
				"panic", fmt.Sprint(r),
			)
		}
	}()
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(ctx, record)
}

type correlation struct {
	requestID string
	traceID   string
}

// correlationIDs prefers the audit span and falls back to the caller's span,
// which a no-op tracer does not propagate.
func correlationIDs(ctx context.Context, span trace.Span, parent trace.SpanContext) correlation {
	sc := span.SpanContext()
	if !sc.IsValid() {
		sc = parent
	}
	c := correlation{requestID: requestcontext.RequestID(ctx)}
	if sc.HasTraceID() {
		c.traceID = sc.TraceID().String()
	}
	return c
}

func (c correlation) apply(r audit.Record) audit.Record {
	r.RequestID = c.requestID
	r.TraceID = c.traceID
	return r
}
