package audit

//go:generate mockgen -source=sink.go -destination=mocks/mocks.go -package=mocks Sink

import "context"

// Sink persists or ships audit records. Implementations must be safe for
// concurrent use; the publisher calls Write from many request goroutines.
type Sink interface {
	Write(ctx context.Context, record Record) error
}
