package audit

import "context"

// worker drains queued audit records and hands them to a write function.
// It keeps background processing testable without a real queue.
type worker struct {
	inbox <-chan queued
	write func(context.Context, Record)
}

func newWorker(inbox <-chan queued, write func(context.Context, Record)) *worker {
	return &worker{inbox: inbox, write: write}
}

// Run processes records until the inbox is closed and empty, or ctx ends.
func (w *worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item, ok := <-w.inbox:
			if !ok {
				return nil
			}
			w.write(item.ctx, item.record)
		}
	}
}
