// Package outbox runs fire-and-forget side effects (emails, analytics) off
// the request path. Tasks are best-effort: failures are logged with the task
// kind, never reported to the submitting caller.
package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const taskTimeout = 30 * time.Second

type Task struct {
	Kind string
	// DedupKey suppresses resubmission of the same logical task (e.g. the
	// review email for one order). Empty means no dedup.
	DedupKey string
	// Delay postpones execution (review-request emails).
	Delay time.Duration
	Run   func(ctx context.Context) error
}

type Outbox struct {
	logger *slog.Logger

	mu     sync.Mutex
	seen   map[string]bool
	closed bool
	wg     sync.WaitGroup
}

func New(logger *slog.Logger) *Outbox {
	return &Outbox{
		logger: logger,
		seen:   map[string]bool{},
	}
}

// Submit schedules the task and returns immediately. The boolean reports
// whether the task was accepted (false on dedup hit or after Close).
func (o *Outbox) Submit(t Task) bool {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		o.logger.Warn("outbox task after close dropped", "kind", t.Kind)
		return false
	}
	if t.DedupKey != "" {
		if o.seen[t.DedupKey] {
			o.mu.Unlock()
			return false
		}
		o.seen[t.DedupKey] = true
	}
	o.wg.Add(1)
	o.mu.Unlock()

	go func() {
		defer o.wg.Done()
		if t.Delay > 0 {
			time.Sleep(t.Delay)
		}

		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		if err := t.Run(ctx); err != nil {
			o.logger.Error("outbox task failed", "kind", t.Kind, "error", err)
		}
	}()
	return true
}

// Close marks the outbox closed and waits for in-flight tasks. Delayed tasks
// still pending their timer are waited for as well; shutdown callers should
// bound this with their own context.
func (o *Outbox) Close() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
	o.wg.Wait()
}
