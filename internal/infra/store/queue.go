package store

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const persistTimeout = 10 * time.Second

// Queue serializes snapshot writes so overlapping persists for a collection
// apply in issuance order and never interleave. It is the Store handed to the
// repositories; Persist returns immediately and write failures are logged by
// the worker (the in-memory ledger stays authoritative either way).
type Queue struct {
	backend Backend
	logger  *slog.Logger

	mu     sync.Mutex
	tasks  chan task
	closed bool
	wg     sync.WaitGroup
}

type task struct {
	key  string
	snap Snapshot
}

func NewQueue(backend Backend, logger *slog.Logger) *Queue {
	q := &Queue{
		backend: backend,
		logger:  logger,
		tasks:   make(chan task, 256),
	}
	q.wg.Add(1)
	go q.run()
	return q
}

func (q *Queue) Load(ctx context.Context, key string) (Snapshot, error) {
	return q.backend.Load(ctx, key)
}

func (q *Queue) Persist(key string, snap Snapshot) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("persist after close dropped", "key", key)
		return
	}
	q.tasks <- task{key: key, snap: snap}
}

func (q *Queue) run() {
	defer q.wg.Done()
	for t := range q.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if err := q.backend.Write(ctx, t.key, t.snap); err != nil {
			q.logger.Error("snapshot persist failed", "key", t.key, "error", err)
		}
		cancel()
	}
}

// Close drains pending writes. Called from the fx shutdown hook.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	q.wg.Wait()
}
