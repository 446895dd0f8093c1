// Package store is the persistence adapter for the in-memory ledgers. Each
// named collection ("orders", "webhook_events", ...) is a versioned snapshot
// of rows keyed by entity id. Writes are atomic from the reader's point of
// view and serialized per process through a persist queue.
package store

import (
	"context"
	"encoding/json"
)

const SnapshotVersion = 1

// Collection keys used by the repositories.
const (
	KeyOrders           = "orders"
	KeyWebhookEvents    = "webhook_events"
	KeyCreditBalances   = "credit_balances"
	KeyCreditTxs        = "credit_transactions"
	KeyCreditReferences = "credit_references"
)

// Snapshot is one collection's full state. Rows map entity id to the
// marshaled entity; the remote mirror stores the same rows relationally.
type Snapshot struct {
	Version int                        `json:"version"`
	Rows    map[string]json.RawMessage `json:"rows"`
}

func NewSnapshot() Snapshot {
	return Snapshot{Version: SnapshotVersion, Rows: map[string]json.RawMessage{}}
}

func (s Snapshot) Empty() bool {
	return len(s.Rows) == 0
}

// Backend reads and writes whole snapshots. Implementations must make Write
// atomic: a concurrent Load never observes a partially written snapshot.
type Backend interface {
	// Load returns the stored snapshot, or an empty one when the collection
	// has never been written.
	Load(ctx context.Context, key string) (Snapshot, error)
	Write(ctx context.Context, key string, snap Snapshot) error
}

// Store is what the repositories see: synchronous loads, queued persists.
type Store interface {
	Load(ctx context.Context, key string) (Snapshot, error)
	// Persist enqueues the snapshot for writing. Writes for the same process
	// apply in issuance order; failures are logged by the queue, not returned,
	// because callers have already mutated authoritative in-memory state.
	Persist(key string, snap Snapshot)
}
