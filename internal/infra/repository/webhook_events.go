package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"petportrait-checkout/internal/infra"
	"petportrait-checkout/internal/infra/store"
)

// ProcessedEvent records one webhook delivery that has been applied to the
// ledger. Records are created once and never mutated.
type ProcessedEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	ReceivedAt time.Time `json:"receivedAt"`
	OrderID    string    `json:"orderId,omitempty"`
	PaymentID  string    `json:"paymentId,omitempty"`
	Status     string    `json:"status,omitempty"`
}

// WebhookEventsRepository is the at-most-once guard. Callers must hold the
// per-event lock (LockEvent) across the whole check -> apply -> mark sequence
// so duplicate concurrent deliveries of the same event serialize instead of
// racing a read-then-write.
type WebhookEventsRepository struct {
	mu     sync.RWMutex
	events map[string]ProcessedEvent
	store  store.Store

	lockMu sync.Mutex
	locks  map[string]*eventLock
}

type eventLock struct {
	mu   sync.Mutex
	refs int
}

func NewWebhookEventsRepository(ctx context.Context, st store.Store) (*WebhookEventsRepository, error) {
	snap, err := st.Load(ctx, store.KeyWebhookEvents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load webhook events snapshot", err)
	}

	events := make(map[string]ProcessedEvent, len(snap.Rows))
	for id, doc := range snap.Rows {
		var evt ProcessedEvent
		if err := json.Unmarshal(doc, &evt); err != nil {
			return nil, infra.WrapRepoErr("failed to decode webhook event", err)
		}
		events[id] = evt
	}

	return &WebhookEventsRepository{
		events: events,
		store:  st,
		locks:  map[string]*eventLock{},
	}, nil
}

// LockEvent serializes processing per event id and returns the release func.
func (r *WebhookEventsRepository) LockEvent(eventID string) func() {
	r.lockMu.Lock()
	l, ok := r.locks[eventID]
	if !ok {
		l = &eventLock{}
		r.locks[eventID] = l
	}
	l.refs++
	r.lockMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		r.lockMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(r.locks, eventID)
		}
		r.lockMu.Unlock()
	}
}

func (r *WebhookEventsRepository) HasProcessed(eventID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.events[eventID]
	return ok
}

// MarkProcessed appends the event record; a duplicate id is a no-op, not an
// error.
func (r *WebhookEventsRepository) MarkProcessed(evt ProcessedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[evt.EventID]; ok {
		return
	}
	r.events[evt.EventID] = evt
	r.persistLocked()
}

func (r *WebhookEventsRepository) persistLocked() {
	snap := store.NewSnapshot()
	for id, evt := range r.events {
		doc, _ := json.Marshal(evt)
		snap.Rows[id] = doc
	}
	r.store.Persist(store.KeyWebhookEvents, snap)
}
