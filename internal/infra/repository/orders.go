package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"petportrait-checkout/internal/domain/order"
	"petportrait-checkout/internal/infra"
	"petportrait-checkout/internal/infra/store"

	"github.com/google/uuid"
)

// OrdersRepository holds the authoritative order/payment ledger in memory and
// persists full snapshots through the store's persist queue. Rows are created
// on create-order, mutated by process-payment and webhook, never deleted.
type OrdersRepository struct {
	mu    sync.RWMutex
	rows  map[string]order.StatusRow
	store store.Store
}

func NewOrdersRepository(ctx context.Context, st store.Store) (*OrdersRepository, error) {
	snap, err := st.Load(ctx, store.KeyOrders)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load orders snapshot", err)
	}

	rows := make(map[string]order.StatusRow, len(snap.Rows))
	for id, doc := range snap.Rows {
		var row order.StatusRow
		if err := json.Unmarshal(doc, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to decode order row", err)
		}
		rows[id] = row
	}

	return &OrdersRepository{rows: rows, store: st}, nil
}

// Upsert applies one transition through order.Merge and reports whether this
// write moved the order into COMPLETED (the side-effect trigger). The merge
// and the map write happen under one lock so concurrent transitions for the
// same order serialize.
func (r *OrdersRepository) Upsert(in order.Update, fb order.Fallbacks) (order.StatusRow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var existing *order.StatusRow
	if prev, ok := r.rows[in.OrderID]; ok {
		existing = &prev
	}

	row := order.Merge(existing, in, fb)
	completedNow := row.IsCompleted() && (existing == nil || !existing.IsCompleted())

	r.rows[in.OrderID] = row
	r.persistLocked()
	return row, completedNow
}

// MarkCouponUsed flips the monotonic couponUsed flag after a successful
// remote coupon-use call.
func (r *OrdersRepository) MarkCouponUsed(orderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[orderID]
	if !ok || row.CouponUsed {
		return
	}
	row.CouponUsed = true
	r.rows[orderID] = row
	r.persistLocked()
}

// LinkUser is the one explicit sticky-field override: account linking
// attaches a guest order to a user.
func (r *OrdersRepository) LinkUser(orderID string, userID uuid.UUID) (order.StatusRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[orderID]
	if !ok {
		return order.StatusRow{}, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	row.UserID = userID
	r.rows[orderID] = row
	r.persistLocked()
	return row, nil
}

func (r *OrdersRepository) Find(orderID string) (order.StatusRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[orderID]
	if !ok {
		return order.StatusRow{}, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return row, nil
}

func (r *OrdersRepository) ListByUser(userID uuid.UUID) []order.StatusRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []order.StatusRow
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sortRows(out)
	return out
}

func (r *OrdersRepository) ListAll() []order.StatusRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]order.StatusRow, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sortRows(out)
	return out
}

// newest first; rows without createdAt sort last
func sortRows(rows []order.StatusRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].CreatedAt, rows[j].CreatedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

func (r *OrdersRepository) persistLocked() {
	snap := store.NewSnapshot()
	for id, row := range r.rows {
		doc, _ := json.Marshal(row)
		snap.Rows[id] = doc
	}
	r.store.Persist(store.KeyOrders, snap)
}
