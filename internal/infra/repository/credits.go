package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"petportrait-checkout/internal/domain/credit"
	"petportrait-checkout/internal/infra"
	"petportrait-checkout/internal/infra/store"
	"petportrait-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// processedReference marks a purchase reference that has already been
// credited, mirroring the webhook event log's at-most-once pattern.
type processedReference struct {
	ReferenceID string    `json:"referenceId"`
	ProcessedAt time.Time `json:"processedAt"`
}

// CreditsRepository owns balances, the append-only transaction log and the
// processed-reference guard. Transaction ids are ULIDs, so the lexicographic
// order of ids is also chronological order.
type CreditsRepository struct {
	mu       sync.Mutex
	balances map[uuid.UUID]credit.Balance
	txs      map[uuid.UUID][]credit.Transaction
	refs     map[string]processedReference
	store    store.Store
}

func NewCreditsRepository(ctx context.Context, st store.Store) (*CreditsRepository, error) {
	r := &CreditsRepository{
		balances: map[uuid.UUID]credit.Balance{},
		txs:      map[uuid.UUID][]credit.Transaction{},
		refs:     map[string]processedReference{},
		store:    st,
	}

	balSnap, err := st.Load(ctx, store.KeyCreditBalances)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load credit balances snapshot", err)
	}
	for id, doc := range balSnap.Rows {
		userID, perr := uuid.Parse(id)
		if perr != nil {
			return nil, infra.WrapRepoErr("invalid balance row id", perr)
		}
		var b credit.Balance
		if err := json.Unmarshal(doc, &b); err != nil {
			return nil, infra.WrapRepoErr("failed to decode credit balance", err)
		}
		r.balances[userID] = b
	}

	txSnap, err := st.Load(ctx, store.KeyCreditTxs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load credit transactions snapshot", err)
	}
	for _, doc := range txSnap.Rows {
		var tx credit.Transaction
		if err := json.Unmarshal(doc, &tx); err != nil {
			return nil, infra.WrapRepoErr("failed to decode credit transaction", err)
		}
		r.txs[tx.UserID] = append(r.txs[tx.UserID], tx)
	}
	for userID := range r.txs {
		list := r.txs[userID]
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}

	refSnap, err := st.Load(ctx, store.KeyCreditReferences)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load credit references snapshot", err)
	}
	for id, doc := range refSnap.Rows {
		var ref processedReference
		if err := json.Unmarshal(doc, &ref); err != nil {
			return nil, infra.WrapRepoErr("failed to decode credit reference", err)
		}
		r.refs[id] = ref
	}

	return r, nil
}

// Get returns the balance and whether the user has one yet.
func (r *CreditsRepository) Get(userID uuid.UUID) (credit.Balance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[userID]
	return b, ok
}

// Initialize lazily creates the balance with the configured free grant.
// Idempotent: an existing balance is returned unchanged.
func (r *CreditsRepository) Initialize(userID uuid.UUID, freeGrant int) credit.Balance {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.balances[userID]; ok {
		return b
	}
	b := credit.Balance{UserID: userID, FreeRemaining: freeGrant}
	r.balances[userID] = b
	r.persistLocked()
	return b
}

// Debit consumes credits (free first) and appends the debit transaction.
// Fails closed with no mutation and no transaction on insufficient balance.
func (r *CreditsRepository) Debit(userID uuid.UUID, amount int, description, referenceID string, now time.Time) (credit.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.balances[userID]
	if !ok {
		return credit.Balance{}, errs.ErrInsufficientCredits
	}

	after, err := b.Debit(amount)
	if err != nil {
		return b, err
	}

	r.balances[userID] = after
	r.appendTxLocked(credit.Transaction{
		ID:          ulid.Make().String(),
		UserID:      userID,
		Type:        credit.TxDebit,
		Amount:      -amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   now,
	})
	r.persistLocked()
	return after, nil
}

// AddPurchased grants paid credits at most once per referenceID. The boolean
// reports whether this call actually credited (false on replay).
func (r *CreditsRepository) AddPurchased(userID uuid.UUID, amount int, description, referenceID string, now time.Time) (credit.Balance, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.refs[referenceID]; seen {
		return r.balances[userID], false, nil
	}

	b := r.balances[userID] // zero balance if absent; lazy creation
	b.UserID = userID
	after, err := b.AddPaid(amount)
	if err != nil {
		return b, false, err
	}

	r.balances[userID] = after
	r.refs[referenceID] = processedReference{ReferenceID: referenceID, ProcessedAt: now}
	r.appendTxLocked(credit.Transaction{
		ID:          ulid.Make().String(),
		UserID:      userID,
		Type:        credit.TxPurchase,
		Amount:      amount,
		Description: description,
		ReferenceID: referenceID,
		CreatedAt:   now,
	})
	r.persistLocked()
	return after, true, nil
}

// Transactions returns the user's ledger entries in chronological order.
func (r *CreditsRepository) Transactions(userID uuid.UUID) []credit.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.txs[userID]
	out := make([]credit.Transaction, len(list))
	copy(out, list)
	return out
}

func (r *CreditsRepository) appendTxLocked(tx credit.Transaction) {
	r.txs[tx.UserID] = append(r.txs[tx.UserID], tx)
}

func (r *CreditsRepository) persistLocked() {
	balSnap := store.NewSnapshot()
	for userID, b := range r.balances {
		doc, _ := json.Marshal(b)
		balSnap.Rows[userID.String()] = doc
	}
	r.store.Persist(store.KeyCreditBalances, balSnap)

	txSnap := store.NewSnapshot()
	for _, list := range r.txs {
		for _, tx := range list {
			doc, _ := json.Marshal(tx)
			txSnap.Rows[tx.ID] = doc
		}
	}
	r.store.Persist(store.KeyCreditTxs, txSnap)

	refSnap := store.NewSnapshot()
	for id, ref := range r.refs {
		doc, _ := json.Marshal(ref)
		refSnap.Rows[id] = doc
	}
	r.store.Persist(store.KeyCreditReferences, refSnap)
}
