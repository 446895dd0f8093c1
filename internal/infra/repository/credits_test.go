//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"petportrait-checkout/internal/domain/credit"
	"petportrait-checkout/internal/infra/repository"
	"petportrait-checkout/internal/infra/store"
	"petportrait-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditsRepo(t *testing.T, st store.Store) *repository.CreditsRepository {
	t.Helper()
	repo, err := repository.NewCreditsRepository(context.Background(), st)
	require.NoError(t, err)
	return repo
}

func TestCreditsRepositoryInitialize(t *testing.T) {
	repo := newCreditsRepo(t, newFakeStore())
	userID := uuid.New()

	b := repo.Initialize(userID, 2)
	assert.Equal(t, 2, b.FreeRemaining)

	// idempotent: a second init after a debit must not re-grant
	_, err := repo.Debit(userID, 1, "generation", "", time.Now())
	require.NoError(t, err)
	again := repo.Initialize(userID, 2)
	assert.Equal(t, 1, again.FreeRemaining)
}

func TestCreditsRepositoryDebit(t *testing.T) {
	now := time.Now()

	t.Run("free before paid across successive debits", func(t *testing.T) {
		repo := newCreditsRepo(t, newFakeStore())
		userID := uuid.New()
		repo.Initialize(userID, 2)
		_, _, err := repo.AddPurchased(userID, 3, "credit pack", "ref-1", now)
		require.NoError(t, err)

		b, err := repo.Debit(userID, 1, "generation", "", now)
		require.NoError(t, err)
		assert.Equal(t, 1, b.FreeRemaining)
		assert.Equal(t, 3, b.PaidRemaining)

		_, err = repo.Debit(userID, 1, "generation", "", now)
		require.NoError(t, err)
		b, err = repo.Debit(userID, 1, "generation", "", now)
		require.NoError(t, err)
		assert.Equal(t, 0, b.FreeRemaining)
		assert.Equal(t, 2, b.PaidRemaining)
	})

	t.Run("insufficient balance appends no transaction", func(t *testing.T) {
		repo := newCreditsRepo(t, newFakeStore())
		userID := uuid.New()
		repo.Initialize(userID, 0)

		_, err := repo.Debit(userID, 1, "generation", "", now)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Empty(t, repo.Transactions(userID))
	})

	t.Run("debit of unknown user fails closed", func(t *testing.T) {
		repo := newCreditsRepo(t, newFakeStore())
		_, err := repo.Debit(uuid.New(), 1, "generation", "", now)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
	})
}

func TestCreditsRepositoryAddPurchased(t *testing.T) {
	now := time.Now()

	t.Run("idempotent per reference id", func(t *testing.T) {
		repo := newCreditsRepo(t, newFakeStore())
		userID := uuid.New()
		repo.Initialize(userID, 0)

		b, credited, err := repo.AddPurchased(userID, 5, "credit pack", "ord-1:pay-1", now)
		require.NoError(t, err)
		assert.True(t, credited)
		assert.Equal(t, 5, b.PaidRemaining)

		b, credited, err = repo.AddPurchased(userID, 5, "credit pack", "ord-1:pay-1", now)
		require.NoError(t, err)
		assert.False(t, credited, "replay must not double-credit")
		assert.Equal(t, 5, b.PaidRemaining)

		assert.Len(t, repo.Transactions(userID), 1)
	})

	t.Run("reference guard survives reload", func(t *testing.T) {
		st := newFakeStore()
		repo := newCreditsRepo(t, st)
		userID := uuid.New()
		_, _, err := repo.AddPurchased(userID, 5, "credit pack", "ord-1:pay-1", now)
		require.NoError(t, err)

		reloaded := newCreditsRepo(t, st)
		b, credited, err := reloaded.AddPurchased(userID, 5, "credit pack", "ord-1:pay-1", now)
		require.NoError(t, err)
		assert.False(t, credited)
		assert.Equal(t, 5, b.PaidRemaining)
	})
}

func TestCreditsRepositoryLedgerDerivable(t *testing.T) {
	st := newFakeStore()
	repo := newCreditsRepo(t, st)
	userID := uuid.New()
	now := time.Now()

	repo.Initialize(userID, 2)
	_, err := repo.Debit(userID, 1, "generation", "", now)
	require.NoError(t, err)
	_, _, err = repo.AddPurchased(userID, 5, "credit pack", "ref-1", now)
	require.NoError(t, err)
	_, err = repo.Debit(userID, 2, "generation", "", now)
	require.NoError(t, err)

	balance, ok := repo.Get(userID)
	require.True(t, ok)

	replayed := credit.ReplayBalance(userID, 2, repo.Transactions(userID))
	assert.Equal(t, balance.FreeRemaining, replayed.FreeRemaining)
	assert.Equal(t, balance.PaidRemaining, replayed.PaidRemaining)
	assert.Equal(t, balance.TotalUsed, replayed.TotalUsed)
}

func TestCreditsRepositoryTransactionsOrdered(t *testing.T) {
	st := newFakeStore()
	repo := newCreditsRepo(t, st)
	userID := uuid.New()
	now := time.Now()

	repo.Initialize(userID, 5)
	for range 3 {
		_, err := repo.Debit(userID, 1, "generation", "", now)
		require.NoError(t, err)
	}

	reloaded := newCreditsRepo(t, st)
	txs := reloaded.Transactions(userID)
	require.Len(t, txs, 3)
	for i := 1; i < len(txs); i++ {
		assert.Less(t, txs[i-1].ID, txs[i].ID, "ULID ids must stay chronologically ordered")
	}
}
