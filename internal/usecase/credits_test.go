//go:build unit

package usecase_test

import (
	"context"
	"testing"

	reqdto "petportrait-checkout/internal/handler/dto/request"
	"petportrait-checkout/internal/pkg/errs"
	"petportrait-checkout/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditsUseCase(f *fixture, testEmails ...string) usecase.CreditsUseCase {
	cfg := f.cfg
	cfg.Credits.TestUserEmails = testEmails
	return usecase.NewCreditsUseCase(f.credits, f.clk, cfg)
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("first query lazily grants free credits", func(t *testing.T) {
		f := newFixture(t)
		uc := newCreditsUseCase(f)
		actor := customer()

		rm, err := uc.GetBalance(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, f.cfg.Credits.FreeGrant, rm.FreeRemaining)
		assert.Zero(t, rm.PaidRemaining)
		assert.False(t, rm.TestAccount)

		// the grant is not repeated
		rm, err = uc.GetBalance(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, f.cfg.Credits.FreeGrant, rm.FreeRemaining)
	})

	t.Run("allow-listed test account shows the display balance off-ledger", func(t *testing.T) {
		f := newFixture(t)
		uc := newCreditsUseCase(f, "qa@example.com")
		actor := usecase.Actor{UserID: uuid.New(), Email: "qa@example.com"}

		rm, err := uc.GetBalance(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, f.cfg.Credits.TestDisplayBalance, rm.FreeRemaining)
		assert.True(t, rm.TestAccount)

		_, ok := f.credits.Get(actor.UserID)
		assert.False(t, ok)
	})
}

func TestDebitCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("debits free credits before paid", func(t *testing.T) {
		f := newFixture(t)
		uc := newCreditsUseCase(f)
		actor := customer()

		_, _, err := f.credits.AddPurchased(actor.UserID, 3, "credit pack purchase", "ord-1:pay-1", baseTime)
		require.NoError(t, err)

		rm, err := uc.Debit(ctx, reqdto.DebitCreditsRequest{Amount: 1, Description: "portrait generation"}, actor)
		require.NoError(t, err)
		// balance existed before the first GetBalance, so no free grant applies
		assert.Equal(t, 0, rm.FreeRemaining)
		assert.Equal(t, 2, rm.PaidRemaining)
		assert.Equal(t, 1, rm.TotalUsed)
	})

	t.Run("lazily initializes then debits the free grant", func(t *testing.T) {
		f := newFixture(t)
		uc := newCreditsUseCase(f)
		actor := customer()

		rm, err := uc.Debit(ctx, reqdto.DebitCreditsRequest{Amount: 1, Description: "portrait generation"}, actor)
		require.NoError(t, err)
		assert.Equal(t, f.cfg.Credits.FreeGrant-1, rm.FreeRemaining)
	})

	t.Run("fails closed on insufficient balance", func(t *testing.T) {
		f := newFixture(t)
		uc := newCreditsUseCase(f)
		actor := customer()

		_, err := uc.Debit(ctx, reqdto.DebitCreditsRequest{Amount: 99, Description: "portrait generation"}, actor)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)

		rm, err := uc.GetBalance(ctx, actor)
		require.NoError(t, err)
		assert.Equal(t, f.cfg.Credits.FreeGrant, rm.FreeRemaining)
		assert.Zero(t, rm.TotalUsed)
	})

	t.Run("test account debits are a no-op", func(t *testing.T) {
		f := newFixture(t)
		uc := newCreditsUseCase(f, "qa@example.com")
		actor := usecase.Actor{UserID: uuid.New(), Email: "qa@example.com"}

		rm, err := uc.Debit(ctx, reqdto.DebitCreditsRequest{Amount: 5, Description: "portrait generation"}, actor)
		require.NoError(t, err)
		assert.True(t, rm.TestAccount)
		assert.Equal(t, f.cfg.Credits.TestDisplayBalance, rm.FreeRemaining)

		_, ok := f.credits.Get(actor.UserID)
		assert.False(t, ok)
	})
}

func TestGetTransactions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := newCreditsUseCase(f, "qa@example.com")
	actor := customer()

	_, _, err := f.credits.AddPurchased(actor.UserID, 3, "credit pack purchase", "ord-1:pay-1", baseTime)
	require.NoError(t, err)
	_, err = uc.Debit(ctx, reqdto.DebitCreditsRequest{Amount: 2, Description: "portrait generation"}, actor)
	require.NoError(t, err)

	txs, err := uc.GetTransactions(ctx, actor)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, 3, txs[0].Amount)
	assert.Equal(t, -2, txs[1].Amount)

	// test accounts have no ledger
	qa := usecase.Actor{UserID: uuid.New(), Email: "qa@example.com"}
	txs, err = uc.GetTransactions(ctx, qa)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
