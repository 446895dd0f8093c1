//go:build unit

package credit_test

import (
	"testing"
	"time"

	"petportrait-checkout/internal/domain/credit"
	"petportrait-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceDebit(t *testing.T) {
	t.Run("free credits consumed before paid", func(t *testing.T) {
		b := credit.Balance{FreeRemaining: 2, PaidRemaining: 3}

		b, err := b.Debit(1)
		require.NoError(t, err)
		assert.Equal(t, 1, b.FreeRemaining)
		assert.Equal(t, 3, b.PaidRemaining)

		b, err = b.Debit(1)
		require.NoError(t, err)
		b, err = b.Debit(1)
		require.NoError(t, err)
		assert.Equal(t, 0, b.FreeRemaining)
		assert.Equal(t, 2, b.PaidRemaining)
		assert.Equal(t, 3, b.TotalUsed)
	})

	t.Run("debit spanning free and paid", func(t *testing.T) {
		b := credit.Balance{FreeRemaining: 1, PaidRemaining: 3}
		b, err := b.Debit(3)
		require.NoError(t, err)
		assert.Equal(t, 0, b.FreeRemaining)
		assert.Equal(t, 1, b.PaidRemaining)
	})

	t.Run("insufficient balance fails closed", func(t *testing.T) {
		b := credit.Balance{FreeRemaining: 0, PaidRemaining: 0}
		after, err := b.Debit(1)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, b, after)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		b := credit.Balance{FreeRemaining: 5}
		_, err := b.Debit(0)
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
		_, err = b.Debit(-1)
		assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
	})
}

func TestBalanceAddPaid(t *testing.T) {
	b := credit.Balance{PaidRemaining: 1}
	b, err := b.AddPaid(5)
	require.NoError(t, err)
	assert.Equal(t, 6, b.PaidRemaining)

	_, err = b.AddPaid(0)
	assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
}

func TestReplayBalance(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	txs := []credit.Transaction{
		{Type: credit.TxDebit, Amount: -1, CreatedAt: now},
		{Type: credit.TxPurchase, Amount: 5, CreatedAt: now},
		{Type: credit.TxDebit, Amount: -2, CreatedAt: now},
	}

	got := credit.ReplayBalance(userID, 2, txs)

	// grant 2 free, spend 1 free, buy 5 paid, spend 1 free + 1 paid
	assert.Equal(t, 0, got.FreeRemaining)
	assert.Equal(t, 4, got.PaidRemaining)
	assert.Equal(t, 3, got.TotalUsed)
}
