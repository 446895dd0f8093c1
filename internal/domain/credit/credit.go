package credit

import (
	"time"

	"petportrait-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// Balance is the per-user credit position. Free credits are always consumed
// before paid ones; no field may go negative.
type Balance struct {
	UserID        uuid.UUID `json:"userId"`
	FreeRemaining int       `json:"freeRemaining"`
	PaidRemaining int       `json:"paidRemaining"`
	TotalUsed     int       `json:"totalUsed"`
}

func (b Balance) Total() int {
	return b.FreeRemaining + b.PaidRemaining
}

// Debit consumes amount credits, free first, paid second. It fails closed:
// insufficient total leaves the balance untouched.
func (b Balance) Debit(amount int) (Balance, error) {
	if amount <= 0 {
		return b, errs.ErrDomainValidationFailed
	}
	if b.Total() < amount {
		return b, errs.ErrInsufficientCredits
	}

	fromFree := amount
	if fromFree > b.FreeRemaining {
		fromFree = b.FreeRemaining
	}
	b.FreeRemaining -= fromFree
	b.PaidRemaining -= amount - fromFree
	b.TotalUsed += amount
	return b, nil
}

// AddPaid credits purchased credits. Amount must be positive.
func (b Balance) AddPaid(amount int) (Balance, error) {
	if amount <= 0 {
		return b, errs.ErrDomainValidationFailed
	}
	b.PaidRemaining += amount
	return b, nil
}

type TransactionType string

const (
	TxDebit    TransactionType = "debit"
	TxCredit   TransactionType = "credit"
	TxPurchase TransactionType = "purchase"
)

// Transaction is one append-only ledger entry. Amount is signed: debits are
// negative, credits and purchases positive, so the sum of a user's amounts
// reconstructs FreeRemaining+PaidRemaining-granted deltas for audit.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description,omitempty"`
	ReferenceID string          `json:"referenceId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ReplayBalance folds a transaction log into the balance it implies, given
// the free-grant the account started with. Used by audit tests to check the
// ledger-is-derivable invariant.
func ReplayBalance(userID uuid.UUID, freeGrant int, txs []Transaction) Balance {
	b := Balance{UserID: userID, FreeRemaining: freeGrant}
	for _, tx := range txs {
		switch tx.Type {
		case TxDebit:
			amount := -tx.Amount
			fromFree := amount
			if fromFree > b.FreeRemaining {
				fromFree = b.FreeRemaining
			}
			b.FreeRemaining -= fromFree
			b.PaidRemaining -= amount - fromFree
			b.TotalUsed += amount
		case TxCredit, TxPurchase:
			b.PaidRemaining += tx.Amount
		}
	}
	return b
}
