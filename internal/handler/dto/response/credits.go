package response

import (
	"time"

	"petportrait-checkout/internal/domain/credit"
	"petportrait-checkout/internal/usecase/readmodel"
)

type CreditBalanceResponse struct {
	FreeRemaining int  `json:"free_remaining"`
	PaidRemaining int  `json:"paid_remaining"`
	TotalUsed     int  `json:"total_used"`
	Total         int  `json:"total"`
	TestAccount   bool `json:"test_account,omitempty"`
}

func FromCreditBalanceRM(rm readmodel.CreditBalanceRM) CreditBalanceResponse {
	return CreditBalanceResponse{
		FreeRemaining: rm.FreeRemaining,
		PaidRemaining: rm.PaidRemaining,
		TotalUsed:     rm.TotalUsed,
		Total:         rm.FreeRemaining + rm.PaidRemaining,
		TestAccount:   rm.TestAccount,
	}
}

type CreditTransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount"`
	Description string    `json:"description,omitempty"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCreditTransactions(txs []credit.Transaction) []CreditTransactionResponse {
	out := make([]CreditTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, CreditTransactionResponse{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Description: tx.Description,
			ReferenceID: tx.ReferenceID,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return out
}
