package readmodel

// CreditBalanceRM is the balance view returned to clients. Test accounts show
// a fixed display balance without a backing ledger row.
type CreditBalanceRM struct {
	FreeRemaining int
	PaidRemaining int
	TotalUsed     int
	TestAccount   bool
}
