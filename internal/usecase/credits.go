package usecase

import (
	"context"
	"strings"

	"petportrait-checkout/internal/domain/credit"
	reqdto "petportrait-checkout/internal/handler/dto/request"
	"petportrait-checkout/internal/pkg/clock"
	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/usecase/readmodel"
)

type CreditsUseCase interface {
	GetBalance(ctx context.Context, actor Actor) (readmodel.CreditBalanceRM, error)
	GetTransactions(ctx context.Context, actor Actor) ([]credit.Transaction, error)
	Debit(ctx context.Context, req reqdto.DebitCreditsRequest, actor Actor) (readmodel.CreditBalanceRM, error)
}

type creditsUseCaseImpl struct {
	credits CreditsRepository
	clock   clock.Clock
	cfg     config.Config
}

func NewCreditsUseCase(credits CreditsRepository, clk clock.Clock, cfg config.Config) CreditsUseCase {
	return &creditsUseCaseImpl{credits: credits, clock: clk, cfg: cfg}
}

// GetBalance lazily creates the balance with the free grant on first query.
// Allow-listed test accounts report a fixed display balance and never touch
// the ledger.
func (c *creditsUseCaseImpl) GetBalance(ctx context.Context, actor Actor) (readmodel.CreditBalanceRM, error) {
	if c.isTestAccount(actor) {
		return c.testBalance(), nil
	}

	b, ok := c.credits.Get(actor.UserID)
	if !ok {
		b = c.credits.Initialize(actor.UserID, c.cfg.Credits.FreeGrant)
	}
	return toBalanceRM(b), nil
}

func (c *creditsUseCaseImpl) GetTransactions(ctx context.Context, actor Actor) ([]credit.Transaction, error) {
	if c.isTestAccount(actor) {
		return []credit.Transaction{}, nil
	}
	return c.credits.Transactions(actor.UserID), nil
}

// Debit consumes generation credits, free before paid, failing closed on an
// insufficient balance. Test accounts report success without consuming
// anything.
func (c *creditsUseCaseImpl) Debit(ctx context.Context, req reqdto.DebitCreditsRequest, actor Actor) (readmodel.CreditBalanceRM, error) {
	if c.isTestAccount(actor) {
		return c.testBalance(), nil
	}

	if _, ok := c.credits.Get(actor.UserID); !ok {
		c.credits.Initialize(actor.UserID, c.cfg.Credits.FreeGrant)
	}

	b, err := c.credits.Debit(actor.UserID, req.Amount, req.Description, req.ReferenceID, c.clock.Now())
	if err != nil {
		return readmodel.CreditBalanceRM{}, err
	}
	return toBalanceRM(b), nil
}

func (c *creditsUseCaseImpl) isTestAccount(actor Actor) bool {
	if actor.Email == "" {
		return false
	}
	for _, email := range c.cfg.Credits.TestUserEmails {
		if strings.EqualFold(email, actor.Email) {
			return true
		}
	}
	return false
}

func (c *creditsUseCaseImpl) testBalance() readmodel.CreditBalanceRM {
	return readmodel.CreditBalanceRM{
		FreeRemaining: c.cfg.Credits.TestDisplayBalance,
		TestAccount:   true,
	}
}

func toBalanceRM(b credit.Balance) readmodel.CreditBalanceRM {
	return readmodel.CreditBalanceRM{
		FreeRemaining: b.FreeRemaining,
		PaidRemaining: b.PaidRemaining,
		TotalUsed:     b.TotalUsed,
	}
}
