package usecase

import (
	"context"
	"time"

	"petportrait-checkout/internal/domain/credit"
	"petportrait-checkout/internal/domain/order"
	"petportrait-checkout/internal/infra/outbox"
	"petportrait-checkout/internal/infra/repository"

	"github.com/google/uuid"
)

// Actor is the authenticated session behind a request.
type Actor struct {
	UserID uuid.UUID
	Email  string
	Admin  bool
}

// Repository ports. Production wiring uses internal/infra/repository; tests
// substitute in-memory fakes or gomock mocks.

type OrdersRepository interface {
	Upsert(in order.Update, fb order.Fallbacks) (order.StatusRow, bool)
	MarkCouponUsed(orderID string)
	LinkUser(orderID string, userID uuid.UUID) (order.StatusRow, error)
	Find(orderID string) (order.StatusRow, error)
	ListByUser(userID uuid.UUID) []order.StatusRow
	ListAll() []order.StatusRow
}

type WebhookEventsRepository interface {
	LockEvent(eventID string) func()
	HasProcessed(eventID string) bool
	MarkProcessed(evt repository.ProcessedEvent)
}

type CouponClaims interface {
	Claim(orderID string) bool
	Unclaim(orderID string)
}

type CreditsRepository interface {
	Get(userID uuid.UUID) (credit.Balance, bool)
	Initialize(userID uuid.UUID, freeGrant int) credit.Balance
	Debit(userID uuid.UUID, amount int, description, referenceID string, now time.Time) (credit.Balance, error)
	AddPurchased(userID uuid.UUID, amount int, description, referenceID string, now time.Time) (credit.Balance, bool, error)
	Transactions(userID uuid.UUID) []credit.Transaction
}

// TaskQueue is the outbox port for fire-and-forget side effects.
type TaskQueue interface {
	Submit(t outbox.Task) bool
}

// Downstream collaborators, implemented elsewhere (email delivery and the
// ads/analytics API are out of this service's scope).

type Mailer interface {
	SendOrderConfirmation(ctx context.Context, email string, row order.StatusRow) error
	SendReviewRequest(ctx context.Context, email string, row order.StatusRow) error
}

type Analytics interface {
	TrackPurchase(ctx context.Context, row order.StatusRow) error
}
