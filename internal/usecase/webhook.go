package usecase

import (
	"context"
	"log/slog"

	"petportrait-checkout/internal/domain/order"
	reqdto "petportrait-checkout/internal/handler/dto/request"
	"petportrait-checkout/internal/infra/paymentapi"
	"petportrait-checkout/internal/infra/repository"
	"petportrait-checkout/internal/pkg/clock"
	"petportrait-checkout/internal/pkg/errs"
)

type WebhookUseCase interface {
	// HandleEvent applies one processor notification to the ledger. The boolean
	// reports whether the event was applied (false on duplicate delivery).
	HandleEvent(ctx context.Context, evt reqdto.WebhookEventRequest) (bool, error)
}

type webhookUseCaseImpl struct {
	orders   OrdersRepository
	events   WebhookEventsRepository
	payments paymentapi.Client
	effects  *CompletionEffects
	clock    clock.Clock
	logger   *slog.Logger
}

func NewWebhookUseCase(
	orders OrdersRepository,
	events WebhookEventsRepository,
	payments paymentapi.Client,
	effects *CompletionEffects,
	clk clock.Clock,
	logger *slog.Logger,
) WebhookUseCase {
	return &webhookUseCaseImpl{
		orders:   orders,
		events:   events,
		payments: payments,
		effects:  effects,
		clock:    clk,
		logger:   logger,
	}
}

// HandleEvent holds the per-event lock across the whole check -> apply -> mark
// sequence, so the processor retrying a delivery concurrently cannot apply the
// same event twice.
func (w *webhookUseCaseImpl) HandleEvent(ctx context.Context, evt reqdto.WebhookEventRequest) (bool, error) {
	payment := evt.Data.Object.Payment
	if evt.EventID == "" || payment.OrderID == "" {
		return false, errs.Mark(errs.New("webhook event missing event or order id"), errs.ErrDomainValidationFailed)
	}

	release := w.events.LockEvent(evt.EventID)
	defer release()

	if w.events.HasProcessed(evt.EventID) {
		w.logger.Info("duplicate webhook event skipped", "event_id", evt.EventID)
		return false, nil
	}

	updatedAt := w.clock.Now()
	if payment.UpdatedAt != nil {
		updatedAt = *payment.UpdatedAt
	}

	var amount *int64
	if payment.AmountMoney != nil {
		amount = &payment.AmountMoney.Amount
	}

	row, completedNow := w.orders.Upsert(order.Update{
		OrderID:     payment.OrderID,
		PaymentID:   payment.ID,
		Status:      payment.Status,
		UpdatedAt:   updatedAt,
		ReceiptURL:  payment.ReceiptURL,
		BuyerEmail:  payment.BuyerEmail,
		TotalAmount: amount,
	}, w.fallbacks(ctx, payment, amount))

	if completedNow {
		w.effects.OnCompleted(ctx, row)
	}

	w.events.MarkProcessed(repository.ProcessedEvent{
		EventID:    evt.EventID,
		EventType:  evt.Type,
		ReceivedAt: w.clock.Now(),
		OrderID:    payment.OrderID,
		PaymentID:  payment.ID,
		Status:     payment.Status,
	})
	return true, nil
}

// fallbacks fills sticky fields for orders this process has never seen (event
// for a row lost before persistence): createdAt defaults to receipt time and
// the amount comes from a processor order lookup. Best effort: a failed lookup
// just leaves the amount absent.
func (w *webhookUseCaseImpl) fallbacks(ctx context.Context, payment reqdto.WebhookPayment, amount *int64) order.Fallbacks {
	if _, err := w.orders.Find(payment.OrderID); err == nil {
		return order.Fallbacks{}
	}

	now := w.clock.Now()
	fb := order.Fallbacks{CreatedAt: &now}
	if amount != nil {
		return fb
	}

	ot, err := w.payments.GetOrder(ctx, payment.OrderID)
	if err != nil {
		w.logger.Warn("order total lookup failed for unknown webhook order",
			"order_id", payment.OrderID, "error", err)
		return fb
	}
	fb.TotalAmount = &ot.Amount
	return fb
}
