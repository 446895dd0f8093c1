// Package notify holds the delivery-side stand-ins for the email and
// analytics collaborators. Real delivery happens in a separate service; this
// process only needs the calls to be observable.
package notify

import (
	"context"
	"log/slog"

	"petportrait-checkout/internal/domain/order"
)

type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendOrderConfirmation(ctx context.Context, email string, row order.StatusRow) error {
	m.logger.Info("order confirmation email queued",
		"order_id", row.OrderID, "email", email)
	return nil
}

func (m *LogMailer) SendReviewRequest(ctx context.Context, email string, row order.StatusRow) error {
	m.logger.Info("review request email queued",
		"order_id", row.OrderID, "email", email)
	return nil
}

type LogAnalytics struct {
	logger *slog.Logger
}

func NewLogAnalytics(logger *slog.Logger) *LogAnalytics {
	return &LogAnalytics{logger: logger}
}

func (a *LogAnalytics) TrackPurchase(ctx context.Context, row order.StatusRow) error {
	amount := int64(0)
	if row.TotalAmount != nil {
		amount = *row.TotalAmount
	}
	a.logger.Info("purchase tracked",
		"order_id", row.OrderID, "payment_id", row.PaymentID, "amount", amount)
	return nil
}
