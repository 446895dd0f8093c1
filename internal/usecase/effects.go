package usecase

import (
	"context"
	"log/slog"

	"petportrait-checkout/internal/domain/order"
	"petportrait-checkout/internal/infra/couponapi"
	"petportrait-checkout/internal/infra/outbox"
	"petportrait-checkout/internal/pkg/clock"
	"petportrait-checkout/internal/pkg/config"

	"github.com/google/uuid"
)

// CompletionEffects runs the once-per-order side effects when a transition
// moves an order into COMPLETED: remote coupon consumption, credit-pack
// grants, confirmation/review emails and purchase tracking. Both the
// synchronous payment path and the webhook path funnel through here; the
// caller guarantees it only fires on the transition, and every guard inside
// (coupon claim, credit reference, outbox dedup) makes a replay harmless.
//
// Everything here is best-effort: failures are logged and never propagated to
// the payment response. A paid order with a failed email is a support ticket,
// not a refund.
type CompletionEffects struct {
	orders    OrdersRepository
	claims    CouponClaims
	coupons   couponapi.Client
	credits   CreditsRepository
	tasks     TaskQueue
	mailer    Mailer
	analytics Analytics
	clock     clock.Clock
	cfg       config.Config
	logger    *slog.Logger
}

func NewCompletionEffects(
	orders OrdersRepository,
	claims CouponClaims,
	coupons couponapi.Client,
	credits CreditsRepository,
	tasks TaskQueue,
	mailer Mailer,
	analytics Analytics,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *CompletionEffects {
	return &CompletionEffects{
		orders:    orders,
		claims:    claims,
		coupons:   coupons,
		credits:   credits,
		tasks:     tasks,
		mailer:    mailer,
		analytics: analytics,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

func (e *CompletionEffects) OnCompleted(ctx context.Context, row order.StatusRow) {
	e.consumeCoupon(ctx, row)
	e.grantCredits(row)
	e.scheduleNotifications(row)
}

// consumeCoupon marks the coupon used on the remote coupon service, at most
// once per order. The claim is the mutex: concurrent completion notifications
// race on Claim, the loser backs off, and a failed remote call releases the
// claim so a later notification can retry.
func (e *CompletionEffects) consumeCoupon(ctx context.Context, row order.StatusRow) {
	if row.CouponCode == "" || row.CouponUsed || !e.coupons.Enabled() {
		return
	}
	if !e.claims.Claim(row.OrderID) {
		return
	}

	used, err := e.coupons.Use(ctx, row.CouponCode)
	if err != nil || !used {
		e.claims.Unclaim(row.OrderID)
		e.logger.Warn("coupon use failed, claim released",
			"order_id", row.OrderID, "coupon", row.CouponCode, "error", err)
		return
	}
	e.orders.MarkCouponUsed(row.OrderID)
}

// grantCredits credits purchased generation credits for credit-pack line
// items. The reference id ties the grant to this order+payment pair, so a
// replayed webhook for the same payment never double-credits.
func (e *CompletionEffects) grantCredits(row order.StatusRow) {
	amount := row.CreditCount()
	if amount == 0 || row.UserID == uuid.Nil {
		return
	}

	referenceID := row.OrderID + ":" + row.PaymentID
	_, credited, err := e.credits.AddPurchased(row.UserID, amount, "credit pack purchase", referenceID, e.clock.Now())
	if err != nil {
		e.logger.Error("credit grant failed",
			"order_id", row.OrderID, "user_id", row.UserID, "amount", amount, "error", err)
		return
	}
	if !credited {
		e.logger.Info("credit grant skipped, reference already processed",
			"order_id", row.OrderID, "reference_id", referenceID)
	}
}

func (e *CompletionEffects) scheduleNotifications(row order.StatusRow) {
	if row.BuyerEmail == "" {
		return
	}

	e.tasks.Submit(outbox.Task{
		Kind:     "order_confirmation_email",
		DedupKey: "confirm:" + row.OrderID,
		Run: func(ctx context.Context) error {
			return e.mailer.SendOrderConfirmation(ctx, row.BuyerEmail, row)
		},
	})
	e.tasks.Submit(outbox.Task{
		Kind:     "review_request_email",
		DedupKey: "review:" + row.OrderID,
		Delay:    e.cfg.Orders.ReviewDelay,
		Run: func(ctx context.Context) error {
			return e.mailer.SendReviewRequest(ctx, row.BuyerEmail, row)
		},
	})
	e.tasks.Submit(outbox.Task{
		Kind:     "purchase_tracking",
		DedupKey: "track:" + row.OrderID,
		Run: func(ctx context.Context) error {
			return e.analytics.TrackPurchase(ctx, row)
		},
	})
}
