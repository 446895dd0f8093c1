package usecase

import (
	"context"
	"strings"

	"petportrait-checkout/internal/domain/coupon"
	"petportrait-checkout/internal/domain/order"
	reqdto "petportrait-checkout/internal/handler/dto/request"
	"petportrait-checkout/internal/infra"
	"petportrait-checkout/internal/infra/couponapi"
	"petportrait-checkout/internal/infra/paymentapi"
	"petportrait-checkout/internal/pkg/clock"
	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/errs"
	"petportrait-checkout/internal/pkg/idemkey"
	"petportrait-checkout/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CheckoutUseCase interface {
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, actor Actor) (order.StatusRow, error)
	ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest, actor Actor) (order.StatusRow, error)
	GetOrder(ctx context.Context, orderID string, actor Actor) (order.StatusRow, error)
	GetOrders(ctx context.Context, actor Actor) ([]order.StatusRow, error)
	PaymentStatus(ctx context.Context, orderID string) (readmodel.PaymentStatusRM, error)
	ValidateCoupon(ctx context.Context, req reqdto.ValidateCouponRequest) (readmodel.CouponValidationRM, error)
	LinkOrder(ctx context.Context, req reqdto.LinkOrderRequest, actor Actor) (order.StatusRow, error)
}

type checkoutUseCaseImpl struct {
	orders   OrdersRepository
	payments paymentapi.Client
	coupons  couponapi.Client
	effects  *CompletionEffects
	clock    clock.Clock
	cfg      config.Config
}

func NewCheckoutUseCase(
	orders OrdersRepository,
	payments paymentapi.Client,
	coupons couponapi.Client,
	effects *CompletionEffects,
	clk clock.Clock,
	cfg config.Config,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		orders:   orders,
		payments: payments,
		coupons:  coupons,
		effects:  effects,
		clock:    clk,
		cfg:      cfg,
	}
}

// CreateOrder writes the PENDING row with the full purchase snapshot. The
// amount charged later is the discounted total computed here; the processor is
// never asked to apply the coupon itself.
func (c *checkoutUseCaseImpl) CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, actor Actor) (order.StatusRow, error) {
	total := req.Subtotal()
	if total <= 0 {
		return order.StatusRow{}, errs.Mark(errs.New("order total must be positive"), errs.ErrDomainValidationFailed)
	}

	couponCode := req.GetCouponCode()
	if couponCode != "" {
		discounted, err := c.discountedTotal(ctx, couponCode, total)
		if err != nil {
			return order.StatusRow{}, err
		}
		total = discounted
	}

	buyerEmail := req.Email
	if buyerEmail == "" {
		buyerEmail = actor.Email
	}

	now := c.clock.Now()
	row, _ := c.orders.Upsert(order.Update{
		OrderID:         uuid.New().String(),
		Status:          order.StatusPending,
		UpdatedAt:       now,
		UserID:          actor.UserID,
		BuyerEmail:      buyerEmail,
		TotalAmount:     &total,
		CreatedAt:       &now,
		Items:           req.ToItems(),
		ShippingAddress: req.ToShippingAddress(),
		GiftInfo:        req.ToGiftInfo(),
		CouponCode:      couponCode,
	}, order.Fallbacks{})
	return row, nil
}

func (c *checkoutUseCaseImpl) discountedTotal(ctx context.Context, code string, subtotal int64) (int64, error) {
	v, err := c.coupons.Validate(ctx, code)
	if err != nil {
		return 0, err
	}
	if !v.Valid {
		return 0, errs.ErrCouponInvalid
	}

	d, err := coupon.NewDiscount(v.DiscountType, v.DiscountValue)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrCouponInvalid)
	}
	return d.Apply(subtotal), nil
}

// ProcessPayment charges the processor and applies the resulting transition.
// The idempotency key is derived from the order plus the client's request id
// (source id when absent), so client retries of the same attempt cannot
// double-charge.
func (c *checkoutUseCaseImpl) ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest, actor Actor) (order.StatusRow, error) {
	row, err := c.findOwned(req.OrderID, actor)
	if err != nil {
		return order.StatusRow{}, err
	}
	if row.TotalAmount == nil {
		return order.StatusRow{}, errs.Mark(errs.New("order has no charge amount"), errs.ErrDomainValidationFailed)
	}

	seed := req.OrderID + ":" + req.SourceID
	if req.RequestID != "" {
		seed = req.OrderID + ":" + req.RequestID
	}

	payment, err := c.payments.CreatePayment(ctx, paymentapi.CreatePaymentRequest{
		SourceID:       req.SourceID,
		IdempotencyKey: idemkey.Make("payment", seed),
		Amount:         *row.TotalAmount,
		Currency:       c.cfg.Payment.Currency,
		OrderID:        req.OrderID,
		LocationID:     c.cfg.Payment.LocationID,
		BuyerEmail:     row.BuyerEmail,
	})
	if err != nil {
		if apiErr, ok := paymentapi.AsAPIError(err); ok && apiErr.ClientFault() {
			return order.StatusRow{}, errs.Mark(err, errs.ErrPaymentDeclined)
		}
		return order.StatusRow{}, errs.Mark(err, errs.ErrPaymentUpstream)
	}

	updated, completedNow := c.orders.Upsert(order.Update{
		OrderID:    req.OrderID,
		PaymentID:  payment.PaymentID,
		Status:     payment.Status,
		UpdatedAt:  c.clock.Now(),
		ReceiptURL: payment.ReceiptURL,
	}, order.Fallbacks{})

	if completedNow {
		c.effects.OnCompleted(ctx, updated)
		// effects may have flipped couponUsed; respond with the fresh row
		if fresh, ferr := c.orders.Find(req.OrderID); ferr == nil {
			updated = fresh
		}
	}
	return updated, nil
}

func (c *checkoutUseCaseImpl) GetOrder(ctx context.Context, orderID string, actor Actor) (order.StatusRow, error) {
	return c.findOwned(orderID, actor)
}

func (c *checkoutUseCaseImpl) GetOrders(ctx context.Context, actor Actor) ([]order.StatusRow, error) {
	if actor.Admin {
		return c.orders.ListAll(), nil
	}
	return c.orders.ListByUser(actor.UserID), nil
}

// PaymentStatus serves the post-payment redirect page. When the ledger has no
// row yet (webhook raced ahead of create-order persistence, or a foreign
// order id), it falls back to a live processor order lookup for the amount.
func (c *checkoutUseCaseImpl) PaymentStatus(ctx context.Context, orderID string) (readmodel.PaymentStatusRM, error) {
	row, err := c.orders.Find(orderID)
	if err == nil {
		return readmodel.PaymentStatusRM{
			OrderID:     row.OrderID,
			PaymentID:   row.PaymentID,
			Status:      row.Status,
			TotalAmount: row.TotalAmount,
			ReceiptURL:  row.ReceiptURL,
			UpdatedAt:   row.UpdatedAt,
			Known:       true,
		}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return readmodel.PaymentStatusRM{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	ot, err := c.payments.GetOrder(ctx, orderID)
	if err != nil {
		return readmodel.PaymentStatusRM{}, errs.ErrOrderNotFound
	}
	return readmodel.PaymentStatusRM{
		OrderID:     orderID,
		TotalAmount: &ot.Amount,
	}, nil
}

func (c *checkoutUseCaseImpl) ValidateCoupon(ctx context.Context, req reqdto.ValidateCouponRequest) (readmodel.CouponValidationRM, error) {
	v, err := c.coupons.Validate(ctx, req.Code)
	if err != nil {
		return readmodel.CouponValidationRM{}, err
	}
	if !v.Valid {
		return readmodel.CouponValidationRM{Valid: false, Reason: v.Error}, nil
	}

	d, err := coupon.NewDiscount(v.DiscountType, v.DiscountValue)
	if err != nil {
		return readmodel.CouponValidationRM{Valid: false, Reason: "unsupported discount"}, nil
	}

	total := d.Apply(req.Subtotal)
	return readmodel.CouponValidationRM{
		Valid:           true,
		DiscountType:    v.DiscountType,
		DiscountValue:   v.DiscountValue,
		DiscountedTotal: &total,
	}, nil
}

// LinkOrder attaches a guest order to the caller's account. Requires a buyer
// email match and an order younger than the link window; an order already
// owned by someone else is never re-linked.
func (c *checkoutUseCaseImpl) LinkOrder(ctx context.Context, req reqdto.LinkOrderRequest, actor Actor) (order.StatusRow, error) {
	row, err := c.orders.Find(req.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return order.StatusRow{}, errs.ErrOrderNotFound
		}
		return order.StatusRow{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if row.UserID == actor.UserID {
		return row, nil
	}
	if row.UserID != uuid.Nil {
		return order.StatusRow{}, errs.ErrOrderForbidden
	}
	if actor.Email == "" || !strings.EqualFold(row.BuyerEmail, actor.Email) {
		return order.StatusRow{}, errs.ErrOrderForbidden
	}
	if row.CreatedAt == nil || c.clock.Now().Sub(*row.CreatedAt) > c.cfg.Orders.LinkWindow {
		return order.StatusRow{}, errs.ErrOrderNotLinkable
	}

	linked, err := c.orders.LinkUser(req.OrderID, actor.UserID)
	if err != nil {
		return order.StatusRow{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return linked, nil
}

// findOwned hides foreign orders behind not-found so order ids cannot be
// probed by other accounts.
func (c *checkoutUseCaseImpl) findOwned(orderID string, actor Actor) (order.StatusRow, error) {
	row, err := c.orders.Find(orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return order.StatusRow{}, errs.ErrOrderNotFound
		}
		return order.StatusRow{}, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	if actor.Admin {
		return row, nil
	}
	if row.UserID != uuid.Nil && row.UserID != actor.UserID {
		return order.StatusRow{}, errs.ErrOrderNotFound
	}
	return row, nil
}
