package readmodel

import "time"

// PaymentStatusRM is the query-side view of one order's payment state. Known
// reports whether the ledger has the row; when false the fields come from a
// live processor order lookup (amount only, status unknown).
type PaymentStatusRM struct {
	OrderID     string
	PaymentID   string
	Status      string
	TotalAmount *int64
	ReceiptURL  string
	UpdatedAt   time.Time
	Known       bool
}

// CouponValidationRM carries the validation outcome plus the discounted total
// computed for the caller's subtotal. DiscountedTotal is nil when invalid.
type CouponValidationRM struct {
	Valid           bool
	DiscountType    string
	DiscountValue   int64
	DiscountedTotal *int64
	Reason          string
}
