package order

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Status strings are reported by the payment processor and stored as data.
// The ledger only recognizes StatusCompleted as the terminal success signal;
// everything else is passed through untouched.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusCanceled  = "CANCELED"
)

// Item is one purchased line. Credits > 0 marks a credit-pack line: a
// completed payment grants Quantity*Credits generation credits to the buyer.
type Item struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unitAmount"`
	Credits    int    `json:"credits,omitempty"`
}

type ShippingAddress struct {
	Name       string `json:"name"`
	PostalCode string `json:"postalCode"`
	Prefecture string `json:"prefecture"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type GiftInfo struct {
	RecipientName string `json:"recipientName"`
	Message       string `json:"message,omitempty"`
}

// StatusRow is the authoritative ledger row for one order. Identity fields
// (UserID, BuyerEmail, TotalAmount, CreatedAt, Items, ShippingAddress,
// GiftInfo, CouponCode) are sticky: once set on first write they survive later
// partial updates unless explicitly overridden (account linking).
type StatusRow struct {
	OrderID         string           `json:"orderId"`
	PaymentID       string           `json:"paymentId,omitempty"`
	Status          string           `json:"status"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	UserID          uuid.UUID        `json:"userId,omitempty"`
	BuyerEmail      string           `json:"buyerEmail,omitempty"`
	TotalAmount     *int64           `json:"totalAmount,omitempty"`
	CreatedAt       *time.Time       `json:"createdAt,omitempty"`
	Items           []Item           `json:"items,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	GiftInfo        *GiftInfo        `json:"giftInfo,omitempty"`
	CouponCode      string           `json:"couponCode,omitempty"`
	CouponUsed      bool             `json:"couponUsed,omitempty"`
	ReceiptURL      string           `json:"receiptUrl,omitempty"`
}

func (r StatusRow) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// CreditCount sums the credits granted by credit-pack lines.
func (r StatusRow) CreditCount() int {
	total := 0
	for _, it := range r.Items {
		if it.Credits > 0 {
			total += it.Quantity * it.Credits
		}
	}
	return total
}

// Update is one incoming transition, from either the synchronous payment call
// or the asynchronous webhook. Nil/zero optional fields mean "absent from the
// payload", never "clear the stored value".
type Update struct {
	OrderID         string
	PaymentID       string
	Status          string
	UpdatedAt       time.Time
	ReceiptURL      string
	UserID          uuid.UUID
	BuyerEmail      string
	TotalAmount     *int64
	CreatedAt       *time.Time
	Items           []Item
	ShippingAddress *ShippingAddress
	GiftInfo        *GiftInfo
	CouponCode      string
	CouponUsed      bool
}

// Fallbacks fill sticky fields only when neither the existing row nor the
// incoming update carries them (e.g. a webhook for an order this process has
// never seen, where the amount comes from a processor order lookup).
type Fallbacks struct {
	TotalAmount *int64
	CreatedAt   *time.Time
}

// Merge builds the candidate row for an incoming transition.
//
// Field precedence:
//
//	status, paymentId, updatedAt  incoming wins (last-writer-wins)
//	sticky identity fields        existing wins; incoming fills gaps;
//	                              fallbacks fill what is still absent
//	receiptUrl                    incoming if valid https, else existing
//	couponUsed                    monotonic false -> true
func Merge(existing *StatusRow, in Update, fb Fallbacks) StatusRow {
	row := StatusRow{
		OrderID:   in.OrderID,
		PaymentID: in.PaymentID,
		Status:    in.Status,
		UpdatedAt: in.UpdatedAt,
	}

	if existing != nil {
		if row.PaymentID == "" {
			row.PaymentID = existing.PaymentID
		}
		row.UserID = existing.UserID
		row.BuyerEmail = existing.BuyerEmail
		row.TotalAmount = existing.TotalAmount
		row.CreatedAt = existing.CreatedAt
		row.Items = existing.Items
		row.ShippingAddress = existing.ShippingAddress
		row.GiftInfo = existing.GiftInfo
		row.CouponCode = existing.CouponCode
		row.CouponUsed = existing.CouponUsed
	}

	if row.UserID == uuid.Nil {
		row.UserID = in.UserID
	}
	if row.BuyerEmail == "" {
		row.BuyerEmail = in.BuyerEmail
	}
	if row.TotalAmount == nil {
		row.TotalAmount = in.TotalAmount
	}
	if row.TotalAmount == nil {
		row.TotalAmount = fb.TotalAmount
	}
	if row.CreatedAt == nil {
		row.CreatedAt = in.CreatedAt
	}
	if row.CreatedAt == nil {
		row.CreatedAt = fb.CreatedAt
	}
	if row.Items == nil {
		row.Items = in.Items
	}
	if row.ShippingAddress == nil {
		row.ShippingAddress = in.ShippingAddress
	}
	if row.GiftInfo == nil {
		row.GiftInfo = in.GiftInfo
	}
	if row.CouponCode == "" {
		row.CouponCode = in.CouponCode
	}
	if in.CouponUsed {
		row.CouponUsed = true
	}

	if sanitized := SanitizeReceiptURL(in.ReceiptURL); sanitized != "" {
		row.ReceiptURL = sanitized
	} else if existing != nil {
		row.ReceiptURL = SanitizeReceiptURL(existing.ReceiptURL)
	}

	return row
}

// SanitizeReceiptURL returns the input only if it parses as an https URL with
// a host; anything else (http, garbage, empty) collapses to "" and the field
// is never stored.
func SanitizeReceiptURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return ""
	}
	return raw
}
