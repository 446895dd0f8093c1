package response

import (
	"time"

	"petportrait-checkout/internal/domain/order"
	"petportrait-checkout/internal/usecase/readmodel"
)

type OrderItemResponse struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
	Credits    int    `json:"credits,omitempty"`
}

type ShippingAddressResponse struct {
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
	Prefecture string `json:"prefecture"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type GiftInfoResponse struct {
	RecipientName string `json:"recipient_name"`
	Message       string `json:"message,omitempty"`
}

type OrderResponse struct {
	OrderID         string                   `json:"order_id"`
	PaymentID       string                   `json:"payment_id,omitempty"`
	Status          string                   `json:"status"`
	UpdatedAt       time.Time                `json:"updated_at"`
	CreatedAt       *time.Time               `json:"created_at,omitempty"`
	TotalAmount     *int64                   `json:"total_amount,omitempty"`
	BuyerEmail      string                   `json:"buyer_email,omitempty"`
	Items           []OrderItemResponse      `json:"items,omitempty"`
	ShippingAddress *ShippingAddressResponse `json:"shipping_address,omitempty"`
	GiftInfo        *GiftInfoResponse        `json:"gift_info,omitempty"`
	CouponCode      string                   `json:"coupon_code,omitempty"`
	CouponUsed      bool                     `json:"coupon_used,omitempty"`
	ReceiptURL      string                   `json:"receipt_url,omitempty"`
}

func FromStatusRow(row order.StatusRow) OrderResponse {
	resp := OrderResponse{
		OrderID:     row.OrderID,
		PaymentID:   row.PaymentID,
		Status:      row.Status,
		UpdatedAt:   row.UpdatedAt,
		CreatedAt:   row.CreatedAt,
		TotalAmount: row.TotalAmount,
		BuyerEmail:  row.BuyerEmail,
		CouponCode:  row.CouponCode,
		CouponUsed:  row.CouponUsed,
		ReceiptURL:  row.ReceiptURL,
	}
	for _, it := range row.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			SKU: it.SKU, Name: it.Name, Quantity: it.Quantity, UnitAmount: it.UnitAmount, Credits: it.Credits,
		})
	}
	if row.ShippingAddress != nil {
		resp.ShippingAddress = &ShippingAddressResponse{
			Name:       row.ShippingAddress.Name,
			PostalCode: row.ShippingAddress.PostalCode,
			Prefecture: row.ShippingAddress.Prefecture,
			Line1:      row.ShippingAddress.Line1,
			Line2:      row.ShippingAddress.Line2,
			Phone:      row.ShippingAddress.Phone,
		}
	}
	if row.GiftInfo != nil {
		resp.GiftInfo = &GiftInfoResponse{
			RecipientName: row.GiftInfo.RecipientName,
			Message:       row.GiftInfo.Message,
		}
	}
	return resp
}

func FromStatusRows(rows []order.StatusRow) []OrderResponse {
	out := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromStatusRow(row))
	}
	return out
}

type PaymentStatusResponse struct {
	OrderID     string     `json:"order_id"`
	PaymentID   string     `json:"payment_id,omitempty"`
	Status      string     `json:"status,omitempty"`
	TotalAmount *int64     `json:"total_amount,omitempty"`
	ReceiptURL  string     `json:"receipt_url,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Known       bool       `json:"known"`
}

func FromPaymentStatusRM(rm readmodel.PaymentStatusRM) PaymentStatusResponse {
	resp := PaymentStatusResponse{
		OrderID:     rm.OrderID,
		PaymentID:   rm.PaymentID,
		Status:      rm.Status,
		TotalAmount: rm.TotalAmount,
		ReceiptURL:  rm.ReceiptURL,
		Known:       rm.Known,
	}
	if !rm.UpdatedAt.IsZero() {
		updatedAt := rm.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

type CouponValidationResponse struct {
	Valid           bool   `json:"valid"`
	DiscountType    string `json:"discount_type,omitempty"`
	DiscountValue   int64  `json:"discount_value,omitempty"`
	DiscountedTotal *int64 `json:"discounted_total,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

func FromCouponValidationRM(rm readmodel.CouponValidationRM) CouponValidationResponse {
	return CouponValidationResponse{
		Valid:           rm.Valid,
		DiscountType:    rm.DiscountType,
		DiscountValue:   rm.DiscountValue,
		DiscountedTotal: rm.DiscountedTotal,
		Reason:          rm.Reason,
	}
}

// WebhookAckResponse acknowledges receipt; applied=false means the event was
// a duplicate and skipped.
type WebhookAckResponse struct {
	Received bool `json:"received"`
	Applied  bool `json:"applied"`
}
