package request

import (
	"strings"

	"petportrait-checkout/internal/domain/order"
)

type OrderItemRequest struct {
	SKU        string `json:"sku" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	UnitAmount int64  `json:"unit_amount" binding:"gte=0"`
	Credits    int    `json:"credits,omitempty" binding:"gte=0"`
}

type ShippingAddressRequest struct {
	Name       string `json:"name" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Prefecture string `json:"prefecture" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type GiftInfoRequest struct {
	RecipientName string `json:"recipient_name" binding:"required"`
	Message       string `json:"message,omitempty"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest      `json:"items" binding:"required,min=1,dive"`
	Email           string                  `json:"email,omitempty" binding:"omitempty,email"`
	ShippingAddress *ShippingAddressRequest `json:"shipping_address,omitempty"`
	GiftInfo        *GiftInfoRequest        `json:"gift_info,omitempty"`
	CouponCode      *string                 `json:"coupon_code,omitempty"`
}

func (r CreateOrderRequest) GetCouponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return strings.TrimSpace(*r.CouponCode)
}

func (r CreateOrderRequest) ToItems() []order.Item {
	items := make([]order.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, order.Item{
			SKU:        it.SKU,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitAmount: it.UnitAmount,
			Credits:    it.Credits,
		})
	}
	return items
}

func (r CreateOrderRequest) ToShippingAddress() *order.ShippingAddress {
	if r.ShippingAddress == nil {
		return nil
	}
	return &order.ShippingAddress{
		Name:       r.ShippingAddress.Name,
		PostalCode: r.ShippingAddress.PostalCode,
		Prefecture: r.ShippingAddress.Prefecture,
		Line1:      r.ShippingAddress.Line1,
		Line2:      r.ShippingAddress.Line2,
		Phone:      r.ShippingAddress.Phone,
	}
}

func (r CreateOrderRequest) ToGiftInfo() *order.GiftInfo {
	if r.GiftInfo == nil {
		return nil
	}
	return &order.GiftInfo{
		RecipientName: r.GiftInfo.RecipientName,
		Message:       r.GiftInfo.Message,
	}
}

// Subtotal sums the undiscounted line amounts.
func (r CreateOrderRequest) Subtotal() int64 {
	var total int64
	for _, it := range r.Items {
		total += int64(it.Quantity) * it.UnitAmount
	}
	return total
}

type ProcessPaymentRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	SourceID string `json:"source_id" binding:"required"`
	// RequestID lets clients retry safely: retries with the same request id
	// produce the same idempotency key.
	RequestID string `json:"request_id,omitempty"`
}

type ValidateCouponRequest struct {
	Code     string `json:"code" binding:"required"`
	Subtotal int64  `json:"subtotal" binding:"required,gt=0"`
}

type LinkOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}
