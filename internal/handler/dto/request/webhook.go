package request

import "time"

// WebhookEventRequest is the processor's asynchronous payment notification.
// Field names follow the processor's wire format.
type WebhookEventRequest struct {
	EventID string           `json:"event_id" binding:"required"`
	Type    string           `json:"type" binding:"required"`
	Data    WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	Object WebhookEventObject `json:"object"`
}

type WebhookEventObject struct {
	Payment WebhookPayment `json:"payment"`
}

type WebhookPayment struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"order_id"`
	Status      string        `json:"status"`
	ReceiptURL  string        `json:"receipt_url,omitempty"`
	AmountMoney *WebhookMoney `json:"amount_money,omitempty"`
	BuyerEmail  string        `json:"buyer_email_address,omitempty"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

type WebhookMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
