// Package paymentapi is the client for the external payment processor. The
// processor owns payment status strings; this package only transports them.
package paymentapi

import (
	"context"
	"errors"
	"fmt"
)

type CreatePaymentRequest struct {
	SourceID       string
	IdempotencyKey string
	Amount         int64
	Currency       string
	OrderID        string
	LocationID     string
	BuyerEmail     string
}

type Payment struct {
	PaymentID  string
	Status     string
	ReceiptURL string
}

type OrderTotal struct {
	Amount   int64
	Currency string
}

// Client is the processor contract consumed by the checkout use cases.
type Client interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (Payment, error)
	GetOrder(ctx context.Context, orderID string) (OrderTotal, error)
}

// APIError distinguishes client-fault responses (4xx, passed through to the
// caller) from processor faults (5xx/network, surfaced as 502 upstream).
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment api %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// ClientFault reports whether the processor blamed the request itself.
func (e *APIError) ClientFault() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// AsAPIError unwraps an APIError when the processor produced one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
