package paymentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/errs"
)

// HTTPClient talks to the processor's REST API. Calls time out after the
// configured duration (10s) and are never retried here; retry is the
// caller's responsibility, made safe by the idempotency key.
type HTTPClient struct {
	baseURL     string
	accessToken string
	http        *http.Client
}

func NewHTTPClient(cfg config.PaymentConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		http:        &http.Client{Timeout: cfg.Timeout},
	}
}

type moneyBody struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createPaymentBody struct {
	IdempotencyKey string    `json:"idempotency_key"`
	SourceID       string    `json:"source_id"`
	AmountMoney    moneyBody `json:"amount_money"`
	LocationID     string    `json:"location_id"`
	ReferenceID    string    `json:"reference_id"`
	BuyerEmail     string    `json:"buyer_email_address,omitempty"`
}

type paymentBody struct {
	Payment struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		ReceiptURL string `json:"receipt_url"`
	} `json:"payment"`
}

type orderBody struct {
	Order struct {
		TotalMoney moneyBody `json:"total_money"`
	} `json:"order"`
}

type errorBody struct {
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (c *HTTPClient) CreatePayment(ctx context.Context, req CreatePaymentRequest) (Payment, error) {
	body := createPaymentBody{
		IdempotencyKey: req.IdempotencyKey,
		SourceID:       req.SourceID,
		AmountMoney:    moneyBody{Amount: req.Amount, Currency: req.Currency},
		LocationID:     req.LocationID,
		ReferenceID:    req.OrderID,
		BuyerEmail:     req.BuyerEmail,
	}

	var out paymentBody
	if err := c.do(ctx, http.MethodPost, "/v2/payments", body, &out); err != nil {
		return Payment{}, err
	}
	return Payment{
		PaymentID:  out.Payment.ID,
		Status:     out.Payment.Status,
		ReceiptURL: out.Payment.ReceiptURL,
	}, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, orderID string) (OrderTotal, error) {
	var out orderBody
	if err := c.do(ctx, http.MethodGet, "/v2/orders/"+url.PathEscape(orderID), nil, &out); err != nil {
		return OrderTotal{}, err
	}
	return OrderTotal{
		Amount:   out.Order.TotalMoney.Amount,
		Currency: out.Order.TotalMoney.Currency,
	}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "failed to encode payment request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build payment request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "payment request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read payment response")
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "UNKNOWN"}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && len(eb.Errors) > 0 {
			apiErr.Code = eb.Errors[0].Code
			apiErr.Message = eb.Errors[0].Detail
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errs.Wrap(err, "failed to decode payment response")
	}
	return nil
}
