// Package couponapi talks to the internal coupon service. Both endpoints are
// guarded by a shared-secret header; missing configuration degrades to
// "feature disabled" instead of failing requests.
package couponapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/errs"
)

const secretHeader = "X-Internal-Secret"

type Validation struct {
	Valid         bool   `json:"valid"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	Error         string `json:"error,omitempty"`
}

type Client interface {
	// Enabled reports whether the coupon feature is configured at all.
	Enabled() bool
	Validate(ctx context.Context, code string) (Validation, error)
	// Use marks the coupon consumed on the remote side. Callers must hold the
	// per-order claim around this call.
	Use(ctx context.Context, code string) (bool, error)
}

type HTTPClient struct {
	baseURL      string
	sharedSecret string
	http         *http.Client
}

func NewHTTPClient(cfg config.CouponConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:      cfg.BaseURL,
		sharedSecret: cfg.SharedSecret,
		http:         &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *HTTPClient) Enabled() bool {
	return c.baseURL != "" && c.sharedSecret != ""
}

func (c *HTTPClient) Validate(ctx context.Context, code string) (Validation, error) {
	if !c.Enabled() {
		return Validation{}, errs.ErrCouponDisabled
	}

	var out Validation
	if err := c.post(ctx, "/validate", map[string]string{"code": code}, &out); err != nil {
		return Validation{}, err
	}
	return out, nil
}

func (c *HTTPClient) Use(ctx context.Context, code string) (bool, error) {
	if !c.Enabled() {
		return false, errs.ErrCouponDisabled
	}

	var used bool
	if err := c.post(ctx, "/use", map[string]string{"code": code}, &used); err != nil {
		return false, err
	}
	return used, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to encode coupon request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return errs.Wrap(err, "failed to build coupon request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, c.sharedSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "coupon request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read coupon response")
	}
	if resp.StatusCode >= 400 {
		return errs.New("coupon service returned " + resp.Status)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errs.Wrap(err, "failed to decode coupon response")
	}
	return nil
}
