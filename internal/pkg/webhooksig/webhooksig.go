// Package webhooksig verifies the HMAC-SHA256 signature the payment processor
// attaches to webhook deliveries. The signature covers the raw request body.
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

const HeaderName = "X-Webhook-Signature"

var ErrInvalidSignature = errors.New("invalid webhook signature")

// Sign computes the base64 HMAC-SHA256 of body under key. Exposed so tests
// and local tooling can produce valid deliveries.
func Sign(key string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks the provided signature against the raw body in constant time.
func Verify(key string, body []byte, signature string) error {
	if signature == "" {
		return ErrInvalidSignature
	}
	expected := Sign(key, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
