//go:build unit

package webhooksig_test

import (
	"testing"

	"petportrait-checkout/internal/pkg/webhooksig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	body := []byte(`{"event_id":"evt-1"}`)

	t.Run("accepts its own signature", func(t *testing.T) {
		sig := webhooksig.Sign("key-a", body)
		require.NoError(t, webhooksig.Verify("key-a", body, sig))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		err := webhooksig.Verify("key-a", body, "")
		assert.ErrorIs(t, err, webhooksig.ErrInvalidSignature)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		sig := webhooksig.Sign("key-b", body)
		err := webhooksig.Verify("key-a", body, sig)
		assert.ErrorIs(t, err, webhooksig.ErrInvalidSignature)
	})

	t.Run("rejects tampered body", func(t *testing.T) {
		sig := webhooksig.Sign("key-a", body)
		err := webhooksig.Verify("key-a", []byte(`{"event_id":"evt-2"}`), sig)
		assert.ErrorIs(t, err, webhooksig.ErrInvalidSignature)
	})
}
