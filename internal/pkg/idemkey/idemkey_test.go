//go:build unit

package idemkey_test

import (
	"strings"
	"testing"

	"petportrait-checkout/internal/pkg/idemkey"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	t.Run("deterministic for same prefix and seed", func(t *testing.T) {
		first := idemkey.Make("payment", "order-1:src-A")
		second := idemkey.Make("payment", "order-1:src-A")
		assert.Equal(t, first, second)
	})

	t.Run("different seeds yield different keys", func(t *testing.T) {
		a := idemkey.Make("payment", "order-1:src-A")
		b := idemkey.Make("payment", "order-1:src-B")
		assert.NotEqual(t, a, b)
	})

	t.Run("key carries prefix for debuggability", func(t *testing.T) {
		key := idemkey.Make("payment", "order-1:src-A")
		assert.True(t, strings.HasPrefix(key, "payment-"))
	})

	t.Run("fixed length suffix", func(t *testing.T) {
		key := idemkey.Make("webhook", "evt-123")
		assert.Len(t, key, len("webhook-")+idemkey.HashLength)
	})

	t.Run("prefix does not leak into the hash", func(t *testing.T) {
		// Same seed under different prefixes shares the suffix but not the key.
		a := idemkey.Make("payment", "seed")
		b := idemkey.Make("dedup", "seed")
		assert.NotEqual(t, a, b)
		assert.Equal(t, strings.TrimPrefix(a, "payment-"), strings.TrimPrefix(b, "dedup-"))
	})
}
