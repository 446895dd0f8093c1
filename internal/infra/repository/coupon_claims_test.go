//go:build unit

package repository_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"petportrait-checkout/internal/infra/repository"

	"github.com/stretchr/testify/assert"
)

func TestCouponClaims(t *testing.T) {
	t.Run("second claim for the same order is refused", func(t *testing.T) {
		claims := repository.NewCouponClaims()
		assert.True(t, claims.Claim("ord-1"))
		assert.False(t, claims.Claim("ord-1"))
	})

	t.Run("unclaim allows a retry", func(t *testing.T) {
		claims := repository.NewCouponClaims()
		assert.True(t, claims.Claim("ord-1"))
		claims.Unclaim("ord-1")
		assert.True(t, claims.Claim("ord-1"))
	})

	t.Run("claims are per order", func(t *testing.T) {
		claims := repository.NewCouponClaims()
		assert.True(t, claims.Claim("ord-1"))
		assert.True(t, claims.Claim("ord-2"))
	})

	t.Run("N concurrent completions acquire exactly one claim", func(t *testing.T) {
		claims := repository.NewCouponClaims()

		var acquired atomic.Int32
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if claims.Claim("ord-1") {
					acquired.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), acquired.Load())
	})
}
