package repository

import "sync"

// CouponClaims is the single-writer claim/unclaim guard around the remote
// coupon-use call. The claim is deliberately in-memory only: a successful use
// is recorded durably on the order row (couponUsed), while an in-flight claim
// must not survive a process restart.
type CouponClaims struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func NewCouponClaims() *CouponClaims {
	return &CouponClaims{claimed: map[string]bool{}}
}

// Claim acquires the per-order claim. False means another completion
// notification already holds it (or held it to success); the caller must not
// call the remote use endpoint.
func (c *CouponClaims) Claim(orderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.claimed[orderID] {
		return false
	}
	c.claimed[orderID] = true
	return true
}

// Unclaim releases the claim after a failed remote use call so a later
// notification can retry. Never called after success.
func (c *CouponClaims) Unclaim(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.claimed, orderID)
}
