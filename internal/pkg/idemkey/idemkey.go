// Package idemkey derives deterministic idempotency keys from a logical
// operation name and a seed. The same (prefix, seed) pair always yields the
// same key, so a retried payment call carries the same idempotency header and
// cannot double-charge.
package idemkey

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashLength is the number of hex characters kept from the seed digest.
// 32 hex chars = 128 bits, collision-resistant for any realistic key space.
const HashLength = 32

// Make returns "<prefix>-<hex(sha256(seed))[:HashLength]>". Pure, no I/O.
func Make(prefix, seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return prefix + "-" + hex.EncodeToString(sum[:])[:HashLength]
}
