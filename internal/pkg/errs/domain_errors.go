package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Order errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotLinkable = errors.New("order cannot be linked")
	ErrOrderForbidden   = errors.New("order does not belong to user")

	// Payment errors
	ErrPaymentDeclined = errors.New("payment declined")
	ErrPaymentUpstream = errors.New("payment processor unavailable")

	// Coupon errors
	ErrCouponInvalid  = errors.New("invalid coupon")
	ErrCouponDisabled = errors.New("coupon feature disabled")

	// Credit errors
	ErrInsufficientCredits = errors.New("insufficient credits")

	// Validation errors
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
