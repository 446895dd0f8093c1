package coupon

import "errors"

var ErrInvalidDiscount = errors.New("invalid discount")

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is the validated outcome of a coupon-service lookup. Value is a
// percentage (0-100, over-100 clamps to free) or a fixed amount in the
// smallest currency unit, depending on Type.
type Discount struct {
	typ   DiscountType
	value int64
}

func NewDiscount(typ string, value int64) (Discount, error) {
	dt := DiscountType(typ)
	if dt != DiscountPercentage && dt != DiscountFixed {
		return Discount{}, ErrInvalidDiscount
	}
	if value < 0 {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{typ: dt, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.typ }
func (d Discount) Value() int64       { return d.value }

// Apply returns the discounted amount, floored at zero. Percentage math is
// integer (round down), matching the amounts the processor is charged.
func (d Discount) Apply(baseAmount int64) int64 {
	if baseAmount <= 0 {
		return 0
	}

	var discounted int64
	switch d.typ {
	case DiscountPercentage:
		pct := d.value
		if pct > 100 {
			pct = 100
		}
		discounted = baseAmount - baseAmount*pct/100
	case DiscountFixed:
		discounted = baseAmount - d.value
	default:
		discounted = baseAmount
	}

	if discounted < 0 {
		return 0
	}
	return discounted
}
