package domain

import "time"

const (
	CouponTypePercent = "percent"
	CouponTypeFlat    = "flat"
)

type Coupon struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Code           string     `json:"code" gorm:"uniqueIndex;not null"`
	Type           string     `json:"type" gorm:"not null"` // "percent" or "flat"
	Value          float64    `json:"value" gorm:"not null"`
	MinOrderAmount float64    `json:"min_order_amount"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DiscountFor returns the discount amount this coupon yields on the given
// subtotal. The discount never exceeds the subtotal.
func (cp *Coupon) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch cp.Type {
	case CouponTypePercent:
		discount = subtotal * cp.Value / 100
	case CouponTypeFlat:
		discount = cp.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// Usable reports whether the coupon can be applied to an order of the
// given subtotal at time now.
func (cp *Coupon) Usable(subtotal float64, now time.Time) error {
	if !cp.IsActive {
		return ErrCouponInactive
	}
	if cp.ExpiresAt != nil && cp.ExpiresAt.Before(now) {
		return ErrCouponExpired
	}
	if subtotal < cp.MinOrderAmount {
		return ErrCouponMinOrder
	}
	return nil
}
