package domain

import "errors"

var (
	ErrCouponInactive = errors.New("coupon is not active")
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponMinOrder = errors.New("cart subtotal is below the coupon minimum order amount")
)
