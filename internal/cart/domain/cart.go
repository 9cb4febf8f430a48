package domain

import "time"

type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index:idx_cart_user_product,unique;not null"`
	ProductID string    `json:"product_id" gorm:"index:idx_cart_user_product,unique;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppliedCoupon records which coupon code a user has applied to their cart.
// At most one per user; replaced on re-apply, removed on checkout.
type AppliedCoupon struct {
	UserID    string    `json:"user_id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"not null"`
	AppliedAt time.Time `json:"applied_at"`
}
