package domain

import (
	"time"

	orderdomain "naturemillets-backend/internal/order/domain"
)

// PaymentRecord is the server-side ledger row for a payment intent. It is
// created when the intent is, and carries the order number once the
// intent has been reconciled into an order. The primary key on the intent
// id is what makes confirm-payment idempotent.
type PaymentRecord struct {
	PaymentIntentID string                     `json:"payment_intent_id" gorm:"primaryKey"`
	UserID          string                     `json:"user_id" gorm:"index;not null"`
	AddressID       string                     `json:"address_id" gorm:"not null"`
	PaymentMethod   string                     `json:"payment_method"`
	Breakdown       orderdomain.PriceBreakdown `json:"breakdown" gorm:"embedded"`
	CouponCode      string                     `json:"coupon_code,omitempty"`
	// Cart lines serialized at intent-creation time; the order is built
	// from this snapshot, not the live cart.
	ItemsJSON   string `json:"-" gorm:"type:text"`
	OrderNumber string `json:"order_number,omitempty" gorm:"index"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}
