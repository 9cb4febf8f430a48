package domain

import "time"

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// CanTransitionTo reports whether an order may move from its current
// status to the target status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPlaced:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	default:
		return false
	}
}

// PriceBreakdown is the authoritative pricing of an order. All amounts are
// non-negative rupee decimals; Total = Subtotal + Tax + ShippingFee - Discount,
// clamped at zero.
type PriceBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	ShippingFee float64 `json:"shippingFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// ShippingAddress is the address snapshot frozen onto the order at
// confirmation time.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
}

type Order struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	Seq             int64           `json:"-" gorm:"uniqueIndex;autoIncrement"`
	Number          string          `json:"number" gorm:"uniqueIndex"`
	UserID          string          `json:"user_id" gorm:"index;not null"`
	Status          OrderStatus     `json:"status" gorm:"default:placed"`
	PaymentIntentID string          `json:"payment_intent_id" gorm:"uniqueIndex"`
	Breakdown       PriceBreakdown  `json:"breakdown" gorm:"embedded"`
	ShippingAddress ShippingAddress `json:"shipping_address" gorm:"embedded;embeddedPrefix:ship_"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a line item snapshot: name and price are frozen at
// purchase time so later catalog edits don't rewrite history.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	OrderID   string  `json:"order_id" gorm:"index;not null"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
