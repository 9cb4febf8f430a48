package dto

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreateCouponRequest struct {
	Code           string  `json:"code" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=percent flat"`
	Value          float64 `json:"value" binding:"required,gt=0"`
	MinOrderAmount float64 `json:"min_order_amount" binding:"gte=0"`
	ExpiresAt      string  `json:"expires_at"` // RFC3339, optional
}

// CartItemView is a cart line joined with its product snapshot.
type CartItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Items      []CartItemView `json:"items"`
	Subtotal   float64        `json:"subtotal"`
	CouponCode string         `json:"coupon_code,omitempty"`
	Discount   float64        `json:"discount"`
}
