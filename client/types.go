package client

// Wire types mirroring the backend's JSON shapes. The client keeps its
// own copies so it stays a faithful model of what crosses the wire.

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type Cart struct {
	Items      []CartItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Discount   float64    `json:"discount"`
}

type Address struct {
	ID           string `json:"id"`
	Label        string `json:"label,omitempty"`
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
	IsDefault    bool   `json:"is_default"`
}

type PriceBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	ShippingFee float64 `json:"shippingFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}
