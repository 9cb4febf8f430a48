package dto

import orderdomain "naturemillets-backend/internal/order/domain"

type CreatePaymentIntentRequest struct {
	AddressID     string `json:"addressId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret    string                     `json:"clientSecret"`
	PaymentIntentID string                     `json:"paymentIntentId"`
	Breakdown       orderdomain.PriceBreakdown `json:"breakdown"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	AddressID       string `json:"addressId" binding:"required"`
}

type ConfirmPaymentResponse struct {
	OrderNumber string `json:"orderNumber"`
}
