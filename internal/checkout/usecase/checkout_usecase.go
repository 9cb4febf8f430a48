package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"

	addressrepo "naturemillets-backend/internal/address/repository"
	cartdto "naturemillets-backend/internal/cart/dto"
	cartusecase "naturemillets-backend/internal/cart/usecase"
	checkoutdomain "naturemillets-backend/internal/checkout/domain"
	checkoutdto "naturemillets-backend/internal/checkout/dto"
	checkoutrepo "naturemillets-backend/internal/checkout/repository"
	orderdomain "naturemillets-backend/internal/order/domain"
	orderrepo "naturemillets-backend/internal/order/repository"
	"naturemillets-backend/pkg/payment"
)

const (
	// Currency for all charges; amounts are converted to paise for the provider
	Currency = "inr"
	// GST applied to the cart subtotal
	TaxRate = 0.18
	// Orders at or above this subtotal ship free
	FreeShippingThreshold = 500.0
	ShippingFlatFee       = 50.0
)

// PlacedNotifier is notified when a confirmed payment materializes an
// order. Implemented by the notification service; nil disables it.
type PlacedNotifier interface {
	OrderPlaced(userID, orderNumber string)
}

// CheckoutUsecase drives payment-intent creation and the post-payment
// reconciliation that turns a confirmed intent into an order.
type CheckoutUsecase interface {
	CreatePaymentIntent(ctx context.Context, userID string, req *checkoutdto.CreatePaymentIntentRequest) (*checkoutdto.CreatePaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, userID string, req *checkoutdto.ConfirmPaymentRequest) (*checkoutdto.ConfirmPaymentResponse, error)
}

type checkoutUsecase struct {
	cartUsecase cartusecase.CartUsecase
	addressRepo addressrepo.AddressRepository
	paymentRepo checkoutrepo.PaymentRepository
	orderRepo   orderrepo.OrderRepository
	provider    payment.Provider
	notifier    PlacedNotifier
}

func NewCheckoutUsecase(
	cartUsecase cartusecase.CartUsecase,
	addressRepo addressrepo.AddressRepository,
	paymentRepo checkoutrepo.PaymentRepository,
	orderRepo orderrepo.OrderRepository,
	provider payment.Provider,
	notifier PlacedNotifier,
) CheckoutUsecase {
	return &checkoutUsecase{
		cartUsecase: cartUsecase,
		addressRepo: addressRepo,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		provider:    provider,
		notifier:    notifier,
	}
}

// ComputeBreakdown derives the authoritative price breakdown from a cart
// subtotal and discount: 18% GST on the subtotal, flat shipping below the
// free-shipping threshold, total clamped at zero.
func ComputeBreakdown(subtotal, discount float64) orderdomain.PriceBreakdown {
	tax := round2(subtotal * TaxRate)

	shipping := ShippingFlatFee
	if subtotal >= FreeShippingThreshold || subtotal == 0 {
		shipping = 0
	}

	total := round2(subtotal + tax + shipping - discount)
	if total < 0 {
		total = 0
	}

	return orderdomain.PriceBreakdown{
		Subtotal:    round2(subtotal),
		Tax:         tax,
		ShippingFee: shipping,
		Discount:    round2(discount),
		Total:       total,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (u *checkoutUsecase) CreatePaymentIntent(ctx context.Context, userID string, req *checkoutdto.CreatePaymentIntentRequest) (*checkoutdto.CreatePaymentIntentResponse, error) {
	cart, err := u.cartUsecase.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	address, err := u.addressRepo.FindByID(req.AddressID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.UserID != userID {
		return nil, errors.New("address not found")
	}

	breakdown := ComputeBreakdown(cart.Subtotal, cart.Discount)

	intent, err := u.provider.CreateIntent(ctx, int64(math.Round(breakdown.Total*100)), Currency, map[string]string{
		"user_id":    userID,
		"address_id": req.AddressID,
	})
	if err != nil {
		return nil, err
	}

	// Snapshot the cart lines onto the payment record so the order is
	// built from what was priced, not from whatever the cart holds at
	// confirmation time.
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, err
	}

	record := &checkoutdomain.PaymentRecord{
		PaymentIntentID: intent.ID,
		UserID:          userID,
		AddressID:       req.AddressID,
		PaymentMethod:   req.PaymentMethod,
		Breakdown:       breakdown,
		CouponCode:      cart.CouponCode,
		ItemsJSON:       string(itemsJSON),
	}
	if err := u.paymentRepo.Create(record); err != nil {
		return nil, err
	}

	log.Printf("[Checkout] Created payment intent %s for user %s (total %.2f)", intent.ID, userID, breakdown.Total)

	return &checkoutdto.CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Breakdown:       breakdown,
	}, nil
}

// ConfirmPayment is the reconciliation call: it verifies the intent with
// the provider and materializes the order. It is idempotent by
// paymentIntentId — repeated calls return the already-created order
// number without side effects.
func (u *checkoutUsecase) ConfirmPayment(ctx context.Context, userID string, req *checkoutdto.ConfirmPaymentRequest) (*checkoutdto.ConfirmPaymentResponse, error) {
	record, err := u.paymentRepo.FindByIntentID(req.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, errors.New("unknown payment intent")
	}

	if record.OrderNumber != "" {
		return &checkoutdto.ConfirmPaymentResponse{OrderNumber: record.OrderNumber}, nil
	}

	intent, err := u.provider.RetrieveIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != payment.StatusSucceeded {
		return nil, fmt.Errorf("payment intent %s is not confirmed (status %s)", req.PaymentIntentID, intent.Status)
	}

	address, err := u.addressRepo.FindByID(req.AddressID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.UserID != userID {
		return nil, errors.New("address not found")
	}

	var cartItems []cartdto.CartItemView
	if err := json.Unmarshal([]byte(record.ItemsJSON), &cartItems); err != nil {
		return nil, fmt.Errorf("corrupt payment record %s: %w", req.PaymentIntentID, err)
	}

	items := make([]orderdomain.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, orderdomain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &orderdomain.Order{
		UserID:          userID,
		Status:          orderdomain.OrderStatusPlaced,
		PaymentIntentID: req.PaymentIntentID,
		Breakdown:       record.Breakdown,
		ShippingAddress: orderdomain.ShippingAddress{
			FullName:     address.FullName,
			AddressLine1: address.AddressLine1,
			AddressLine2: address.AddressLine2,
			City:         address.City,
			State:        address.State,
			PostalCode:   address.PostalCode,
			Country:      address.Country,
			Phone:        address.Phone,
		},
		Items: items,
	}
	if err := u.orderRepo.Create(order); err != nil {
		// The unique index on payment_intent_id catches a concurrent
		// confirmation; fall back to the order it created.
		existing, findErr := u.orderRepo.FindByPaymentIntentID(req.PaymentIntentID)
		if findErr == nil && existing != nil {
			return &checkoutdto.ConfirmPaymentResponse{OrderNumber: existing.Number}, nil
		}
		return nil, err
	}

	if err := u.paymentRepo.SetOrderNumber(req.PaymentIntentID, order.Number); err != nil {
		log.Printf("[WARN] Failed to mark payment record %s consumed: %v", req.PaymentIntentID, err)
	}
	if err := u.cartUsecase.Clear(userID); err != nil {
		log.Printf("[WARN] Failed to clear cart for user %s after order %s: %v", userID, order.Number, err)
	}

	if u.notifier != nil {
		u.notifier.OrderPlaced(userID, order.Number)
	}

	log.Printf("[Checkout] Payment intent %s reconciled into order %s", req.PaymentIntentID, order.Number)

	return &checkoutdto.ConfirmPaymentResponse{OrderNumber: order.Number}, nil
}
