package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Step is the checkout session's current stage. Steps only move forward;
// a new session always starts back at the address step.
type Step string

const (
	StepAddress Step = "address"
	StepPayment Step = "payment"
	StepSuccess Step = "success"
)

// DefaultReconcileDelay is how long CompletePayment waits after the
// provider confirms before reconciling with the backend, giving the
// provider time to settle the intent status.
const DefaultReconcileDelay = 2 * time.Second

// PaymentConfirmer confirms a payment with the provider using the
// intent's client secret and returns the payment intent id. In
// production this is the provider SDK; tests substitute a fake.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, clientSecret string) (paymentIntentID string, err error)
}

// CheckoutSession drives the address -> payment -> success flow. All
// pricing after intent creation comes from the backend's breakdown; the
// session only computes a display fallback before that.
type CheckoutSession struct {
	client *Client
	tokens *TokenManager

	reconcileDelay time.Duration

	mu                sync.Mutex
	step              Step
	cart              *Cart
	addresses         []Address
	selectedAddressID string
	paymentMethod     string
	clientSecret      string
	paymentIntentID   string
	breakdown         *PriceBreakdown
	orderNumber       string
}

type SessionOption func(*CheckoutSession)

// WithReconcileDelay overrides the post-confirmation wait.
func WithReconcileDelay(d time.Duration) SessionOption {
	return func(s *CheckoutSession) { s.reconcileDelay = d }
}

func NewCheckoutSession(client *Client, tokens *TokenManager, opts ...SessionOption) *CheckoutSession {
	s := &CheckoutSession{
		client:         client,
		tokens:         tokens,
		reconcileDelay: DefaultReconcileDelay,
		step:           StepAddress,
		paymentMethod:  "card",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the cart and the address book concurrently and preselects
// the default address when one exists.
func (s *CheckoutSession) Load(ctx context.Context) error {
	token, err := s.tokens.GetValidAccessToken(ctx)
	if err != nil {
		return err
	}

	var (
		wg        sync.WaitGroup
		cart      Cart
		addresses []Address
		cartErr   error
		addrErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cartErr = s.client.get(ctx, "/api/v1/cart", token, &cart)
	}()
	go func() {
		defer wg.Done()
		addrErr = s.client.get(ctx, "/api/v1/addresses", token, &addresses)
	}()
	wg.Wait()

	if cartErr != nil {
		return fmt.Errorf("load cart: %w", cartErr)
	}
	if addrErr != nil {
		return fmt.Errorf("load addresses: %w", addrErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = &cart
	s.addresses = addresses
	if s.selectedAddressID == "" {
		for _, a := range addresses {
			if a.IsDefault {
				s.selectedAddressID = a.ID
				break
			}
		}
	}
	return nil
}

// SelectAddress picks a shipping address from the loaded address book.
func (s *CheckoutSession) SelectAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepAddress {
		return fmt.Errorf("cannot change address during %s step", s.step)
	}
	for _, a := range s.addresses {
		if a.ID == id {
			s.selectedAddressID = id
			return nil
		}
	}
	return errors.New("address not found")
}

// SetPaymentMethod records the method sent with intent creation.
func (s *CheckoutSession) SetPaymentMethod(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = method
}

// FallbackSubtotal is a display-only sum of price x quantity, used on
// the address step before the backend has priced the order.
func (s *CheckoutSession) FallbackSubtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart == nil {
		return 0
	}
	var sum float64
	for _, item := range s.cart.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// ProceedToPayment creates the payment intent and advances to the
// payment step. The backend's breakdown becomes authoritative from here.
func (s *CheckoutSession) ProceedToPayment(ctx context.Context) error {
	s.mu.Lock()
	if s.step != StepAddress {
		step := s.step
		s.mu.Unlock()
		return fmt.Errorf("cannot proceed to payment from %s step", step)
	}
	if s.cart == nil || len(s.cart.Items) == 0 {
		s.mu.Unlock()
		return errors.New("cart is empty")
	}
	if s.selectedAddressID == "" {
		s.mu.Unlock()
		return errors.New("no shipping address selected")
	}
	addressID := s.selectedAddressID
	method := s.paymentMethod
	s.mu.Unlock()

	token, err := s.tokens.GetValidAccessToken(ctx)
	if err != nil {
		return err
	}

	var resp struct {
		ClientSecret    string         `json:"clientSecret"`
		PaymentIntentID string         `json:"paymentIntentId"`
		Breakdown       PriceBreakdown `json:"breakdown"`
	}
	err = s.client.post(ctx, "/api/v1/payments/create-payment-intent", token, map[string]string{
		"addressId":     addressID,
		"paymentMethod": method,
	}, &resp)
	if err != nil {
		return fmt.Errorf("create payment intent: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientSecret = resp.ClientSecret
	s.paymentIntentID = resp.PaymentIntentID
	s.breakdown = &resp.Breakdown
	s.step = StepPayment
	return nil
}

// CompletePayment confirms with the provider, waits the reconciliation
// delay, then reconciles with the backend exactly once. A reconciliation
// failure after the provider has taken the money leaves the session on
// the payment step and returns an error carrying the payment intent id
// for support escalation.
func (s *CheckoutSession) CompletePayment(ctx context.Context, confirmer PaymentConfirmer) error {
	s.mu.Lock()
	if s.step != StepPayment {
		step := s.step
		s.mu.Unlock()
		return fmt.Errorf("cannot complete payment from %s step", step)
	}
	clientSecret := s.clientSecret
	addressID := s.selectedAddressID
	s.mu.Unlock()

	paymentIntentID, err := confirmer.ConfirmPayment(ctx, clientSecret)
	if err != nil {
		return fmt.Errorf("payment confirmation failed: %w", err)
	}

	select {
	case <-time.After(s.reconcileDelay):
	case <-ctx.Done():
		return fmt.Errorf("payment %s confirmed but reconciliation interrupted: %w", paymentIntentID, ctx.Err())
	}

	token, err := s.tokens.GetValidAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("payment %s confirmed but session expired before reconciliation: %w", paymentIntentID, err)
	}

	var resp struct {
		OrderNumber string `json:"orderNumber"`
	}
	err = s.client.post(ctx, "/api/v1/payments/confirm-payment", token, map[string]string{
		"paymentIntentId": paymentIntentID,
		"addressId":       addressID,
	}, &resp)
	if err != nil {
		return fmt.Errorf("payment %s succeeded but order creation failed, contact support with this payment id: %w", paymentIntentID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentIntentID = paymentIntentID
	s.orderNumber = resp.OrderNumber
	s.step = StepSuccess
	return nil
}

func (s *CheckoutSession) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *CheckoutSession) Cart() *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

func (s *CheckoutSession) Addresses() []Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addresses
}

func (s *CheckoutSession) SelectedAddressID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedAddressID
}

func (s *CheckoutSession) Breakdown() *PriceBreakdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breakdown
}

func (s *CheckoutSession) PaymentIntentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentIntentID
}

func (s *CheckoutSession) OrderNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderNumber
}
