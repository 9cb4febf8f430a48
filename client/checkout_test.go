package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutBackend struct {
	cart      Cart
	addresses []Address

	intentStatus  int
	confirmStatus int
	confirmCalls  int32

	orderNumber string
}

func (b *checkoutBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		data, _ := json.Marshal(User{ID: "u1"})
		json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
	})
	mux.HandleFunc("/api/v1/cart", func(w http.ResponseWriter, r *http.Request) {
		data, _ := json.Marshal(b.cart)
		json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
	})
	mux.HandleFunc("/api/v1/addresses", func(w http.ResponseWriter, r *http.Request) {
		data, _ := json.Marshal(b.addresses)
		json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
	})
	mux.HandleFunc("/api/v1/payments/create-payment-intent", func(w http.ResponseWriter, r *http.Request) {
		if b.intentStatus != 0 && b.intentStatus != http.StatusOK {
			w.WriteHeader(b.intentStatus)
			json.NewEncoder(w).Encode(envelope{Success: false, Message: "intent creation failed"})
			return
		}
		data, _ := json.Marshal(map[string]interface{}{
			"clientSecret":    "cs_1",
			"paymentIntentId": "pi_1",
			"breakdown": PriceBreakdown{
				Subtotal: 100, Tax: 18, ShippingFee: 0, Discount: 0, Total: 118,
			},
		})
		json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
	})
	mux.HandleFunc("/api/v1/payments/confirm-payment", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.confirmCalls, 1)
		if b.confirmStatus != 0 && b.confirmStatus != http.StatusOK {
			w.WriteHeader(b.confirmStatus)
			json.NewEncoder(w).Encode(envelope{Success: false, Message: "reconciliation failed"})
			return
		}
		data, _ := json.Marshal(map[string]string{"orderNumber": b.orderNumber})
		json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
	})
	return mux
}

type fakeConfirmer struct {
	intentID string
	err      error
	calls    int
}

func (f *fakeConfirmer) ConfirmPayment(ctx context.Context, clientSecret string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.intentID, nil
}

func newTestSession(t *testing.T, backend *checkoutBackend) *CheckoutSession {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	store := NewMemoryStore()
	require.NoError(t, store.Set(&Credentials{AccessToken: "access-1", RefreshToken: "refresh-1"}))

	return NewCheckoutSession(c, NewTokenManager(c, store), WithReconcileDelay(0))
}

func defaultCheckoutBackend() *checkoutBackend {
	return &checkoutBackend{
		cart: Cart{
			Items:    []CartItem{{ProductID: "p1", Name: "Foxtail Millet 1kg", Price: 50, Quantity: 2, LineTotal: 100}},
			Subtotal: 100,
		},
		addresses: []Address{
			{ID: "a1", FullName: "First"},
			{ID: "a2", FullName: "Second", IsDefault: true},
		},
		orderNumber: "ORD-1001",
	}
}

func TestSessionStartsAtAddressStep(t *testing.T) {
	s := newTestSession(t, defaultCheckoutBackend())
	assert.Equal(t, StepAddress, s.Step())
}

func TestLoadPreselectsDefaultAddress(t *testing.T) {
	s := newTestSession(t, defaultCheckoutBackend())

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, "a2", s.SelectedAddressID())
	assert.Len(t, s.Addresses(), 2)
	require.NotNil(t, s.Cart())
	assert.InDelta(t, 100, s.FallbackSubtotal(), 0.001)
}

func TestSelectAddressUnknownID(t *testing.T) {
	s := newTestSession(t, defaultCheckoutBackend())
	require.NoError(t, s.Load(context.Background()))

	err := s.SelectAddress("missing")
	assert.Error(t, err)
	assert.Equal(t, "a2", s.SelectedAddressID())
}

func TestProceedToPaymentEmptyCart(t *testing.T) {
	backend := defaultCheckoutBackend()
	backend.cart = Cart{}
	s := newTestSession(t, backend)
	require.NoError(t, s.Load(context.Background()))

	err := s.ProceedToPayment(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StepAddress, s.Step())
}

func TestProceedToPaymentNoAddressSelected(t *testing.T) {
	backend := defaultCheckoutBackend()
	for i := range backend.addresses {
		backend.addresses[i].IsDefault = false
	}
	s := newTestSession(t, backend)
	require.NoError(t, s.Load(context.Background()))

	err := s.ProceedToPayment(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StepAddress, s.Step())
}

func TestProceedToPaymentStoresIntentState(t *testing.T) {
	s := newTestSession(t, defaultCheckoutBackend())
	require.NoError(t, s.Load(context.Background()))

	require.NoError(t, s.ProceedToPayment(context.Background()))

	assert.Equal(t, StepPayment, s.Step())
	assert.Equal(t, "pi_1", s.PaymentIntentID())
	breakdown := s.Breakdown()
	require.NotNil(t, breakdown)
	assert.InDelta(t, 100, breakdown.Subtotal, 0.001)
	assert.InDelta(t, 18, breakdown.Tax, 0.001)
	assert.InDelta(t, 0, breakdown.ShippingFee, 0.001)
	assert.InDelta(t, 118, breakdown.Total, 0.001)
}

func TestCompletePaymentSuccess(t *testing.T) {
	backend := defaultCheckoutBackend()
	s := newTestSession(t, backend)
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.ProceedToPayment(context.Background()))

	confirmer := &fakeConfirmer{intentID: "pi_1"}
	require.NoError(t, s.CompletePayment(context.Background(), confirmer))

	assert.Equal(t, StepSuccess, s.Step())
	assert.Equal(t, "ORD-1001", s.OrderNumber())
	assert.Equal(t, 1, confirmer.calls)
	assert.EqualValues(t, 1, backend.confirmCalls)
}

func TestCompletePaymentProviderFailureSkipsReconciliation(t *testing.T) {
	backend := defaultCheckoutBackend()
	s := newTestSession(t, backend)
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.ProceedToPayment(context.Background()))

	confirmer := &fakeConfirmer{err: errors.New("card declined")}
	err := s.CompletePayment(context.Background(), confirmer)

	assert.Error(t, err)
	assert.Equal(t, StepPayment, s.Step())
	assert.Empty(t, s.OrderNumber())
	assert.EqualValues(t, 0, backend.confirmCalls)
}

func TestCompletePaymentReconciliationFailureKeepsIntentID(t *testing.T) {
	backend := defaultCheckoutBackend()
	backend.confirmStatus = http.StatusInternalServerError
	s := newTestSession(t, backend)
	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.ProceedToPayment(context.Background()))

	confirmer := &fakeConfirmer{intentID: "pi_1"}
	err := s.CompletePayment(context.Background(), confirmer)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pi_1")
	assert.Equal(t, StepPayment, s.Step())
	assert.Empty(t, s.OrderNumber())
	assert.EqualValues(t, 1, backend.confirmCalls)
}

func TestCompletePaymentFromAddressStep(t *testing.T) {
	s := newTestSession(t, defaultCheckoutBackend())

	err := s.CompletePayment(context.Background(), &fakeConfirmer{intentID: "pi_1"})

	assert.Error(t, err)
	assert.Equal(t, StepAddress, s.Step())
}
