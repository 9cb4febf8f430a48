package usecase

import (
	"context"
	"testing"

	addressdomain "naturemillets-backend/internal/address/domain"
	cartdto "naturemillets-backend/internal/cart/dto"
	checkoutdto "naturemillets-backend/internal/checkout/dto"
	orderdomain "naturemillets-backend/internal/order/domain"
	"naturemillets-backend/pkg/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		discount float64
		tax      float64
		shipping float64
		total    float64
	}{
		{"small order pays flat shipping", 100, 0, 18, 50, 168},
		{"free shipping above threshold", 600, 0, 108, 0, 708},
		{"free shipping at threshold", 500, 0, 90, 0, 590},
		{"discount applied", 100, 20, 18, 50, 148},
		{"discount exceeding charges clamps total", 100, 500, 18, 50, 0},
		{"empty cart is all zeroes", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(tt.subtotal, tt.discount)
			assert.InDelta(t, tt.subtotal, b.Subtotal, 0.001)
			assert.InDelta(t, tt.tax, b.Tax, 0.001)
			assert.InDelta(t, tt.shipping, b.ShippingFee, 0.001)
			assert.InDelta(t, tt.discount, b.Discount, 0.001)
			assert.InDelta(t, tt.total, b.Total, 0.001)
		})
	}
}

type checkoutFixture struct {
	uc          CheckoutUsecase
	cart        *mockCartUsecase
	paymentRepo *mockPaymentRepo
	orderRepo   *mockOrderRepo
	provider    *mockProvider
	notifier    *mockNotifier
}

func newCheckoutFixture() *checkoutFixture {
	cart := &mockCartUsecase{
		cart: &cartdto.CartView{
			Items: []cartdto.CartItemView{
				{ProductID: "p1", Name: "Foxtail Millet 1kg", Price: 50, Quantity: 2, LineTotal: 100},
			},
			Subtotal: 100,
		},
	}
	addressRepo := &mockAddressRepo{addresses: map[string]*addressdomain.Address{
		"a1": {ID: "a1", UserID: "u1", FullName: "Asha", City: "Chennai"},
	}}
	paymentRepo := newMockPaymentRepo()
	orderRepo := newMockOrderRepo()
	provider := &mockProvider{intent: &payment.Intent{
		ID:           "pi_1",
		ClientSecret: "cs_1",
		Status:       payment.StatusSucceeded,
	}}
	notifier := &mockNotifier{}

	return &checkoutFixture{
		uc:          NewCheckoutUsecase(cart, addressRepo, paymentRepo, orderRepo, provider, notifier),
		cart:        cart,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		provider:    provider,
		notifier:    notifier,
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	f := newCheckoutFixture()

	resp, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID:     "a1",
		PaymentMethod: "card",
	})

	require.NoError(t, err)
	assert.Equal(t, "cs_1", resp.ClientSecret)
	assert.Equal(t, "pi_1", resp.PaymentIntentID)
	assert.InDelta(t, 100, resp.Breakdown.Subtotal, 0.001)
	assert.InDelta(t, 18, resp.Breakdown.Tax, 0.001)
	assert.InDelta(t, 50, resp.Breakdown.ShippingFee, 0.001)
	assert.InDelta(t, 168, resp.Breakdown.Total, 0.001)

	record := f.paymentRepo.records["pi_1"]
	require.NotNil(t, record)
	assert.Equal(t, "u1", record.UserID)
	assert.NotEmpty(t, record.ItemsJSON)
	assert.Empty(t, record.OrderNumber)
}

func TestCreatePaymentIntentEmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	f.cart.cart = &cartdto.CartView{}

	_, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID:     "a1",
		PaymentMethod: "card",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, f.provider.createCalls)
}

func TestCreatePaymentIntentForeignAddress(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.uc.CreatePaymentIntent(context.Background(), "someone-else", &checkoutdto.CreatePaymentIntentRequest{
		AddressID:     "a1",
		PaymentMethod: "card",
	})

	assert.Error(t, err)
	assert.Equal(t, 0, f.provider.createCalls)
}

func confirmReq() *checkoutdto.ConfirmPaymentRequest {
	return &checkoutdto.ConfirmPaymentRequest{PaymentIntentID: "pi_1", AddressID: "a1"}
}

func TestConfirmPaymentCreatesOrder(t *testing.T) {
	f := newCheckoutFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID: "a1", PaymentMethod: "card",
	})
	require.NoError(t, err)

	resp, err := f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", resp.OrderNumber)
	assert.Equal(t, 1, f.cart.clearCalls)
	assert.Equal(t, []string{"ORD-1001"}, f.notifier.placed)

	order := f.orderRepo.byIntent["pi_1"]
	require.NotNil(t, order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Foxtail Millet 1kg", order.Items[0].Name)
	assert.Equal(t, "Chennai", order.ShippingAddress.City)
	assert.InDelta(t, 168, order.Breakdown.Total, 0.001)
}

func TestConfirmPaymentIsIdempotent(t *testing.T) {
	f := newCheckoutFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID: "a1", PaymentMethod: "card",
	})
	require.NoError(t, err)

	first, err := f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())
	require.NoError(t, err)

	second, err := f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())
	require.NoError(t, err)

	assert.Equal(t, first.OrderNumber, second.OrderNumber)
	assert.Equal(t, 1, f.orderRepo.createCalls)
	assert.Equal(t, 1, f.cart.clearCalls)
	assert.Len(t, f.notifier.placed, 1)
}

func TestConfirmPaymentUnsettledIntent(t *testing.T) {
	f := newCheckoutFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID: "a1", PaymentMethod: "card",
	})
	require.NoError(t, err)
	f.provider.intent.Status = "requires_payment_method"

	_, err = f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pi_1")
	assert.Equal(t, 0, f.orderRepo.createCalls)
	assert.Equal(t, 0, f.cart.clearCalls)
}

func TestConfirmPaymentUnknownIntent(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())

	assert.Error(t, err)
}

func TestConfirmPaymentUsesCartSnapshot(t *testing.T) {
	f := newCheckoutFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID: "a1", PaymentMethod: "card",
	})
	require.NoError(t, err)

	// The cart changes between intent creation and confirmation; the
	// order must be built from the priced snapshot.
	f.cart.cart = &cartdto.CartView{
		Items: []cartdto.CartItemView{
			{ProductID: "p2", Name: "Ragi Flour 500g", Price: 80, Quantity: 5, LineTotal: 400},
		},
		Subtotal: 400,
	}

	_, err = f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())
	require.NoError(t, err)

	order := f.orderRepo.byIntent["pi_1"]
	require.NotNil(t, order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestConfirmPaymentConcurrentDuplicateFallsBack(t *testing.T) {
	f := newCheckoutFixture()
	_, err := f.uc.CreatePaymentIntent(context.Background(), "u1", &checkoutdto.CreatePaymentIntentRequest{
		AddressID: "a1", PaymentMethod: "card",
	})
	require.NoError(t, err)

	// Simulate a racing confirmation that already created the order but
	// has not yet marked the payment record consumed.
	require.NoError(t, f.orderRepo.Create(&orderdomain.Order{
		UserID:          "u1",
		PaymentIntentID: "pi_1",
		Status:          orderdomain.OrderStatusPlaced,
	}))

	resp, err := f.uc.ConfirmPayment(context.Background(), "u1", confirmReq())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", resp.OrderNumber)
}
