package usecase

import (
	"context"
	"errors"
	"fmt"

	addressdomain "naturemillets-backend/internal/address/domain"
	cartdomain "naturemillets-backend/internal/cart/domain"
	cartdto "naturemillets-backend/internal/cart/dto"
	checkoutdomain "naturemillets-backend/internal/checkout/domain"
	orderdomain "naturemillets-backend/internal/order/domain"
	"naturemillets-backend/pkg/payment"
)

type mockCartUsecase struct {
	cart       *cartdto.CartView
	clearCalls int
}

func (m *mockCartUsecase) GetCart(userID string) (*cartdto.CartView, error) {
	return m.cart, nil
}

func (m *mockCartUsecase) Clear(userID string) error {
	m.clearCalls++
	return nil
}

func (m *mockCartUsecase) AddItem(userID string, req *cartdto.AddItemRequest) (*cartdto.CartView, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) UpdateItem(userID, productID string, quantity int) (*cartdto.CartView, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) RemoveItem(userID, productID string) (*cartdto.CartView, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) ApplyCoupon(userID, code string) (*cartdto.CartView, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) RemoveCoupon(userID string) (*cartdto.CartView, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) GetAppliedCoupon(userID string) (*cartdomain.Coupon, error) {
	return nil, nil
}

func (m *mockCartUsecase) CreateCoupon(req *cartdto.CreateCouponRequest) (*cartdomain.Coupon, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) ListCoupons() ([]cartdomain.Coupon, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartUsecase) DeleteCoupon(id string) error {
	return errors.New("not implemented")
}

type mockAddressRepo struct {
	addresses map[string]*addressdomain.Address
}

func (m *mockAddressRepo) FindByID(id string) (*addressdomain.Address, error) {
	return m.addresses[id], nil
}

func (m *mockAddressRepo) Create(address *addressdomain.Address) error { return nil }
func (m *mockAddressRepo) ListByUser(userID string) ([]addressdomain.Address, error) {
	return nil, nil
}
func (m *mockAddressRepo) Update(address *addressdomain.Address) error { return nil }
func (m *mockAddressRepo) Delete(userID, id string) error              { return nil }
func (m *mockAddressRepo) SetDefault(userID, id string) error          { return nil }

type mockPaymentRepo struct {
	records map[string]*checkoutdomain.PaymentRecord
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{records: make(map[string]*checkoutdomain.PaymentRecord)}
}

func (m *mockPaymentRepo) Create(record *checkoutdomain.PaymentRecord) error {
	if _, exists := m.records[record.PaymentIntentID]; exists {
		return errors.New("duplicate payment record")
	}
	m.records[record.PaymentIntentID] = record
	return nil
}

func (m *mockPaymentRepo) FindByIntentID(paymentIntentID string) (*checkoutdomain.PaymentRecord, error) {
	return m.records[paymentIntentID], nil
}

func (m *mockPaymentRepo) SetOrderNumber(paymentIntentID, orderNumber string) error {
	record, ok := m.records[paymentIntentID]
	if !ok {
		return errors.New("payment record not found")
	}
	record.OrderNumber = orderNumber
	return nil
}

type mockOrderRepo struct {
	orders      []*orderdomain.Order
	nextSeq     int64
	createErr   error
	byIntent    map[string]*orderdomain.Order
	createCalls int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{nextSeq: 1, byIntent: make(map[string]*orderdomain.Order)}
}

func (m *mockOrderRepo) Create(order *orderdomain.Order) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.byIntent[order.PaymentIntentID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}
	order.Seq = m.nextSeq
	order.Number = fmt.Sprintf("ORD-%d", 1000+order.Seq)
	m.nextSeq++
	m.orders = append(m.orders, order)
	m.byIntent[order.PaymentIntentID] = order
	return nil
}

func (m *mockOrderRepo) FindByNumber(number string) (*orderdomain.Order, error) {
	for _, o := range m.orders {
		if o.Number == number {
			return o, nil
		}
	}
	return nil, nil
}

func (m *mockOrderRepo) FindByPaymentIntentID(paymentIntentID string) (*orderdomain.Order, error) {
	return m.byIntent[paymentIntentID], nil
}

func (m *mockOrderRepo) ListByUser(userID string) ([]orderdomain.Order, error) { return nil, nil }
func (m *mockOrderRepo) ListAll(page, limit int) ([]orderdomain.Order, int64, error) {
	return nil, 0, nil
}
func (m *mockOrderRepo) UpdateStatus(id string, status orderdomain.OrderStatus) error { return nil }
func (m *mockOrderRepo) CountOrders() (int64, error)                                  { return int64(len(m.orders)), nil }
func (m *mockOrderRepo) SumRevenue() (float64, error)                                 { return 0, nil }

type mockProvider struct {
	intent        *payment.Intent
	createErr     error
	retrieveErr   error
	createCalls   int
	retrieveCalls int
}

func (m *mockProvider) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.intent, nil
}

func (m *mockProvider) RetrieveIntent(ctx context.Context, id string) (*payment.Intent, error) {
	m.retrieveCalls++
	if m.retrieveErr != nil {
		return nil, m.retrieveErr
	}
	return m.intent, nil
}

type mockNotifier struct {
	placed []string
}

func (m *mockNotifier) OrderPlaced(userID, orderNumber string) {
	m.placed = append(m.placed, orderNumber)
}
