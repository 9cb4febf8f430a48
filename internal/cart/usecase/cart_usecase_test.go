package usecase

import (
	"errors"
	"testing"
	"time"

	cartdomain "naturemillets-backend/internal/cart/domain"
	cartdto "naturemillets-backend/internal/cart/dto"
	catalogdomain "naturemillets-backend/internal/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCartRepo struct {
	items   map[string]map[string]int // userID -> productID -> qty
	applied map[string]string         // userID -> coupon code
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{
		items:   make(map[string]map[string]int),
		applied: make(map[string]string),
	}
}

func (m *mockCartRepo) GetItems(userID string) ([]cartdomain.CartItem, error) {
	var items []cartdomain.CartItem
	for productID, qty := range m.items[userID] {
		items = append(items, cartdomain.CartItem{UserID: userID, ProductID: productID, Quantity: qty})
	}
	return items, nil
}

func (m *mockCartRepo) AddItem(userID, productID string, quantity int) error {
	if m.items[userID] == nil {
		m.items[userID] = make(map[string]int)
	}
	m.items[userID][productID] += quantity
	return nil
}

func (m *mockCartRepo) SetQuantity(userID, productID string, quantity int) error {
	if m.items[userID] == nil || m.items[userID][productID] == 0 {
		return errors.New("item not in cart")
	}
	m.items[userID][productID] = quantity
	return nil
}

func (m *mockCartRepo) RemoveItem(userID, productID string) error {
	delete(m.items[userID], productID)
	return nil
}

func (m *mockCartRepo) Clear(userID string) error {
	delete(m.items, userID)
	delete(m.applied, userID)
	return nil
}

func (m *mockCartRepo) GetAppliedCoupon(userID string) (*cartdomain.AppliedCoupon, error) {
	code, ok := m.applied[userID]
	if !ok {
		return nil, nil
	}
	return &cartdomain.AppliedCoupon{UserID: userID, Code: code}, nil
}

func (m *mockCartRepo) SetAppliedCoupon(userID, code string) error {
	m.applied[userID] = code
	return nil
}

func (m *mockCartRepo) RemoveAppliedCoupon(userID string) error {
	delete(m.applied, userID)
	return nil
}

type mockCouponRepo struct {
	coupons map[string]*cartdomain.Coupon
}

func (m *mockCouponRepo) Create(coupon *cartdomain.Coupon) error {
	m.coupons[coupon.Code] = coupon
	return nil
}

func (m *mockCouponRepo) FindByCode(code string) (*cartdomain.Coupon, error) {
	return m.coupons[code], nil
}

func (m *mockCouponRepo) ListAll() ([]cartdomain.Coupon, error) {
	var all []cartdomain.Coupon
	for _, cp := range m.coupons {
		all = append(all, *cp)
	}
	return all, nil
}

func (m *mockCouponRepo) Delete(id string) error { return nil }

type mockProductRepo struct {
	products map[string]*catalogdomain.Product
}

func (m *mockProductRepo) FindByID(id string) (*catalogdomain.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) FindByIDs(ids []string) ([]catalogdomain.Product, error) {
	var found []catalogdomain.Product
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			found = append(found, *p)
		}
	}
	return found, nil
}

func (m *mockProductRepo) Create(product *catalogdomain.Product) error { return nil }
func (m *mockProductRepo) FindBySlug(slug string) (*catalogdomain.Product, error) {
	return nil, nil
}
func (m *mockProductRepo) List(categorySlug string, page, limit int) ([]catalogdomain.Product, int64, error) {
	return nil, 0, nil
}
func (m *mockProductRepo) ListActive() ([]catalogdomain.Product, error) { return nil, nil }
func (m *mockProductRepo) Update(product *catalogdomain.Product) error  { return nil }
func (m *mockProductRepo) Delete(id string) error                       { return nil }
func (m *mockProductRepo) CountProducts() (int64, error)                { return 0, nil }

func newCartFixture() (CartUsecase, *mockCartRepo, *mockCouponRepo, *mockProductRepo) {
	cartRepo := newMockCartRepo()
	couponRepo := &mockCouponRepo{coupons: make(map[string]*cartdomain.Coupon)}
	productRepo := &mockProductRepo{products: map[string]*catalogdomain.Product{
		"p1": {ID: "p1", Name: "Foxtail Millet 1kg", Price: 50, Stock: 10, IsActive: true},
		"p2": {ID: "p2", Name: "Ragi Flour 500g", Price: 80, Stock: 3, IsActive: true},
	}}
	return NewCartUsecase(cartRepo, couponRepo, productRepo), cartRepo, couponRepo, productRepo
}

func TestAddItemAccumulatesQuantity(t *testing.T) {
	uc, _, _, _ := newCartFixture()

	_, err := uc.AddItem("u1", &cartdto.AddItemRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	view, err := uc.AddItem("u1", &cartdto.AddItemRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.InDelta(t, 250, view.Subtotal, 0.001)
}

func TestAddItemInsufficientStock(t *testing.T) {
	uc, _, _, _ := newCartFixture()

	_, err := uc.AddItem("u1", &cartdto.AddItemRequest{ProductID: "p2", Quantity: 5})

	assert.Error(t, err)
}

func TestAddItemUnknownProduct(t *testing.T) {
	uc, _, _, _ := newCartFixture()

	_, err := uc.AddItem("u1", &cartdto.AddItemRequest{ProductID: "missing", Quantity: 1})

	assert.Error(t, err)
}

func TestGetCartSkipsDeletedProducts(t *testing.T) {
	uc, cartRepo, _, productRepo := newCartFixture()
	require.NoError(t, cartRepo.AddItem("u1", "p1", 1))
	require.NoError(t, cartRepo.AddItem("u1", "p2", 1))
	delete(productRepo.products, "p2")

	view, err := uc.GetCart("u1")

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p1", view.Items[0].ProductID)
	assert.InDelta(t, 50, view.Subtotal, 0.001)
}

func TestApplyCouponPercent(t *testing.T) {
	uc, cartRepo, couponRepo, _ := newCartFixture()
	require.NoError(t, cartRepo.AddItem("u1", "p1", 4)) // subtotal 200
	couponRepo.coupons["MILLET10"] = &cartdomain.Coupon{
		Code: "MILLET10", Type: cartdomain.CouponTypePercent, Value: 10, IsActive: true,
	}

	view, err := uc.ApplyCoupon("u1", " millet10 ")

	require.NoError(t, err)
	assert.Equal(t, "MILLET10", view.CouponCode)
	assert.InDelta(t, 20, view.Discount, 0.001)
}

func TestApplyCouponBelowMinOrder(t *testing.T) {
	uc, cartRepo, couponRepo, _ := newCartFixture()
	require.NoError(t, cartRepo.AddItem("u1", "p1", 1)) // subtotal 50
	couponRepo.coupons["BIG100"] = &cartdomain.Coupon{
		Code: "BIG100", Type: cartdomain.CouponTypeFlat, Value: 100,
		MinOrderAmount: 300, IsActive: true,
	}

	_, err := uc.ApplyCoupon("u1", "BIG100")

	assert.ErrorIs(t, err, cartdomain.ErrCouponMinOrder)
}

func TestApplyCouponExpired(t *testing.T) {
	uc, cartRepo, couponRepo, _ := newCartFixture()
	require.NoError(t, cartRepo.AddItem("u1", "p1", 4))
	expired := time.Now().Add(-time.Hour)
	couponRepo.coupons["OLD"] = &cartdomain.Coupon{
		Code: "OLD", Type: cartdomain.CouponTypeFlat, Value: 10,
		IsActive: true, ExpiresAt: &expired,
	}

	_, err := uc.ApplyCoupon("u1", "OLD")

	assert.ErrorIs(t, err, cartdomain.ErrCouponExpired)
}

func TestApplyCouponEmptyCart(t *testing.T) {
	uc, _, couponRepo, _ := newCartFixture()
	couponRepo.coupons["MILLET10"] = &cartdomain.Coupon{
		Code: "MILLET10", Type: cartdomain.CouponTypePercent, Value: 10, IsActive: true,
	}

	_, err := uc.ApplyCoupon("u1", "MILLET10")

	assert.Error(t, err)
}

func TestFlatCouponNeverExceedsSubtotal(t *testing.T) {
	coupon := &cartdomain.Coupon{Code: "FLAT500", Type: cartdomain.CouponTypeFlat, Value: 500}
	assert.InDelta(t, 120, coupon.DiscountFor(120), 0.001)
}

func TestClearRemovesItemsAndCoupon(t *testing.T) {
	uc, cartRepo, couponRepo, _ := newCartFixture()
	require.NoError(t, cartRepo.AddItem("u1", "p1", 4))
	couponRepo.coupons["MILLET10"] = &cartdomain.Coupon{
		Code: "MILLET10", Type: cartdomain.CouponTypePercent, Value: 10, IsActive: true,
	}
	_, err := uc.ApplyCoupon("u1", "MILLET10")
	require.NoError(t, err)

	require.NoError(t, uc.Clear("u1"))

	view, err := uc.GetCart("u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Empty(t, view.CouponCode)
	assert.Zero(t, view.Discount)
}
