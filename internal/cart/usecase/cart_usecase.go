package usecase

import (
	"errors"
	"strings"
	"time"

	cartdomain "naturemillets-backend/internal/cart/domain"
	cartdto "naturemillets-backend/internal/cart/dto"
	cartrepo "naturemillets-backend/internal/cart/repository"
	catalogrepo "naturemillets-backend/internal/catalog/repository"
)

// CartUsecase defines cart and coupon business logic
type CartUsecase interface {
	GetCart(userID string) (*cartdto.CartView, error)
	AddItem(userID string, req *cartdto.AddItemRequest) (*cartdto.CartView, error)
	UpdateItem(userID, productID string, quantity int) (*cartdto.CartView, error)
	RemoveItem(userID, productID string) (*cartdto.CartView, error)
	Clear(userID string) error
	ApplyCoupon(userID, code string) (*cartdto.CartView, error)
	RemoveCoupon(userID string) (*cartdto.CartView, error)
	// GetAppliedCoupon returns the coupon applied to the user's cart, or nil.
	GetAppliedCoupon(userID string) (*cartdomain.Coupon, error)
	CreateCoupon(req *cartdto.CreateCouponRequest) (*cartdomain.Coupon, error)
	ListCoupons() ([]cartdomain.Coupon, error)
	DeleteCoupon(id string) error
}

type cartUsecase struct {
	cartRepo    cartrepo.CartRepository
	couponRepo  cartrepo.CouponRepository
	productRepo catalogrepo.ProductRepository
}

func NewCartUsecase(cartRepo cartrepo.CartRepository, couponRepo cartrepo.CouponRepository, productRepo catalogrepo.ProductRepository) CartUsecase {
	return &cartUsecase{
		cartRepo:    cartRepo,
		couponRepo:  couponRepo,
		productRepo: productRepo,
	}
}

func (u *cartUsecase) GetCart(userID string) (*cartdto.CartView, error) {
	items, err := u.cartRepo.GetItems(userID)
	if err != nil {
		return nil, err
	}

	view := &cartdto.CartView{Items: []cartdto.CartItemView{}}
	if len(items) > 0 {
		ids := make([]string, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}
		products, err := u.productRepo.FindByIDs(ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]int, len(products))
		for i, p := range products {
			byID[p.ID] = i
		}

		for _, item := range items {
			idx, ok := byID[item.ProductID]
			if !ok {
				// Product removed from catalog since it was added; skip the line
				continue
			}
			p := products[idx]
			lineTotal := p.Price * float64(item.Quantity)
			view.Items = append(view.Items, cartdto.CartItemView{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				ImageURL:  p.ImageURL,
				Quantity:  item.Quantity,
				LineTotal: lineTotal,
			})
			view.Subtotal += lineTotal
		}
	}

	coupon, err := u.GetAppliedCoupon(userID)
	if err != nil {
		return nil, err
	}
	if coupon != nil {
		view.CouponCode = coupon.Code
		view.Discount = coupon.DiscountFor(view.Subtotal)
	}

	return view, nil
}

func (u *cartUsecase) AddItem(userID string, req *cartdto.AddItemRequest) (*cartdto.CartView, error) {
	product, err := u.productRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, errors.New("product not found")
	}
	if product.Stock < req.Quantity {
		return nil, errors.New("insufficient stock")
	}

	if err := u.cartRepo.AddItem(userID, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}
	return u.GetCart(userID)
}

func (u *cartUsecase) UpdateItem(userID, productID string, quantity int) (*cartdto.CartView, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if err := u.cartRepo.SetQuantity(userID, productID, quantity); err != nil {
		return nil, err
	}
	return u.GetCart(userID)
}

func (u *cartUsecase) RemoveItem(userID, productID string) (*cartdto.CartView, error) {
	if err := u.cartRepo.RemoveItem(userID, productID); err != nil {
		return nil, err
	}
	return u.GetCart(userID)
}

func (u *cartUsecase) Clear(userID string) error {
	return u.cartRepo.Clear(userID)
}

func (u *cartUsecase) ApplyCoupon(userID, code string) (*cartdto.CartView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	coupon, err := u.couponRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, errors.New("invalid coupon code")
	}

	view, err := u.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, errors.New("cannot apply a coupon to an empty cart")
	}

	if err := coupon.Usable(view.Subtotal, time.Now()); err != nil {
		return nil, err
	}

	if err := u.cartRepo.SetAppliedCoupon(userID, code); err != nil {
		return nil, err
	}
	return u.GetCart(userID)
}

func (u *cartUsecase) RemoveCoupon(userID string) (*cartdto.CartView, error) {
	if err := u.cartRepo.RemoveAppliedCoupon(userID); err != nil {
		return nil, err
	}
	return u.GetCart(userID)
}

func (u *cartUsecase) GetAppliedCoupon(userID string) (*cartdomain.Coupon, error) {
	applied, err := u.cartRepo.GetAppliedCoupon(userID)
	if err != nil {
		return nil, err
	}
	if applied == nil {
		return nil, nil
	}
	coupon, err := u.couponRepo.FindByCode(applied.Code)
	if err != nil {
		return nil, err
	}
	return coupon, nil
}

func (u *cartUsecase) CreateCoupon(req *cartdto.CreateCouponRequest) (*cartdomain.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	existing, err := u.couponRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("coupon code already exists")
	}

	coupon := &cartdomain.Coupon{
		Code:           code,
		Type:           req.Type,
		Value:          req.Value,
		MinOrderAmount: req.MinOrderAmount,
		IsActive:       true,
	}
	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, errors.New("expires_at must be RFC3339")
		}
		coupon.ExpiresAt = &expiresAt
	}

	if err := u.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (u *cartUsecase) ListCoupons() ([]cartdomain.Coupon, error) {
	return u.couponRepo.ListAll()
}

func (u *cartUsecase) DeleteCoupon(id string) error {
	return u.couponRepo.Delete(id)
}
