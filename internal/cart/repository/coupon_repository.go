package repository

import (
	"errors"
	"time"

	cartdomain "naturemillets-backend/internal/cart/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CouponRepository defines the interface for coupon storage
type CouponRepository interface {
	Create(coupon *cartdomain.Coupon) error
	FindByCode(code string) (*cartdomain.Coupon, error)
	ListAll() ([]cartdomain.Coupon, error)
	Delete(id string) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *cartdomain.Coupon) error {
	coupon.ID = uuid.New().String()
	coupon.CreatedAt = time.Now()
	return r.db.Create(coupon).Error
}

func (r *couponRepository) FindByCode(code string) (*cartdomain.Coupon, error) {
	var coupon cartdomain.Coupon
	err := r.db.Where("code = ?", code).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) ListAll() ([]cartdomain.Coupon, error) {
	var coupons []cartdomain.Coupon
	err := r.db.Order("created_at DESC").Find(&coupons).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&cartdomain.Coupon{}).Error
}
