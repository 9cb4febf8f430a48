package repository

import (
	"errors"
	"time"

	cartdomain "naturemillets-backend/internal/cart/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository defines the interface for cart-line storage
type CartRepository interface {
	GetItems(userID string) ([]cartdomain.CartItem, error)
	AddItem(userID, productID string, quantity int) error
	SetQuantity(userID, productID string, quantity int) error
	RemoveItem(userID, productID string) error
	Clear(userID string) error
	GetAppliedCoupon(userID string) (*cartdomain.AppliedCoupon, error)
	SetAppliedCoupon(userID, code string) error
	RemoveAppliedCoupon(userID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetItems(userID string) ([]cartdomain.CartItem, error) {
	var items []cartdomain.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem inserts the line or increments the quantity if it already exists.
func (r *cartRepository) AddItem(userID, productID string, quantity int) error {
	item := &cartdomain.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
}

func (r *cartRepository) SetQuantity(userID, productID string, quantity int) error {
	result := r.db.Model(&cartdomain.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{"quantity": quantity, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *cartRepository) RemoveItem(userID, productID string) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&cartdomain.CartItem{}).Error
}

func (r *cartRepository) Clear(userID string) error {
	// Items and any applied coupon go together
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&cartdomain.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&cartdomain.AppliedCoupon{}).Error
	})
}

func (r *cartRepository) GetAppliedCoupon(userID string) (*cartdomain.AppliedCoupon, error) {
	var applied cartdomain.AppliedCoupon
	err := r.db.Where("user_id = ?", userID).First(&applied).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &applied, nil
}

func (r *cartRepository) SetAppliedCoupon(userID, code string) error {
	applied := &cartdomain.AppliedCoupon{
		UserID:    userID,
		Code:      code,
		AppliedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "applied_at"}),
	}).Create(applied).Error
}

func (r *cartRepository) RemoveAppliedCoupon(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&cartdomain.AppliedCoupon{}).Error
}
