package repository

import (
	"time"

	wishlistdomain "naturemillets-backend/internal/wishlist/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistRepository defines the interface for wishlist storage
type WishlistRepository interface {
	Add(userID, productID string) error
	Remove(userID, productID string) error
	ListProductIDs(userID string) ([]string, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add is a no-op if the product is already wishlisted
func (r *wishlistRepository) Add(userID, productID string) error {
	item := &wishlistdomain.WishlistItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item).Error
}

func (r *wishlistRepository) Remove(userID, productID string) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&wishlistdomain.WishlistItem{}).Error
}

func (r *wishlistRepository) ListProductIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&wishlistdomain.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
