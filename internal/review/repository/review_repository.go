package repository

import (
	"time"

	reviewdomain "naturemillets-backend/internal/review/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Upsert(review *reviewdomain.Review) error
	ListByProduct(productID string) ([]reviewdomain.Review, error)
	Delete(userID, productID string) error
	AverageRating(productID string) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert inserts the review or replaces the user's previous review of
// the same product (atomic upsert on the product+user key)
func (r *reviewRepository) Upsert(review *reviewdomain.Review) error {
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "username", "updated_at"}),
	}).Create(review).Error
}

func (r *reviewRepository) ListByProduct(productID string) ([]reviewdomain.Review, error) {
	var reviews []reviewdomain.Review
	err := r.db.Where("product_id = ?", productID).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Delete(userID, productID string) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&reviewdomain.Review{}).Error
}

func (r *reviewRepository) AverageRating(productID string) (float64, int64, error) {
	var count int64
	if err := r.db.Model(&reviewdomain.Review{}).
		Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	err := r.db.Model(&reviewdomain.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, count, err
}
