package domain

import "time"

// Review is a user's rating of a product. One review per user per
// product; re-submitting replaces the previous one.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ProductID string    `json:"product_id" gorm:"index:idx_review_product_user,unique;not null"`
	UserID    string    `json:"user_id" gorm:"index:idx_review_product_user,unique;not null"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
