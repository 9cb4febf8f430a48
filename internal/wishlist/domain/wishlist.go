package domain

import "time"

type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index:idx_wishlist_user_product,unique;not null"`
	ProductID string    `json:"product_id" gorm:"index:idx_wishlist_user_product,unique;not null"`
	CreatedAt time.Time `json:"created_at"`
}
