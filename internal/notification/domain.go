package notification

import "time"

// Notification is a persisted in-app notification for a user.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OrderNumber string    `json:"order_number,omitempty"`
	Read        bool      `json:"read" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
