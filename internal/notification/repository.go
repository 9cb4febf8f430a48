package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for notification storage
type Repository interface {
	Create(n *Notification) error
	ListByUser(userID string, limit int) ([]Notification, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Notification) error {
	n.ID = uuid.New().String()
	n.CreatedAt = time.Now()
	return r.db.Create(n).Error
}

func (r *repository) ListByUser(userID string, limit int) ([]Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	var notifications []Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *repository) MarkRead(userID, id string) error {
	return r.db.Model(&Notification{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("read", true).Error
}

func (r *repository) MarkAllRead(userID string) error {
	return r.db.Model(&Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
