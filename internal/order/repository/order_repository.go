package repository

import (
	"errors"
	"fmt"
	"time"

	orderdomain "naturemillets-backend/internal/order/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository defines the interface for order storage
type OrderRepository interface {
	Create(order *orderdomain.Order) error
	FindByNumber(number string) (*orderdomain.Order, error)
	FindByPaymentIntentID(paymentIntentID string) (*orderdomain.Order, error)
	ListByUser(userID string) ([]orderdomain.Order, error)
	ListAll(page, limit int) ([]orderdomain.Order, int64, error)
	UpdateStatus(id string, status orderdomain.OrderStatus) error
	CountOrders() (int64, error)
	SumRevenue() (float64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its items, then derives the human-facing
// order number ("ORD-<n>") from the database-assigned sequence, all in
// one transaction.
func (r *orderRepository) Create(order *orderdomain.Order) error {
	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = uuid.New().String()
		order.Items[i].OrderID = order.ID
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		order.Number = fmt.Sprintf("ORD-%d", 1000+order.Seq)
		return tx.Model(&orderdomain.Order{}).
			Where("id = ?", order.ID).
			Update("number", order.Number).Error
	})
}

func (r *orderRepository) FindByNumber(number string) (*orderdomain.Order, error) {
	var order orderdomain.Order
	err := r.db.Preload("Items").Where("number = ?", number).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByPaymentIntentID(paymentIntentID string) (*orderdomain.Order, error) {
	var order orderdomain.Order
	err := r.db.Preload("Items").Where("payment_intent_id = ?", paymentIntentID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID string) ([]orderdomain.Order, error) {
	var orders []orderdomain.Order
	err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) ListAll(page, limit int) ([]orderdomain.Order, int64, error) {
	var total int64
	if err := r.db.Model(&orderdomain.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []orderdomain.Order
	err := r.db.Preload("Items").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(id string, status orderdomain.OrderStatus) error {
	return r.db.Model(&orderdomain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}

func (r *orderRepository) CountOrders() (int64, error) {
	var count int64
	err := r.db.Model(&orderdomain.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) SumRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&orderdomain.Order{}).
		Where("status <> ?", orderdomain.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenue).Error
	return revenue, err
}
