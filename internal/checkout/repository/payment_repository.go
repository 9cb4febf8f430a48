package repository

import (
	"errors"
	"time"

	checkoutdomain "naturemillets-backend/internal/checkout/domain"

	"gorm.io/gorm"
)

// PaymentRepository defines the interface for payment-record storage
type PaymentRepository interface {
	Create(record *checkoutdomain.PaymentRecord) error
	FindByIntentID(paymentIntentID string) (*checkoutdomain.PaymentRecord, error)
	SetOrderNumber(paymentIntentID, orderNumber string) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(record *checkoutdomain.PaymentRecord) error {
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()
	return r.db.Create(record).Error
}

func (r *paymentRepository) FindByIntentID(paymentIntentID string) (*checkoutdomain.PaymentRecord, error) {
	var record checkoutdomain.PaymentRecord
	err := r.db.Where("payment_intent_id = ?", paymentIntentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *paymentRepository) SetOrderNumber(paymentIntentID, orderNumber string) error {
	return r.db.Model(&checkoutdomain.PaymentRecord{}).
		Where("payment_intent_id = ?", paymentIntentID).
		Updates(map[string]interface{}{"order_number": orderNumber, "updated_at": time.Now()}).Error
}
