package repository

import (
	"errors"
	"time"

	addressdomain "naturemillets-backend/internal/address/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressRepository defines the interface for address storage
type AddressRepository interface {
	Create(address *addressdomain.Address) error
	FindByID(id string) (*addressdomain.Address, error)
	ListByUser(userID string) ([]addressdomain.Address, error)
	Update(address *addressdomain.Address) error
	Delete(userID, id string) error
	SetDefault(userID, id string) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *addressdomain.Address) error {
	address.ID = uuid.New().String()
	address.CreatedAt = time.Now()
	address.UpdatedAt = time.Now()
	if !address.IsDefault {
		return r.db.Create(address).Error
	}
	// A new default demotes the previous one in the same transaction
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&addressdomain.Address{}).
			Where("user_id = ? AND is_default = ?", address.UserID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Create(address).Error
	})
}

func (r *addressRepository) FindByID(id string) (*addressdomain.Address, error) {
	var address addressdomain.Address
	err := r.db.Where("id = ?", id).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) ListByUser(userID string) ([]addressdomain.Address, error) {
	var addresses []addressdomain.Address
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Update(address *addressdomain.Address) error {
	address.UpdatedAt = time.Now()
	if !address.IsDefault {
		return r.db.Save(address).Error
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&addressdomain.Address{}).
			Where("user_id = ? AND is_default = ? AND id <> ?", address.UserID, true, address.ID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Save(address).Error
	})
}

func (r *addressRepository) Delete(userID, id string) error {
	return r.db.Where("user_id = ? AND id = ?", userID, id).
		Delete(&addressdomain.Address{}).Error
}

func (r *addressRepository) SetDefault(userID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&addressdomain.Address{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		result := tx.Model(&addressdomain.Address{}).
			Where("user_id = ? AND id = ?", userID, id).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("address not found")
		}
		return nil
	})
}
