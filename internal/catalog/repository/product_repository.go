package repository

import (
	"errors"
	"time"

	catalogdomain "naturemillets-backend/internal/catalog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the interface for product storage
type ProductRepository interface {
	Create(product *catalogdomain.Product) error
	FindByID(id string) (*catalogdomain.Product, error)
	FindBySlug(slug string) (*catalogdomain.Product, error)
	FindByIDs(ids []string) ([]catalogdomain.Product, error)
	List(categorySlug string, page, limit int) ([]catalogdomain.Product, int64, error)
	ListActive() ([]catalogdomain.Product, error)
	Update(product *catalogdomain.Product) error
	Delete(id string) error
	CountProducts() (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *catalogdomain.Product) error {
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	return r.db.Create(product).Error
}

func (r *productRepository) FindByID(id string) (*catalogdomain.Product, error) {
	var product catalogdomain.Product
	err := r.db.Preload("Category").Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string) (*catalogdomain.Product, error) {
	var product catalogdomain.Product
	err := r.db.Preload("Category").Where("slug = ?", slug).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDs(ids []string) ([]catalogdomain.Product, error) {
	var products []catalogdomain.Product
	err := r.db.Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) List(categorySlug string, page, limit int) ([]catalogdomain.Product, int64, error) {
	query := r.db.Model(&catalogdomain.Product{}).Where("is_active = ?", true)
	if categorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []catalogdomain.Product
	err := query.Preload("Category").
		Order("products.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) ListActive() ([]catalogdomain.Product, error) {
	var products []catalogdomain.Product
	err := r.db.Preload("Category").Where("is_active = ?", true).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Update(product *catalogdomain.Product) error {
	product.UpdatedAt = time.Now()
	return r.db.Save(product).Error
}

func (r *productRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalogdomain.Product{}).Error
}

func (r *productRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&catalogdomain.Product{}).Count(&count).Error
	return count, err
}
