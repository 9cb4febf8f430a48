package repository

import (
	"errors"
	"time"

	catalogdomain "naturemillets-backend/internal/catalog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository defines the interface for category storage
type CategoryRepository interface {
	Create(category *catalogdomain.Category) error
	FindByID(id string) (*catalogdomain.Category, error)
	FindBySlug(slug string) (*catalogdomain.Category, error)
	ListAll() ([]catalogdomain.Category, error)
	Update(category *catalogdomain.Category) error
	Delete(id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *catalogdomain.Category) error {
	category.ID = uuid.New().String()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id string) (*catalogdomain.Category, error) {
	var category catalogdomain.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*catalogdomain.Category, error) {
	var category catalogdomain.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListAll() ([]catalogdomain.Category, error) {
	var categories []catalogdomain.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(category *catalogdomain.Category) error {
	category.UpdatedAt = time.Now()
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&catalogdomain.Category{}).Error
}
