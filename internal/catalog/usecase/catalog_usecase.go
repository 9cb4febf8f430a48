package usecase

import (
	"errors"
	"strings"

	catalogdomain "naturemillets-backend/internal/catalog/domain"
	catalogdto "naturemillets-backend/internal/catalog/dto"
	"naturemillets-backend/internal/catalog/repository"
	"naturemillets-backend/pkg/fuzzy"
)

// CatalogUsecase defines product and category business logic
type CatalogUsecase interface {
	ListProducts(categorySlug string, page, limit int) ([]catalogdomain.Product, int64, error)
	GetProduct(idOrSlug string) (*catalogdomain.Product, error)
	SearchProducts(query string, limit int) ([]catalogdomain.Product, error)
	CreateProduct(req *catalogdto.CreateProductRequest) (*catalogdomain.Product, error)
	UpdateProduct(id string, req *catalogdto.UpdateProductRequest) (*catalogdomain.Product, error)
	DeleteProduct(id string) error
	ListCategories() ([]catalogdomain.Category, error)
	CreateCategory(req *catalogdto.CreateCategoryRequest) (*catalogdomain.Category, error)
	DeleteCategory(id string) error
}

type catalogUsecase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogUsecase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogUsecase {
	return &catalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *catalogUsecase) ListProducts(categorySlug string, page, limit int) ([]catalogdomain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return u.productRepo.List(categorySlug, page, limit)
}

func (u *catalogUsecase) GetProduct(idOrSlug string) (*catalogdomain.Product, error) {
	product, err := u.productRepo.FindByID(idOrSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		product, err = u.productRepo.FindBySlug(idOrSlug)
		if err != nil {
			return nil, err
		}
	}
	if product == nil {
		return nil, errors.New("product not found")
	}
	return product, nil
}

// SearchProducts does typo-tolerant matching over active products. No
// relevance ranking, results come back in catalog order.
func (u *catalogUsecase) SearchProducts(query string, limit int) ([]catalogdomain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search query is required")
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	products, err := u.productRepo.ListActive()
	if err != nil {
		return nil, err
	}

	matched := make([]catalogdomain.Product, 0, limit)
	for _, p := range products {
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		if fuzzy.MatchProduct(query, p.Name, categoryName, p.Description) {
			matched = append(matched, p)
			if len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}

func (u *catalogUsecase) CreateProduct(req *catalogdto.CreateProductRequest) (*catalogdomain.Product, error) {
	category, err := u.categoryRepo.FindByID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New("category not found")
	}

	product := &catalogdomain.Product{
		Name:        req.Name,
		Slug:        slugify(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if err := u.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (u *catalogUsecase) UpdateProduct(id string, req *catalogdto.UpdateProductRequest) (*catalogdomain.Product, error) {
	product, err := u.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}

	if req.Name != nil {
		product.Name = *req.Name
		product.Slug = slugify(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, errors.New("price must be positive")
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, errors.New("stock cannot be negative")
		}
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errors.New("category not found")
		}
		product.CategoryID = *req.CategoryID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := u.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (u *catalogUsecase) DeleteProduct(id string) error {
	return u.productRepo.Delete(id)
}

func (u *catalogUsecase) ListCategories() ([]catalogdomain.Category, error) {
	return u.categoryRepo.ListAll()
}

func (u *catalogUsecase) CreateCategory(req *catalogdto.CreateCategoryRequest) (*catalogdomain.Category, error) {
	slug := slugify(req.Name)
	existing, err := u.categoryRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("category already exists")
	}

	category := &catalogdomain.Category{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := u.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *catalogUsecase) DeleteCategory(id string) error {
	return u.categoryRepo.Delete(id)
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
