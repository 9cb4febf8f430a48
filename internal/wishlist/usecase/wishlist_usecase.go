package usecase

import (
	"errors"

	catalogdomain "naturemillets-backend/internal/catalog/domain"
	catalogrepo "naturemillets-backend/internal/catalog/repository"
	"naturemillets-backend/internal/wishlist/repository"
)

// WishlistUsecase defines wishlist business logic
type WishlistUsecase interface {
	Add(userID, productID string) error
	Remove(userID, productID string) error
	List(userID string) ([]catalogdomain.Product, error)
}

type wishlistUsecase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  catalogrepo.ProductRepository
}

func NewWishlistUsecase(wishlistRepo repository.WishlistRepository, productRepo catalogrepo.ProductRepository) WishlistUsecase {
	return &wishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (u *wishlistUsecase) Add(userID, productID string) error {
	product, err := u.productRepo.FindByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return errors.New("product not found")
	}
	return u.wishlistRepo.Add(userID, productID)
}

func (u *wishlistUsecase) Remove(userID, productID string) error {
	return u.wishlistRepo.Remove(userID, productID)
}

func (u *wishlistUsecase) List(userID string) ([]catalogdomain.Product, error) {
	ids, err := u.wishlistRepo.ListProductIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalogdomain.Product{}, nil
	}
	return u.productRepo.FindByIDs(ids)
}
