package usecase

import (
	"errors"

	catalogrepo "naturemillets-backend/internal/catalog/repository"
	reviewdomain "naturemillets-backend/internal/review/domain"
	reviewdto "naturemillets-backend/internal/review/dto"
	"naturemillets-backend/internal/review/repository"
)

// ReviewUsecase defines review business logic
type ReviewUsecase interface {
	Submit(userID, username, productID string, req *reviewdto.SubmitReviewRequest) (*reviewdomain.Review, error)
	ListByProduct(productID string) ([]reviewdomain.Review, float64, int64, error)
	Delete(userID, productID string) error
}

type reviewUsecase struct {
	reviewRepo  repository.ReviewRepository
	productRepo catalogrepo.ProductRepository
}

func NewReviewUsecase(reviewRepo repository.ReviewRepository, productRepo catalogrepo.ProductRepository) ReviewUsecase {
	return &reviewUsecase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func (u *reviewUsecase) Submit(userID, username, productID string, req *reviewdto.SubmitReviewRequest) (*reviewdomain.Review, error) {
	product, err := u.productRepo.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}

	review := &reviewdomain.Review{
		ProductID: productID,
		UserID:    userID,
		Username:  username,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := u.reviewRepo.Upsert(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (u *reviewUsecase) ListByProduct(productID string) ([]reviewdomain.Review, float64, int64, error) {
	reviews, err := u.reviewRepo.ListByProduct(productID)
	if err != nil {
		return nil, 0, 0, err
	}
	avg, count, err := u.reviewRepo.AverageRating(productID)
	if err != nil {
		return nil, 0, 0, err
	}
	return reviews, avg, count, nil
}

func (u *reviewUsecase) Delete(userID, productID string) error {
	return u.reviewRepo.Delete(userID, productID)
}
