package usecase

import (
	"errors"

	addressdomain "naturemillets-backend/internal/address/domain"
	addressdto "naturemillets-backend/internal/address/dto"
	"naturemillets-backend/internal/address/repository"
)

// AddressUsecase defines address business logic
type AddressUsecase interface {
	List(userID string) ([]addressdomain.Address, error)
	Get(userID, id string) (*addressdomain.Address, error)
	Create(userID string, req *addressdto.AddressRequest) (*addressdomain.Address, error)
	Update(userID, id string, req *addressdto.AddressRequest) (*addressdomain.Address, error)
	Delete(userID, id string) error
	SetDefault(userID, id string) error
}

type addressUsecase struct {
	addressRepo repository.AddressRepository
}

func NewAddressUsecase(addressRepo repository.AddressRepository) AddressUsecase {
	return &addressUsecase{addressRepo: addressRepo}
}

func (u *addressUsecase) List(userID string) ([]addressdomain.Address, error) {
	return u.addressRepo.ListByUser(userID)
}

func (u *addressUsecase) Get(userID, id string) (*addressdomain.Address, error) {
	address, err := u.addressRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil || address.UserID != userID {
		return nil, errors.New("address not found")
	}
	return address, nil
}

func (u *addressUsecase) Create(userID string, req *addressdto.AddressRequest) (*addressdomain.Address, error) {
	existing, err := u.addressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	address := &addressdomain.Address{
		UserID:       userID,
		Label:        req.Label,
		FullName:     req.FullName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Phone:        req.Phone,
		// The first address a user creates is always the default
		IsDefault: req.IsDefault || len(existing) == 0,
	}
	if err := u.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (u *addressUsecase) Update(userID, id string, req *addressdto.AddressRequest) (*addressdomain.Address, error) {
	address, err := u.Get(userID, id)
	if err != nil {
		return nil, err
	}

	address.Label = req.Label
	address.FullName = req.FullName
	address.AddressLine1 = req.AddressLine1
	address.AddressLine2 = req.AddressLine2
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.Phone = req.Phone
	address.IsDefault = req.IsDefault

	if err := u.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (u *addressUsecase) Delete(userID, id string) error {
	return u.addressRepo.Delete(userID, id)
}

func (u *addressUsecase) SetDefault(userID, id string) error {
	return u.addressRepo.SetDefault(userID, id)
}
