package usecase

import (
	"errors"

	orderdomain "naturemillets-backend/internal/order/domain"
	"naturemillets-backend/internal/order/repository"
)

// StatusNotifier is notified when an order changes status. Implemented by
// the notification service; nil disables notifications.
type StatusNotifier interface {
	OrderStatusChanged(userID, orderNumber string, status orderdomain.OrderStatus)
}

// OrderUsecase defines order business logic
type OrderUsecase interface {
	ListMine(userID string) ([]orderdomain.Order, error)
	GetByNumber(userID, number string) (*orderdomain.Order, error)
	Cancel(userID, number string) (*orderdomain.Order, error)
	ListAll(page, limit int) ([]orderdomain.Order, int64, error)
	UpdateStatus(number string, status orderdomain.OrderStatus) (*orderdomain.Order, error)
}

type orderUsecase struct {
	orderRepo repository.OrderRepository
	notifier  StatusNotifier
}

func NewOrderUsecase(orderRepo repository.OrderRepository, notifier StatusNotifier) OrderUsecase {
	return &orderUsecase{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

func (u *orderUsecase) ListMine(userID string) ([]orderdomain.Order, error) {
	return u.orderRepo.ListByUser(userID)
}

func (u *orderUsecase) GetByNumber(userID, number string) (*orderdomain.Order, error) {
	order, err := u.orderRepo.FindByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, errors.New("order not found")
	}
	return order, nil
}

// Cancel lets the user cancel their own order while it is still in
// "placed". Later stages require support intervention.
func (u *orderUsecase) Cancel(userID, number string) (*orderdomain.Order, error) {
	order, err := u.GetByNumber(userID, number)
	if err != nil {
		return nil, err
	}

	if order.Status != orderdomain.OrderStatusPlaced {
		return nil, errors.New("order can no longer be cancelled")
	}

	if err := u.orderRepo.UpdateStatus(order.ID, orderdomain.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = orderdomain.OrderStatusCancelled

	if u.notifier != nil {
		u.notifier.OrderStatusChanged(order.UserID, order.Number, order.Status)
	}
	return order, nil
}

func (u *orderUsecase) ListAll(page, limit int) ([]orderdomain.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return u.orderRepo.ListAll(page, limit)
}

func (u *orderUsecase) UpdateStatus(number string, status orderdomain.OrderStatus) (*orderdomain.Order, error) {
	order, err := u.orderRepo.FindByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order not found")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, errors.New("invalid status transition")
	}

	if err := u.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status

	if u.notifier != nil {
		u.notifier.OrderStatusChanged(order.UserID, order.Number, status)
	}
	return order, nil
}
