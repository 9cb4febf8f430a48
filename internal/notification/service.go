package notification

import (
	"context"
	"fmt"
	"log"

	authrepo "naturemillets-backend/internal/auth/repository"
	orderdomain "naturemillets-backend/internal/order/domain"
	"naturemillets-backend/pkg/fcm"
)

// Service persists order notifications and pushes them to the user's
// registered devices. The push is best effort: failures are logged and
// never bubble up into the operation that triggered them.
type Service struct {
	repo       Repository
	deviceRepo authrepo.DeviceTokenRepository
	fcmClient  *fcm.Client // nil when push is not configured
}

func NewService(repo Repository, deviceRepo authrepo.DeviceTokenRepository, fcmClient *fcm.Client) *Service {
	return &Service{
		repo:       repo,
		deviceRepo: deviceRepo,
		fcmClient:  fcmClient,
	}
}

// OrderPlaced implements the checkout usecase's PlacedNotifier
func (s *Service) OrderPlaced(userID, orderNumber string) {
	s.notify(userID, orderNumber, "Order placed",
		fmt.Sprintf("Your order %s has been placed. We'll let you know when it ships.", orderNumber))
}

// OrderStatusChanged implements the order usecase's StatusNotifier
func (s *Service) OrderStatusChanged(userID, orderNumber string, status orderdomain.OrderStatus) {
	var body string
	switch status {
	case orderdomain.OrderStatusProcessing:
		body = fmt.Sprintf("Your order %s is being prepared.", orderNumber)
	case orderdomain.OrderStatusShipped:
		body = fmt.Sprintf("Your order %s is on its way.", orderNumber)
	case orderdomain.OrderStatusDelivered:
		body = fmt.Sprintf("Your order %s has been delivered. Enjoy!", orderNumber)
	case orderdomain.OrderStatusCancelled:
		body = fmt.Sprintf("Your order %s has been cancelled.", orderNumber)
	default:
		body = fmt.Sprintf("Your order %s was updated.", orderNumber)
	}
	s.notify(userID, orderNumber, "Order update", body)
}

func (s *Service) notify(userID, orderNumber, title, body string) {
	n := &Notification{
		UserID:      userID,
		Title:       title,
		Body:        body,
		OrderNumber: orderNumber,
	}
	if err := s.repo.Create(n); err != nil {
		log.Printf("[Notification] Failed to persist notification for user %s: %v", userID, err)
	}

	if s.fcmClient == nil {
		return
	}

	go func() {
		tokens, err := s.deviceRepo.GetTokensByUserID(userID)
		if err != nil {
			log.Printf("[Notification] Failed to load device tokens for user %s: %v", userID, err)
			return
		}
		if len(tokens) == 0 {
			return
		}

		tokenStrings := make([]string, 0, len(tokens))
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		failed, err := s.fcmClient.SendToDevices(context.Background(), tokenStrings, fcm.NotificationData{
			Title:       title,
			Body:        body,
			Data:        map[string]string{"order_number": orderNumber},
			ClickAction: "/orders/" + orderNumber,
		})
		if err != nil {
			log.Printf("[Notification] Push failed for user %s: %v", userID, err)
			return
		}

		// Prune registrations FCM rejected
		for _, token := range failed {
			if err := s.deviceRepo.DeleteToken(token); err != nil {
				log.Printf("[Notification] Failed to prune dead device token: %v", err)
			}
		}
	}()
}
