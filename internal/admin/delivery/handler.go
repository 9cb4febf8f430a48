package delivery

import (
	"net/http"

	authrepo "naturemillets-backend/internal/auth/repository"
	catalogrepo "naturemillets-backend/internal/catalog/repository"
	orderrepo "naturemillets-backend/internal/order/repository"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back-office dashboard aggregates.
type AdminHandler struct {
	userRepo    authrepo.UserRepository
	productRepo catalogrepo.ProductRepository
	orderRepo   orderrepo.OrderRepository
}

func NewAdminHandler(userRepo authrepo.UserRepository, productRepo catalogrepo.ProductRepository, orderRepo orderrepo.OrderRepository) *AdminHandler {
	return &AdminHandler{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	users, err := h.userRepo.CountUsers()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	products, err := h.productRepo.CountProducts()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	orders, err := h.orderRepo.CountOrders()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	revenue, err := h.orderRepo.SumRevenue()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"users":    users,
		"products": products,
		"orders":   orders,
		"revenue":  revenue,
	})
}
