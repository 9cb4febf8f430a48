package delivery

import (
	"net/http"
	"strconv"

	orderdomain "naturemillets-backend/internal/order/domain"
	orderdto "naturemillets-backend/internal/order/dto"
	"naturemillets-backend/internal/order/usecase"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.orderUsecase.ListMine(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetByNumber(c *gin.Context) {
	order, err := h.orderUsecase.GetByNumber(c.GetString("userID"), c.Param("number"))
	if err != nil {
		response.Error(c, http.StatusNotFound, err.Error())
		return
	}
	response.OK(c, http.StatusOK, order)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	order, err := h.orderUsecase.Cancel(c.GetString("userID"), c.Param("number"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, order)
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	orders, total, err := h.orderUsecase.ListAll(page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req orderdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderUsecase.UpdateStatus(c.Param("number"), orderdomain.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, order)
}
