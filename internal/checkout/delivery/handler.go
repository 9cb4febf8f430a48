package delivery

import (
	"net/http"

	checkoutdto "naturemillets-backend/internal/checkout/dto"
	"naturemillets-backend/internal/checkout/usecase"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUsecase
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase}
}

func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req checkoutdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.checkoutUsecase.CreatePaymentIntent(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, resp)
}

func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	var req checkoutdto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.checkoutUsecase.ConfirmPayment(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, resp)
}
