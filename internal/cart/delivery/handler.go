package delivery

import (
	"net/http"

	cartdto "naturemillets-backend/internal/cart/dto"
	"naturemillets-backend/internal/cart/usecase"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
}

func NewCartHandler(cartUsecase usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartUsecase.GetCart(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartUsecase.AddItem(c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req cartdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartUsecase.UpdateItem(c.GetString("userID"), c.Param("productId"), req.Quantity)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartUsecase.RemoveItem(c.GetString("userID"), c.Param("productId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartUsecase.Clear(c.GetString("userID")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "cart cleared", nil)
}

func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req cartdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cart, err := h.cartUsecase.ApplyCoupon(c.GetString("userID"), req.Code)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, cart)
}

func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	cart, err := h.cartUsecase.RemoveCoupon(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, cart)
}

func (h *CartHandler) CreateCoupon(c *gin.Context) {
	var req cartdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	coupon, err := h.cartUsecase.CreateCoupon(&req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusCreated, coupon)
}

func (h *CartHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.cartUsecase.ListCoupons()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, coupons)
}

func (h *CartHandler) DeleteCoupon(c *gin.Context) {
	if err := h.cartUsecase.DeleteCoupon(c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "coupon deleted", nil)
}
