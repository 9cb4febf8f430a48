package delivery

import (
	"net/http"

	"naturemillets-backend/internal/wishlist/usecase"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistUsecase usecase.WishlistUsecase
}

func NewWishlistHandler(wishlistUsecase usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUsecase: wishlistUsecase}
}

func (h *WishlistHandler) List(c *gin.Context) {
	products, err := h.wishlistUsecase.List(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, products)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	if err := h.wishlistUsecase.Add(c.GetString("userID"), c.Param("productId")); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "added to wishlist", nil)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.wishlistUsecase.Remove(c.GetString("userID"), c.Param("productId")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "removed from wishlist", nil)
}
