package delivery

import (
	"net/http"

	addressdto "naturemillets-backend/internal/address/dto"
	"naturemillets-backend/internal/address/usecase"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressUsecase usecase.AddressUsecase
}

func NewAddressHandler(addressUsecase usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{addressUsecase: addressUsecase}
}

func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.addressUsecase.List(c.GetString("userID"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, addresses)
}

func (h *AddressHandler) Create(c *gin.Context) {
	var req addressdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.addressUsecase.Create(c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusCreated, address)
}

func (h *AddressHandler) Update(c *gin.Context) {
	var req addressdto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.addressUsecase.Update(c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusOK, address)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	if err := h.addressUsecase.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "address deleted", nil)
}

func (h *AddressHandler) SetDefault(c *gin.Context) {
	if err := h.addressUsecase.SetDefault(c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "default address updated", nil)
}
