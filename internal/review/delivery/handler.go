package delivery

import (
	"net/http"

	authdomain "naturemillets-backend/internal/auth/domain"
	reviewdto "naturemillets-backend/internal/review/dto"
	"naturemillets-backend/internal/review/usecase"
	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	var req reviewdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user := c.MustGet("user").(*authdomain.User)
	review, err := h.reviewUsecase.Submit(user.ID, user.Username, c.Param("productId"), &req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.OK(c, http.StatusCreated, review)
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, avg, count, err := h.reviewUsecase.ListByProduct(c.Param("productId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": avg,
		"count":          count,
	})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewUsecase.Delete(c.GetString("userID"), c.Param("productId")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "review deleted", nil)
}
