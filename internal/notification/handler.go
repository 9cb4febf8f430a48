package notification

import (
	"net/http"
	"strconv"

	"naturemillets-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	notifications, err := h.repo.ListByUser(c.GetString("userID"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OK(c, http.StatusOK, notifications)
}

func (h *Handler) MarkRead(c *gin.Context) {
	if err := h.repo.MarkRead(c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "notification marked read", nil)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.repo.MarkAllRead(c.GetString("userID")); err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.OKWithMessage(c, http.StatusOK, "all notifications marked read", nil)
}
