package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/pathwise/internal/services"
)

type DashboardHandler struct {
	progress services.ProgressService
}

func NewDashboardHandler(progress services.ProgressService) *DashboardHandler {
	return &DashboardHandler{progress: progress}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.progress.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
