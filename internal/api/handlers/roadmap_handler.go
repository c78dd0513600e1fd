package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/utils"
)

type RoadmapHandler struct {
	careers  services.CareerService
	progress services.ProgressService
}

func NewRoadmapHandler(careers services.CareerService, progress services.ProgressService) *RoadmapHandler {
	return &RoadmapHandler{careers: careers, progress: progress}
}

type toggleStepRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

func (h *RoadmapHandler) Current(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	roadmap, steps, err := h.careers.CurrentRoadmap(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, roadmapResponse{Roadmap: roadmap, Steps: steps})
}

func (h *RoadmapHandler) ToggleStep(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req toggleStepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsCompleted == nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "RoadmapHandler.ToggleStep", "a boolean 'is_completed' field is required", err))
		return
	}

	if err := h.progress.ToggleStep(c.Request.Context(), userID, c.Param("id"), *req.IsCompleted); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_completed": *req.IsCompleted})
}
