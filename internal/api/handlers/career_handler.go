package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/services"
)

type CareerHandler struct {
	careers services.CareerService
}

func NewCareerHandler(careers services.CareerService) *CareerHandler {
	return &CareerHandler{careers: careers}
}

type roadmapResponse struct {
	Roadmap *models.Roadmap      `json:"roadmap"`
	Steps   []models.RoadmapStep `json:"steps"`
}

func (h *CareerHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.careers.Generate(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *CareerHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.careers.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *CareerHandler) Select(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	roadmap, steps, err := h.careers.Select(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, roadmapResponse{Roadmap: roadmap, Steps: steps})
}
