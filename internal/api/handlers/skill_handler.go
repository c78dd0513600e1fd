package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/utils"
)

type SkillHandler struct {
	skills services.SkillService
}

func NewSkillHandler(skills services.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

type addSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Proficiency string `json:"proficiency" binding:"required"`
}

func (h *SkillHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.skills.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *SkillHandler) Add(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SkillHandler.Add", "invalid request body", err))
		return
	}

	row, err := h.skills.Add(c.Request.Context(), userID, req.Name, req.Category, req.Proficiency)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *SkillHandler) Remove(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.skills.Remove(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
