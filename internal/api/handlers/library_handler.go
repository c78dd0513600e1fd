package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/utils"
)

type LibraryHandler struct {
	library  services.LibraryService
	progress services.ProgressService
}

func NewLibraryHandler(library services.LibraryService, progress services.ProgressService) *LibraryHandler {
	return &LibraryHandler{library: library, progress: progress}
}

type toggleProjectRequest struct {
	IsCompleted *bool `json:"is_completed" binding:"required"`
}

func (h *LibraryHandler) ListCourses(c *gin.Context) {
	rows, err := h.library.ListCourses(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *LibraryHandler) ListProjects(c *gin.Context) {
	rows, err := h.library.ListProjects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *LibraryHandler) SaveCourse(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	row, err := h.library.SaveCourse(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *LibraryHandler) ListSavedCourses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.library.ListSavedCourses(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *LibraryHandler) UnsaveCourse(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.library.UnsaveCourse(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LibraryHandler) SaveProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	row, err := h.library.SaveProject(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, row)
}

func (h *LibraryHandler) ListSavedProjects(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rows, err := h.library.ListSavedProjects(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *LibraryHandler) ToggleProject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req toggleProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsCompleted == nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "LibraryHandler.ToggleProject", "a boolean 'is_completed' field is required", err))
		return
	}

	if err := h.progress.ToggleProject(c.Request.Context(), userID, c.Param("id"), *req.IsCompleted); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_completed": *req.IsCompleted})
}
