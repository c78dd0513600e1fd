package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/utils"
)

type ProfileHandler struct {
	profile services.ProfileService
}

func NewProfileHandler(profile services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// pointer fields so absent keys leave the stored value untouched
type updateProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Education       *string   `json:"education"`
	CurrentRole     *string   `json:"current_role"`
	ExperienceLevel *string   `json:"experience_level"`
	Interests       *[]string `json:"interests"`
	CareerGoals     *[]string `json:"career_goals"`
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.profile.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	user, err := h.profile.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.CurrentRole != nil {
		user.CurrentRole = *req.CurrentRole
	}
	if req.ExperienceLevel != nil {
		user.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Interests != nil {
		user.Interests = pq.StringArray(*req.Interests)
	}
	if req.CareerGoals != nil {
		user.CareerGoals = pq.StringArray(*req.CareerGoals)
	}

	if err := h.profile.Update(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
