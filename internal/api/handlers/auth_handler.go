package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/utils"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Register", "invalid request body", err))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
