package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type AuthHandler struct {
	sessionService service.SessionService
}

func NewAuthHandler(sessionService service.SessionService) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the shared dashboard password for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "password is required")
		return
	}

	token, expiresIn, err := h.sessionService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			response.Unauthorized(c, "invalid password")
			return
		}
		response.InternalError(c, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"expires_in": expiresIn,
	})
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, err := getHostClaims(c)
	if err != nil {
		response.Unauthorized(c, "invalid session context")
		return
	}

	if err := h.sessionService.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c, "logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
