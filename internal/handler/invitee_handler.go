package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type InviteeHandler struct {
	inviteeService service.InviteeService
}

func NewInviteeHandler(inviteeService service.InviteeService) *InviteeHandler {
	return &InviteeHandler{inviteeService: inviteeService}
}

type CreateInviteeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// Create adds invitees; a comma-separated name creates one row per part.
func (h *InviteeHandler) Create(c *gin.Context) {
	var req CreateInviteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name is required")
		return
	}

	invitees, err := h.inviteeService.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create invitees")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "invitees": invitees})
}

// Delete removes an invitee and its whole RSVP chain.
func (h *InviteeHandler) Delete(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		response.BadRequest(c, "id is required")
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.inviteeService.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c, "failed to delete invitee")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
