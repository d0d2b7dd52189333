package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type RSVPHandler struct {
	tokenService service.TokenService
	rsvpService  service.RSVPService
}

func NewRSVPHandler(tokenService service.TokenService, rsvpService service.RSVPService) *RSVPHandler {
	return &RSVPHandler{
		tokenService: tokenService,
		rsvpService:  rsvpService,
	}
}

// VerifyToken resolves the invitation token from the RSVP link. Invalid
// tokens answer 200 with valid:false so the form can render a friendly
// message instead of an error page.
func (h *RSVPHandler) VerifyToken(c *gin.Context) {
	result := h.tokenService.Verify(c.Request.Context(), c.Query("token"))
	if !result.Valid {
		response.VerifyInvalid(c, result.Reason)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"invitee": gin.H{
			"id":    result.Invitee.ID,
			"name":  result.Invitee.Name,
			"email": result.Invitee.Email,
			"token": result.Invitee.Token,
		},
		"already_submitted": result.AlreadySubmitted,
	})
}

type SubmitRSVPRequest struct {
	Token         string `json:"token" binding:"required"`
	SubmitterName string `json:"submitter_name" binding:"required"`
	// Pointer so that both an absent field and an explicit null are rejected.
	Attending        *bool    `json:"attending" binding:"required"`
	GuestCount       int      `json:"guest_count"`
	AdditionalGuests []string `json:"additional_guests"`
}

func (h *RSVPHandler) Submit(c *gin.Context) {
	var req SubmitRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SubmitError(c, http.StatusBadRequest, "missing required fields")
		return
	}

	err := h.rsvpService.Submit(c.Request.Context(), service.SubmitRSVPInput{
		Token:            req.Token,
		SubmitterName:    req.SubmitterName,
		Attending:        *req.Attending,
		GuestCount:       req.GuestCount,
		AdditionalGuests: req.AdditionalGuests,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken),
			errors.Is(err, service.ErrAlreadySubmitted),
			errors.Is(err, service.ErrSubmitterRequired),
			errors.Is(err, service.ErrGuestCountNegative):
			response.SubmitError(c, http.StatusBadRequest, err.Error())
		default:
			response.SubmitError(c, http.StatusInternalServerError, "failed to save RSVP")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
