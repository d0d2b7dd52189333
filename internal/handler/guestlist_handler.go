package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type GuestListHandler struct {
	guestListService service.GuestListService
}

func NewGuestListHandler(guestListService service.GuestListService) *GuestListHandler {
	return &GuestListHandler{guestListService: guestListService}
}

// List returns the joined per-invitee view plus summary stats. The route is
// wrapped in the no-cache middleware so the dashboard's refresh always hits
// the store.
func (h *GuestListHandler) List(c *gin.Context) {
	list, err := h.guestListService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to load guest list")
		return
	}
	c.JSON(http.StatusOK, list)
}
