package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/config"
)

// WeddingHandler serves the static wedding details the public pages render:
// couple, date, venue, story. All of it comes from configuration.
type WeddingHandler struct {
	wedding config.WeddingConfig
}

func NewWeddingHandler(wedding config.WeddingConfig) *WeddingHandler {
	return &WeddingHandler{wedding: wedding}
}

func (h *WeddingHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"couple": h.wedding.Couple,
		"date":   h.wedding.Date,
		"venue":  h.wedding.Venue,
		"story":  h.wedding.Story,
	})
}
