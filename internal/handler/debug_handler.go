package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

// DebugHandler serves the read-only diagnostic report. In release mode the
// request must carry the configured secret as a query parameter; outside
// release mode the gate is bypassed.
type DebugHandler struct {
	diagnosticService service.DiagnosticService
	secret            string
	releaseMode       bool
}

func NewDebugHandler(diagnosticService service.DiagnosticService, secret string, releaseMode bool) *DebugHandler {
	return &DebugHandler{
		diagnosticService: diagnosticService,
		secret:            secret,
		releaseMode:       releaseMode,
	}
}

func (h *DebugHandler) Report(c *gin.Context) {
	if h.releaseMode && c.Query("secret") != h.secret {
		response.Unauthorized(c, "unauthorized")
		return
	}
	c.JSON(http.StatusOK, h.diagnosticService.Report(c.Request.Context()))
}
