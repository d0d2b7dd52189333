package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The dashboard endpoints answer plain {"error": ...} on failure; the
// guest-facing RSVP endpoints carry a success flag the form reads.

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// SubmitError writes the RSVP-form failure shape.
func SubmitError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// VerifyInvalid writes the token-verification failure shape. Always 200: a bad
// token is a business result, not a transport error.
func VerifyInvalid(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"valid": false, "error": message})
}
