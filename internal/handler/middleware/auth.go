package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/service"
	jwtpkg "wedding/guesthub/pkg/jwt"
	"wedding/guesthub/pkg/response"
)

const ContextKeyHostClaims = "host_claims"

// HostAuth guards the dashboard endpoints. It validates the Bearer session
// token's signature, then checks the JTI is still live in the state store so
// a logged-out token stops working before it expires.
func HostAuth(jwtManager *jwtpkg.Manager, sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization format")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		live, err := sessions.IsLive(c.Request.Context(), claims)
		if err != nil {
			response.InternalError(c, "session check failed")
			c.Abort()
			return
		}
		if !live {
			response.Unauthorized(c, "session revoked or expired")
			c.Abort()
			return
		}

		c.Set(ContextKeyHostClaims, claims)
		c.Next()
	}
}
