package middleware

import "github.com/gin-gonic/gin"

// NoCache marks responses uncacheable. The dashboard has no invalidation
// logic; freshness comes entirely from never letting intermediaries or the
// browser keep a copy.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
