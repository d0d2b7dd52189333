package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"wedding/guesthub/internal/handler/middleware"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

func getHostClaims(c *gin.Context) (*jwtpkg.Claims, error) {
	claimsVal, exists := c.Get(middleware.ContextKeyHostClaims)
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*jwtpkg.Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

var ErrNoClaims = errors.New("claims not found in context")
