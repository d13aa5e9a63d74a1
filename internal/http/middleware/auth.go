// README: Access-code auth middleware.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const accessCodeHeader = "X-Access-Code"

// CodeValidator reports whether an access code grants API access.
type CodeValidator interface {
	IsValid(ctx context.Context, code string) (bool, error)
}

func Auth(codes CodeValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.GetHeader(accessCodeHeader)
		ok, err := codes.IsValid(c.Request.Context(), code)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access code"})
			return
		}
		c.Next()
	}
}
