package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasklist/internal/auth"
	"tasklist/pkg/apierrors"
)

const ownerIDKey = "ownerID"

// AuthMiddleware validates the bearer token and injects the authenticated
// owner id into the request context. The owner id is never read from the
// request body or query.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(ownerIDKey, claims.UserID)
		c.Next()
	}
}

func GetOwnerID(c *gin.Context) string {
	if ownerID, exists := c.Get(ownerIDKey); exists {
		if s, ok := ownerID.(string); ok {
			return s
		}
	}
	return ""
}
