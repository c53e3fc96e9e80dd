package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
)

// Required is a Gin middleware that validates the JWT from
// Authorization: Bearer <token> and stores the claims on the context.
func Required(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Unauthorized: No token provided")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortUnauthorized(c, "Unauthorized: Invalid Authorization header format")
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		// Store the subject into the Gin context for later handlers.
		c.Set(ctxUserID, claims.UserID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, apperror.New(http.StatusUnauthorized, message))
	c.Abort()
}
