package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playvenue/sports-booking-backend/internal/auth"
	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
	"github.com/playvenue/sports-booking-backend/internal/user"
)

// RequireRole builds a middleware allowing only users whose stored role is in
// the given set. It re-reads the user so a role change or deletion takes
// effect immediately, not at token expiry.
func RequireRole(userService user.Service, roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			response.Error(c, apperror.New(http.StatusUnauthorized, "Unauthorized: No token provided"))
			c.Abort()
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, apperror.New(http.StatusUnauthorized, "Invalid token").WithCause(err))
			c.Abort()
			return
		}

		if _, ok := allowed[u.Role]; !ok {
			response.Error(c, apperror.New(http.StatusForbidden, "Forbidden: You do not have access to this resource"))
			c.Abort()
			return
		}

		c.Next()
	}
}
