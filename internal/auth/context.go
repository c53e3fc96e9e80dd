package auth

import "github.com/gin-gonic/gin"

// ctxUserID is the gin context key the Required middleware stores the
// authenticated user's id under.
const ctxUserID = "userID"

// GetUserID returns the authenticated user's ID, or an empty string when the
// request carries no valid token.
func GetUserID(c *gin.Context) string {
	v, _ := c.Get(ctxUserID)
	id, _ := v.(string)
	return id
}
