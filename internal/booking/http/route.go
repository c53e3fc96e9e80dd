package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the booking endpoints. The availability check lives
// under /facility to match the public API surface; it needs no auth.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, userMiddleware, adminMiddleware gin.HandlerFunc) {
	g.GET("/facility/check-availability", h.CheckAvailability)

	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", userMiddleware, h.Create)
		group.GET("", adminMiddleware, h.ListAll)
		group.GET("/user", userMiddleware, h.ListByUser)
		group.DELETE("/:id", userMiddleware, h.Cancel)
	}
}
