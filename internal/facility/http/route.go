package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the facility endpoints on /facility. Mutations
// require an authenticated admin; listing is public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/facility")

	group.GET("", h.List)

	group.POST("", authMiddleware, adminMiddleware, h.Create)
	group.PUT("/:id", authMiddleware, adminMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
}
