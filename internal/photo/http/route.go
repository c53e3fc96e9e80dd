package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the facility-photo endpoints. Uploading and deleting
// require an authenticated admin; viewing is public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	g.POST("/facility/:id/photos", authMiddleware, adminMiddleware, h.Upload)
	g.GET("/facility/:id/photos", h.ListByFacility)

	photos := g.Group("/photos")
	{
		photos.GET("/:id", h.Download)
		photos.GET("/:id/thumbnail", h.DownloadThumbnail)
		photos.DELETE("/:id", authMiddleware, adminMiddleware, h.Delete)
	}
}
