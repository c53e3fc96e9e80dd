package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playvenue/sports-booking-backend/internal/photo"
	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
	"github.com/playvenue/sports-booking-backend/internal/pkg/request"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
)

type Handler struct {
	service photo.Service
}

func NewHandler(service photo.Service) *Handler {
	return &Handler{service: service}
}

// Upload handles POST /api/facility/:id/photos (admin only, multipart field "photo").
func (h *Handler) Upload(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "Missing photo file").WithCause(err))
		return
	}

	p, err := h.service.Upload(c.Request.Context(), header, uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Photo uploaded successfully", NewPhotoResponse(p))
}

// ListByFacility handles GET /api/facility/:id/photos.
func (h *Handler) ListByFacility(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	photos, err := h.service.ListByFacility(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	response.OK(c, http.StatusOK, "Photos retrieved successfully", items)
}

// Download handles GET /api/photos/:id, streaming the original image.
func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	stream, p, err := h.service.Download(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, p.Size, p.ContentType, stream, nil)
}

// DownloadThumbnail handles GET /api/photos/:id/thumbnail.
func (h *Handler) DownloadThumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are re-encoded as JPEG; size is unknown up front.
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}

// Delete handles DELETE /api/photos/:id (admin only).
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Photo deleted successfully", nil)
}
