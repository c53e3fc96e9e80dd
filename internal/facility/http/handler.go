package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playvenue/sports-booking-backend/internal/facility"
	"github.com/playvenue/sports-booking-backend/internal/pkg/request"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
)

type Handler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/facility (admin only).
func (h *Handler) Create(c *gin.Context) {
	var body CreateFacilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationError(c, err)
		return
	}

	f, err := h.service.Create(c.Request.Context(), facility.CreateRequest{
		Name:         body.Name,
		Description:  body.Description,
		PricePerHour: body.PricePerHour,
		Location:     body.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Facility added successfully", NewFacilityResponse(f))
}

// Update handles PUT /api/facility/:id (admin only).
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	var body UpdateFacilityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationError(c, err)
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, facility.UpdateRequest{
		Name:         body.Name,
		Description:  body.Description,
		PricePerHour: body.PricePerHour,
		Location:     body.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Facility updated successfully", NewFacilityResponse(f))
}

// Delete handles DELETE /api/facility/:id (admin only, soft delete).
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	f, err := h.service.Delete(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Facility deleted successfully", NewFacilityResponse(f))
}

// List handles GET /api/facility. Soft-deleted facilities are filtered out.
func (h *Handler) List(c *gin.Context) {
	facilities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]FacilityResponse, len(facilities))
	for i, f := range facilities {
		items[i] = NewFacilityResponse(f)
	}

	response.OK(c, http.StatusOK, "Facilities retrieved successfully", items)
}
