package http

import (
	"github.com/playvenue/sports-booking-backend/internal/facility"
)

// CreateFacilityRequest is the payload for POST /api/facility.
type CreateFacilityRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	PricePerHour float64 `json:"pricePerHour" binding:"required,gte=0"`
	Location     string  `json:"location" binding:"required"`
}

// UpdateFacilityRequest is the payload for PUT /api/facility/:id.
type UpdateFacilityRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	PricePerHour float64 `json:"pricePerHour" binding:"required,gte=0"`
	Location     string  `json:"location" binding:"required"`
}

// FacilityResponse is the facility shape used in API responses, both on
// facility endpoints and embedded into booking responses.
type FacilityResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	Location     string  `json:"location"`
	IsDeleted    bool    `json:"isDeleted"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:           f.ID,
		Name:         f.Name,
		Description:  f.Description,
		PricePerHour: f.PricePerHour,
		Location:     f.Location,
		IsDeleted:    f.IsDeleted,
	}
}
