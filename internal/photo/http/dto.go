package http

import (
	"time"

	"github.com/playvenue/sports-booking-backend/internal/photo"
)

// PhotoResponse is the photo shape returned by upload and listing endpoints.
type PhotoResponse struct {
	ID           string    `json:"id"`
	FacilityID   string    `json:"facilityId"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		FacilityID:  p.FacilityID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		u := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &u
	}
	return resp
}
