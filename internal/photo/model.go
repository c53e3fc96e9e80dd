package photo

import (
	"net/http"
	"time"

	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "Photo not found")
	ErrNotAnImage  = apperror.New(http.StatusBadRequest, "Uploaded file must be an image")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "Thumbnail not available for this photo")
)

// Photo is an image attached to a facility.
type Photo struct {
	ID            string    `json:"id"`
	FacilityID    string    `json:"facilityId"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // internal path
	ThumbnailPath *string   `json:"-"` // internal path
	ContentType   string    `json:"contentType"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"createdAt"`
}

// URL returns the public URL for the photo.
func URL(id string) string {
	return "/api/photos/" + id
}

// ThumbnailURL returns the public URL for the photo's thumbnail.
func ThumbnailURL(id string) string {
	return "/api/photos/" + id + "/thumbnail"
}
