package facility

import (
	"net/http"
	"time"

	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "Facility not found")
	ErrNegativePrice = apperror.New(http.StatusBadRequest, "Price per hour cannot be negative")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "Facility name cannot be empty")
)

// Facility is a bookable unit (e.g., a tennis court or futsal pitch).
// Facilities are soft-deleted only, so historical bookings keep a valid
// reference.
type Facility struct {
	ID           string
	Name         string
	Description  string
	PricePerHour float64
	Location     string
	IsDeleted    bool
	CreatedAt    time.Time
}
