package booking

import (
	"net/http"
	"time"

	"github.com/playvenue/sports-booking-backend/internal/facility"
	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
)

var (
	ErrNoData           = apperror.New(http.StatusNotFound, "No Data Found")
	ErrInvalidDateTime  = apperror.New(http.StatusBadRequest, "Invalid date or time format")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "Invalid start or end time")
	ErrSlotUnavailable  = apperror.New(http.StatusBadRequest, "Facility is unavailable for the requested time slot")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "Forbidden: You do not have access to this resource")
	ErrDuplicateEntry   = apperror.New(http.StatusBadRequest, "Duplicate entry")
)

// Status is the lifecycle state of a booking. The only transition is
// confirmed -> canceled; unconfirmed exists for wire compatibility and is
// never produced by this service.
type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusUnconfirmed Status = "unconfirmed"
	StatusCanceled    Status = "canceled"
)

// Booking reserves a facility for a time window on a calendar day.
// PayableAmount is fixed at creation from the facility's price at that
// moment; later price changes never touch it.
type Booking struct {
	ID            string
	FacilityID    string
	UserID        string
	Date          time.Time // midnight UTC of the booking day
	StartTime     time.Time
	EndTime       time.Time
	PayableAmount float64
	Status        Status
	CreatedAt     time.Time

	// Joined summaries, populated by list/get queries.
	Facility    *facility.Facility
	UserName    string
	UserEmail   string
	UserPhone   string
	UserRole    string
	UserAddress string
}
