package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/playvenue/sports-booking-backend/internal/auth"
	"github.com/playvenue/sports-booking-backend/internal/booking"
	"github.com/playvenue/sports-booking-backend/internal/pkg/apperror"
	"github.com/playvenue/sports-booking-backend/internal/pkg/request"
	"github.com/playvenue/sports-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// CheckAvailability handles GET /api/facility/check-availability.
// Query params: date (YYYY-MM-DD, default today), facility (optional uuid).
func (h *Handler) CheckAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	facilityID := c.Query("facility")

	if facilityID != "" {
		if _, err := uuid.Parse(facilityID); err != nil {
			response.Error(c, apperror.New(http.StatusBadRequest, "Invalid facility id").WithCause(err))
			return
		}
	}

	slots, err := h.service.CheckAvailability(c.Request.Context(), dateStr, facilityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(slots) == 0 {
		response.NoData(c)
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}

	response.OK(c, http.StatusOK, "Availability checked successfully", items)
}

// Create handles POST /api/bookings (role=user).
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.ValidationError(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:     auth.GetUserID(c),
		FacilityID: body.Facility,
		Date:       body.Date,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Booking created successfully", NewCreatedBookingResponse(b))
}

// ListAll handles GET /api/bookings (role=admin).
func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(bookings) == 0 {
		response.NoData(c)
		return
	}

	items := make([]AdminBookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewAdminBookingResponse(b)
	}

	response.OK(c, http.StatusOK, "Bookings retrieved successfully", items)
}

// ListByUser handles GET /api/bookings/user (role=user).
func (h *Handler) ListByUser(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(bookings) == 0 {
		response.NoData(c)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	response.OK(c, http.StatusOK, "Bookings retrieved successfully", items)
}

// Cancel handles DELETE /api/bookings/:id (role=user, owner only).
func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ValidationError(c, err)
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Booking canceled successfully", NewBookingResponse(b))
}
