package http

import (
	"github.com/playvenue/sports-booking-backend/internal/booking"
	facHttp "github.com/playvenue/sports-booking-backend/internal/facility/http"
)

// CreateBookingRequest is the payload for POST /api/bookings. Date and time
// formats are validated by the service, not the binding layer.
type CreateBookingRequest struct {
	Facility  string `json:"facility" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// SlotResponse is one free slot of the availability grid.
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func NewSlotResponse(s booking.Slot) SlotResponse {
	return SlotResponse{
		StartTime: s.StartTime.Format(booking.TimeLayout),
		EndTime:   s.EndTime.Format(booking.TimeLayout),
	}
}

// UserSummary is the user shape embedded in admin booking listings.
type UserSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Address string `json:"address"`
}

// CreatedBookingResponse is returned on creation: references stay plain ids.
type CreatedBookingResponse struct {
	ID            string  `json:"id"`
	Facility      string  `json:"facility"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	User          string  `json:"user"`
	PayableAmount float64 `json:"payableAmount"`
	Status        string  `json:"isBooked"`
}

func NewCreatedBookingResponse(b *booking.Booking) CreatedBookingResponse {
	return CreatedBookingResponse{
		ID:            b.ID,
		Facility:      b.FacilityID,
		Date:          b.Date.Format(booking.DateLayout),
		StartTime:     b.StartTime.Format(booking.TimeLayout),
		EndTime:       b.EndTime.Format(booking.TimeLayout),
		User:          b.UserID,
		PayableAmount: b.PayableAmount,
		Status:        string(b.Status),
	}
}

// BookingResponse embeds the facility snapshot; the user stays an id.
// Used for user listings and cancellation.
type BookingResponse struct {
	ID            string                   `json:"id"`
	Facility      facHttp.FacilityResponse `json:"facility"`
	Date          string                   `json:"date"`
	StartTime     string                   `json:"startTime"`
	EndTime       string                   `json:"endTime"`
	User          string                   `json:"user"`
	PayableAmount float64                  `json:"payableAmount"`
	Status        string                   `json:"isBooked"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Facility:      facHttp.NewFacilityResponse(b.Facility),
		Date:          b.Date.Format(booking.DateLayout),
		StartTime:     b.StartTime.Format(booking.TimeLayout),
		EndTime:       b.EndTime.Format(booking.TimeLayout),
		User:          b.UserID,
		PayableAmount: b.PayableAmount,
		Status:        string(b.Status),
	}
}

// AdminBookingResponse embeds both facility and user summaries.
type AdminBookingResponse struct {
	ID            string                   `json:"id"`
	Facility      facHttp.FacilityResponse `json:"facility"`
	Date          string                   `json:"date"`
	StartTime     string                   `json:"startTime"`
	EndTime       string                   `json:"endTime"`
	User          UserSummary              `json:"user"`
	PayableAmount float64                  `json:"payableAmount"`
	Status        string                   `json:"isBooked"`
}

func NewAdminBookingResponse(b *booking.Booking) AdminBookingResponse {
	return AdminBookingResponse{
		ID:        b.ID,
		Facility:  facHttp.NewFacilityResponse(b.Facility),
		Date:      b.Date.Format(booking.DateLayout),
		StartTime: b.StartTime.Format(booking.TimeLayout),
		EndTime:   b.EndTime.Format(booking.TimeLayout),
		User: UserSummary{
			ID:      b.UserID,
			Name:    b.UserName,
			Email:   b.UserEmail,
			Phone:   b.UserPhone,
			Role:    b.UserRole,
			Address: b.UserAddress,
		},
		PayableAmount: b.PayableAmount,
		Status:        string(b.Status),
	}
}
