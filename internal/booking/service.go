package booking

import (
	"context"
	"time"

	"github.com/playvenue/sports-booking-backend/internal/facility"
)

// CreateRequest carries the raw booking request. Date and times arrive as
// strings so the service owns format validation.
type CreateRequest struct {
	UserID     string
	FacilityID string
	Date       string
	StartTime  string
	EndTime    string
}

type Service interface {
	// CheckAvailability returns the free slots of the fixed grid for the
	// given date (default: today). A non-empty facilityID scopes the check
	// to that facility; otherwise it spans all facilities.
	CheckAvailability(ctx context.Context, dateStr, facilityID string) ([]Slot, error)

	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)

	// Cancel flips the caller's booking to canceled. Canceling an already
	// canceled booking is a no-op returning the record unchanged.
	Cancel(ctx context.Context, id, userID string) (*Booking, error)
}

type service struct {
	repo       Repository
	facService facility.Service
	now        func() time.Time
}

func NewService(repo Repository, facService facility.Service) Service {
	return &service{
		repo:       repo,
		facService: facService,
		now:        time.Now,
	}
}

func (s *service) CheckAvailability(ctx context.Context, dateStr, facilityID string) ([]Slot, error) {
	var date time.Time
	if dateStr == "" {
		y, m, d := s.now().UTC().Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		date, err = ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
	}

	if facilityID != "" {
		// Scoped check: the facility must exist and not be soft-deleted.
		if _, err := s.facService.GetByID(ctx, facilityID); err != nil {
			return nil, err
		}
	}

	bookings, err := s.repo.ListConfirmedOn(ctx, date, facilityID)
	if err != nil {
		return nil, err
	}

	return FreeSlots(DaySlots(date), bookings), nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	start, err := CombineDateTime(date, req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := CombineDateTime(date, req.EndTime)
	if err != nil {
		return nil, err
	}

	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	// Soft-deleted facilities are invisible here, so booking one yields 404.
	fac, err := s.facService.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		FacilityID:    req.FacilityID,
		UserID:        req.UserID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		PayableAmount: PayableAmount(start, end, fac.PricePerHour),
		Status:        StatusConfirmed,
	}

	// Overlap check and insert run atomically in the repository.
	if err := s.repo.CreateExclusive(ctx, b); err != nil {
		return nil, err
	}

	b.Facility = fac
	return b, nil
}

func (s *service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Cancel(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.UserID != userID {
		return nil, ErrNotOwner
	}

	if b.Status == StatusCanceled {
		return b, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCanceled); err != nil {
		return nil, err
	}

	b.Status = StatusCanceled
	return b, nil
}
