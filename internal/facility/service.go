package facility

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name         string
	Description  string
	PricePerHour float64
	Location     string
}

// UpdateRequest replaces the mutable fields of a facility. The PUT endpoint
// sends the full document, so no field is optional here.
type UpdateRequest struct {
	Name         string
	Description  string
	PricePerHour float64
	Location     string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context) ([]*Facility, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Facility, error)
	Delete(ctx context.Context, id string) (*Facility, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerHour < 0 {
		return nil, ErrNegativePrice
	}

	f := &Facility{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Location:     req.Location,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Facility, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PricePerHour < 0 {
		return nil, ErrNegativePrice
	}

	f.Name = strings.TrimSpace(req.Name)
	f.Description = req.Description
	f.PricePerHour = req.PricePerHour
	f.Location = req.Location

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Facility, error) {
	return s.repo.SoftDelete(ctx, id)
}
