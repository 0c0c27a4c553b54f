package course

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Title           string
	Description     string
	PricePoints     int
	DurationMinutes int
}

type UpdateRequest struct {
	Title           *string
	Description     *string
	PricePoints     *int
	DurationMinutes *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context, filter Filter) ([]*Course, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Course, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Course, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.PricePoints < 0 {
		return nil, ErrInvalidPrice
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	c := &Course{
		Title:           req.Title,
		Description:     req.Description,
		PricePoints:     req.PricePoints,
		DurationMinutes: req.DurationMinutes,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Course, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Course, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		c.Title = *req.Title
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.PricePoints != nil {
		if *req.PricePoints < 0 {
			return nil, ErrInvalidPrice
		}
		c.PricePoints = *req.PricePoints
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		c.DurationMinutes = *req.DurationMinutes
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Check existence first
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
