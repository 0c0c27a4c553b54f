package schedule

import (
	"context"
	"time"
)

type UpsertRequest struct {
	Date      time.Time
	OpenTime  string // "HH:MM"
	CloseTime string // "HH:MM"
	IsClosed  bool
}

// Service is the schedule registry: business hours per date, with a
// hardcoded fallback when no override exists. Read-only for everything
// except the admin override screens.
type Service interface {
	// WindowFor returns the effective window for a date. No override means
	// the default 10:00-18:00 open window.
	WindowFor(ctx context.Context, date time.Time) (Window, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*Override, error)
	Upsert(ctx context.Context, req UpsertRequest) (*Override, error)
	Delete(ctx context.Context, date time.Time) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) WindowFor(ctx context.Context, date time.Time) (Window, error) {
	o, err := s.repo.GetByDate(ctx, truncateToDate(date))
	if err != nil {
		return Window{}, err
	}
	if o == nil {
		return DefaultWindow(), nil
	}
	return o.Window, nil
}

func (s *service) ListRange(ctx context.Context, from, to time.Time) ([]*Override, error) {
	return s.repo.ListRange(ctx, truncateToDate(from), truncateToDate(to))
}

func (s *service) Upsert(ctx context.Context, req UpsertRequest) (*Override, error) {
	open, err := ParseClock(req.OpenTime)
	if err != nil {
		return nil, err
	}
	closeM, err := ParseClock(req.CloseTime)
	if err != nil {
		return nil, err
	}
	if !req.IsClosed && closeM <= open {
		return nil, ErrInvalidWindow
	}

	o := &Override{
		Date: truncateToDate(req.Date),
		Window: Window{
			OpenMinutes:  open,
			CloseMinutes: closeM,
			Closed:       req.IsClosed,
		},
	}

	if err := s.repo.Upsert(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, date time.Time) error {
	return s.repo.Delete(ctx, truncateToDate(date))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
