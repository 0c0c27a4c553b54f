package notification

import "context"

// DefaultLimit is how many inbox entries the admin dashboard shows.
const DefaultLimit = 5

type Service interface {
	ListLatest(ctx context.Context, limit int) ([]*Notification, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListLatest(ctx context.Context, limit int) ([]*Notification, error) {
	if limit < 1 {
		limit = DefaultLimit
	}
	return s.repo.ListLatest(ctx, limit)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
