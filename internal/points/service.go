package points

import (
	"context"
	"fmt"
	"slices"

	"github.com/shizukanami/salon-booking-backend/internal/pkg/metrics"
	"github.com/shizukanami/salon-booking-backend/internal/user"
)

// UserReader is the slice of the user service this package needs.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Service interface {
	// Charge tops up the caller's own balance with one of the purchase
	// presets.
	Charge(ctx context.Context, userID string, amount int) error

	// Adjust applies an admin grant or deduction of any sign.
	Adjust(ctx context.Context, userID string, amount int, description string) error

	History(ctx context.Context, userID string, page, pageSize int) ([]*LedgerEntry, int, error)

	// Balance returns the user's cached balance together with the ledger
	// sum, which should always agree.
	Balance(ctx context.Context, userID string) (current int, ledgerSum int, err error)
}

type service struct {
	repo  Repository
	users UserReader
}

func NewService(repo Repository, users UserReader) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Charge(ctx context.Context, userID string, amount int) error {
	if !slices.Contains(ChargeAmounts, amount) {
		return ErrChargeAmount
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	desc := fmt.Sprintf("Point purchase: %d", amount)
	if err := s.repo.Credit(ctx, userID, amount, desc); err != nil {
		return err
	}

	metrics.PointsCreditedTotal.Add(float64(amount))
	return nil
}

func (s *service) Adjust(ctx context.Context, userID string, amount int, description string) error {
	if amount == 0 {
		return ErrInvalidAmount
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}

	if description == "" {
		description = "Manual adjustment"
	}

	if err := s.repo.Credit(ctx, userID, amount, description); err != nil {
		return err
	}

	if amount > 0 {
		metrics.PointsCreditedTotal.Add(float64(amount))
	}
	return nil
}

func (s *service) History(ctx context.Context, userID string, page, pageSize int) ([]*LedgerEntry, int, error) {
	return s.repo.History(ctx, userID, page, pageSize)
}

func (s *service) Balance(ctx context.Context, userID string) (int, int, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	sum, err := s.repo.SumByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	return u.CurrentPoints, sum, nil
}
