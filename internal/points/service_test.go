package points

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shizukanami/salon-booking-backend/internal/user"
)

type memRepository struct {
	balances map[string]int
	ledger   map[string][]*LedgerEntry
}

func newMemRepository() *memRepository {
	return &memRepository{
		balances: make(map[string]int),
		ledger:   make(map[string][]*LedgerEntry),
	}
}

func (r *memRepository) Credit(_ context.Context, userID string, amount int, description string) error {
	if r.balances[userID]+amount < 0 {
		return ErrBalanceFloor
	}
	r.balances[userID] += amount
	r.ledger[userID] = append(r.ledger[userID], &LedgerEntry{
		UserID:      userID,
		Amount:      amount,
		Description: description,
	})
	return nil
}

func (r *memRepository) History(_ context.Context, userID string, _, _ int) ([]*LedgerEntry, int, error) {
	entries := r.ledger[userID]
	return entries, len(entries), nil
}

func (r *memRepository) SumByUser(_ context.Context, userID string) (int, error) {
	sum := 0
	for _, e := range r.ledger[userID] {
		sum += e.Amount
	}
	return sum, nil
}

type stubUsers struct {
	repo *memRepository
}

func (s *stubUsers) GetByID(_ context.Context, id string) (*user.User, error) {
	if id == "missing" {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id, CurrentPoints: s.repo.balances[id]}, nil
}

func newTestService() (Service, *memRepository) {
	repo := newMemRepository()
	return NewService(repo, &stubUsers{repo: repo}), repo
}

func TestChargeAcceptsPresetsOnly(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, amount := range ChargeAmounts {
		require.NoError(t, svc.Charge(ctx, "u1", amount))
	}
	assert.Equal(t, 16000, repo.balances["u1"])

	err := svc.Charge(ctx, "u1", 1234)
	assert.ErrorIs(t, err, ErrChargeAmount)

	err = svc.Charge(ctx, "u1", -1000)
	assert.ErrorIs(t, err, ErrChargeAmount)
}

func TestChargeUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Charge(context.Background(), "missing", 1000)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestAdjust(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	t.Run("grant", func(t *testing.T) {
		require.NoError(t, svc.Adjust(ctx, "u1", 500, "welcome bonus"))
		assert.Equal(t, 500, repo.balances["u1"])
	})

	t.Run("deduction", func(t *testing.T) {
		require.NoError(t, svc.Adjust(ctx, "u1", -200, ""))
		assert.Equal(t, 300, repo.balances["u1"])
	})

	t.Run("zero rejected", func(t *testing.T) {
		err := svc.Adjust(ctx, "u1", 0, "noop")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("cannot push balance negative", func(t *testing.T) {
		err := svc.Adjust(ctx, "u1", -1000, "too much")
		assert.ErrorIs(t, err, ErrBalanceFloor)
		assert.Equal(t, 300, repo.balances["u1"])
	})
}

func TestBalanceMatchesLedger(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Charge(ctx, "u1", 5000))
	require.NoError(t, svc.Adjust(ctx, "u1", -700, "correction"))
	require.NoError(t, svc.Adjust(ctx, "u1", 300, "apology credit"))

	current, sum, err := svc.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 4600, current)
	assert.Equal(t, current, sum)

	entries, total, err := svc.History(ctx, "u1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, entries, 3)
}
