package notification

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	notifications []*Notification
}

func (r *memRepository) ListLatest(_ context.Context, limit int) ([]*Notification, error) {
	n := len(r.notifications)
	if limit < n {
		n = limit
	}
	// Stored oldest first; serve newest first.
	result := make([]*Notification, 0, n)
	for i := len(r.notifications) - 1; i >= len(r.notifications)-n; i-- {
		cp := *r.notifications[i]
		result = append(result, &cp)
	}
	return result, nil
}

func (r *memRepository) Delete(_ context.Context, id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seedRepository(count int) *memRepository {
	repo := &memRepository{}
	for i := 1; i <= count; i++ {
		repo.notifications = append(repo.notifications, &Notification{
			ID:      strconv.Itoa(i),
			Message: "cancellation " + strconv.Itoa(i),
		})
	}
	return repo
}

func TestListLatestDefaultsToFive(t *testing.T) {
	svc := NewService(seedRepository(8))

	got, err := svc.ListLatest(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, DefaultLimit)

	// Newest first.
	assert.Equal(t, "8", got[0].ID)
	assert.Equal(t, "4", got[len(got)-1].ID)
}

func TestDeleteRemovesEntry(t *testing.T) {
	repo := seedRepository(2)
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "1"))
	assert.Len(t, repo.notifications, 1)

	err := svc.Delete(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)
}
