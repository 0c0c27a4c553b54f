package user

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	byID    map[string]*User
	byEmail map[string]*User
	nextID  int
}

func newMemRepository() *memRepository {
	return &memRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (r *memRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepository) Create(_ context.Context, u *User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return ErrEmailAlreadyUsed
	}
	r.nextID++
	u.ID = strconv.Itoa(r.nextID)
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memRepository) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var result []*User
	for _, u := range r.byID {
		cp := *u
		result = append(result, &cp)
	}
	return result, len(result), nil
}

func (r *memRepository) UpdateDisplayName(_ context.Context, id string, displayName *string) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.DisplayName = displayName
	return nil
}

func (r *memRepository) UpdateAdminNotes(_ context.Context, id string, notes *string) error {
	u, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	u.AdminNotes = notes
	return nil
}

// plainHasher keeps passwords readable in test assertions.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (plainHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return ErrInvalidCredentials
	}
	return nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newMemRepository(), plainHasher{})
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		u, err := svc.Register(ctx, "  Alice@Example.COM ", "secretpass", "Alice")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
		require.NotNil(t, u.DisplayName)
		assert.Equal(t, "Alice", *u.DisplayName)
		assert.Equal(t, "hashed:secretpass", u.PasswordHash)
		assert.Equal(t, 0, u.CurrentPoints)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice@example.com", "anotherpass", "")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob@example.com", "short", "")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := svc.Register(ctx, "   ", "secretpass", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}

func TestLogin(t *testing.T) {
	svc := NewService(newMemRepository(), plainHasher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "secretpass", "Alice")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		u, err := svc.Login(ctx, "Alice@Example.com", "secretpass")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secretpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateDisplayName(t *testing.T) {
	svc := NewService(newMemRepository(), plainHasher{})
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice@example.com", "secretpass", "Alice")
	require.NoError(t, err)

	updated, err := svc.UpdateDisplayName(ctx, u.ID, "Alicia")
	require.NoError(t, err)
	require.NotNil(t, updated.DisplayName)
	assert.Equal(t, "Alicia", *updated.DisplayName)

	// Blank clears the name.
	updated, err = svc.UpdateDisplayName(ctx, u.ID, "   ")
	require.NoError(t, err)
	assert.Nil(t, updated.DisplayName)
}
