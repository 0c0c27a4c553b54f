package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptRoundTrip(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(bcrypt.MinCost)

	hash, err := h.Hash("secretpass")
	require.NoError(t, err)
	require.NotEqual(t, "secretpass", hash)

	assert.NoError(t, h.Compare(hash, "secretpass"))
	assert.Error(t, h.Compare(hash, "wrongpass"))
}

func TestBcryptCostOutOfRangeFallsBack(t *testing.T) {
	h := NewBcryptPasswordHasherWithCost(bcrypt.MaxCost + 10)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcryptPasswordHasherWithCost(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
