package psswd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	hasher := New(bcrypt.MinCost)

	hash, err := hasher.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, hasher.ComparePassword("s3cret-pass", hash))
	assert.False(t, hasher.ComparePassword("wrong-pass", hash))
	assert.False(t, hasher.ComparePassword("s3cret-pass", "not a bcrypt hash"))
}

func TestBcryptTooLong(t *testing.T) {
	_, err := New(bcrypt.MinCost).HashPassword(strings.Repeat("a", 73))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewCostBounds(t *testing.T) {
	assert.Equal(t, DefaultCost, New(0).cost)
	assert.Equal(t, DefaultCost, New(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, New(bcrypt.MinCost).cost)
}
