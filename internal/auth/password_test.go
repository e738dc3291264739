package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "secret123")

	ok, err := CheckPassword("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	// A wrong password is not an error, just a mismatch.
	ok, err := CheckPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPassword_CorruptHash(t *testing.T) {
	ok, err := CheckPassword("secret123", "not-a-bcrypt-hash")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
