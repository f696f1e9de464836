package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret-password", bcrypt.MinCost)
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, CheckPassword(hash, "secret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("", "secret-password"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("secret-password", bcrypt.MinCost)
	assert.NoError(t, err)
	second, err := HashPassword("secret-password", bcrypt.MinCost)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewResetToken(t *testing.T) {
	first, err := NewResetToken()
	assert.NoError(t, err)
	assert.Len(t, first.Token, 64)

	second, err := NewResetToken()
	assert.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
}
