package auth

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", TokenTTL)
	userID := uuid.Must(uuid.NewV4())

	token, err := issuer.Issue(userID, "ada@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
}

func TestVerify_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue(uuid.Must(uuid.NewV4()), "ada@example.com")
	assert.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", TokenTTL)
	other := NewTokenIssuer("other-secret", TokenTTL)

	token, err := issuer.Issue(uuid.Must(uuid.NewV4()), "ada@example.com")
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", TokenTTL)

	_, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
