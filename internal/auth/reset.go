package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// ResetToken is a single-use password reset token. No endpoint consumes it
// yet; the reset flow stops at generation.
type ResetToken struct {
	Token     string
	ExpiresAt time.Time
}

// NewResetToken generates a random reset token valid for ResetTokenTTL.
func NewResetToken() (ResetToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return ResetToken{}, err
	}
	return ResetToken{
		Token:     hex.EncodeToString(buf),
		ExpiresAt: time.Now().Add(ResetTokenTTL),
	}, nil
}
