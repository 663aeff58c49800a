package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("652f1c0e9b1e8a0012345678", "admin")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "652f1c0e9b1e8a0012345678", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTRejectsForeignAndExpiredTokens(t *testing.T) {
	token, err := NewJWTManager("other-secret", time.Hour).Generate("u", "patient")
	require.NoError(t, err)
	_, err = NewJWTManager("test-secret", time.Hour).Validate(token)
	assert.Error(t, err)

	expired, err := NewJWTManager("test-secret", -time.Minute).Generate("u", "patient")
	require.NoError(t, err)
	_, err = NewJWTManager("test-secret", time.Hour).Validate(expired)
	assert.Error(t, err)
}

func TestJWTWithoutSecret(t *testing.T) {
	m := NewJWTManager("", time.Hour)
	_, err := m.Generate("u", "patient")
	assert.ErrorIs(t, err, ErrNoSecret)
	_, err = m.Validate("anything")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestPasswordHashRejectsLongPasswords(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", 72))
	assert.NoError(t, err)
}
