package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager(JWTConfig{Secret: "top-secret", ExpiryHours: 2})

	raw, expiresAt, err := tm.Generate(42, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)

	claims, err := tm.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, 2, claims.TypeUser)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenManager_ParseRejects(t *testing.T) {
	tm := NewTokenManager(JWTConfig{Secret: "top-secret", ExpiryHours: 1})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager(JWTConfig{Secret: "another", ExpiryHours: 1})
		raw, _, err := other.Generate(1, 1)
		require.NoError(t, err)

		_, err = tm.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenManager(JWTConfig{Secret: "top-secret", ExpiryHours: 1})
		past.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
		raw, _, err := past.Generate(1, 1)
		require.NoError(t, err)

		_, err = tm.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
