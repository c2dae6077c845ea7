package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condogate/internal/domain"
	dErrors "condogate/pkg/domain-errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-signing-key", "condogate")

	token, err := svc.GenerateAccessToken("user-1", "session-1", domain.RoleGatekeeper, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, string(domain.RoleGatekeeper), claims.Role)
	assert.Equal(t, "condogate", claims.Issuer)
}

func TestValidateTokenRejections(t *testing.T) {
	svc := NewJWTService("test-signing-key", "condogate")

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("user-1", "session-1", domain.RoleGatekeeper, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := NewJWTService("other-key", "condogate")
		token, err := other.GenerateAccessToken("user-1", "session-1", domain.RoleGatekeeper, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorized))
	})
}
