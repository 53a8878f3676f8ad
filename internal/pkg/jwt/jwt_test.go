package jwt

import (
	"testing"

	"github.com/krontech/worklog-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	token, expiresAt, err := svc.GenerateRefreshToken("emp-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	employeeID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-123", employeeID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	token, _, err := svc.GenerateAccessToken("emp-123", "ana@example.com", employee.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestParseRefreshTokenRejectsWrongKey(t *testing.T) {
	minter := NewJWTService("key-one", "15m", "168h")
	verifier := NewJWTService("key-two", "15m", "168h")

	token, _, err := minter.GenerateRefreshToken("emp-123")
	require.NoError(t, err)

	_, err = verifier.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	token, expiresAt, err := svc.GenerateRefreshToken("emp-123")
	require.NoError(t, err)

	cookie := svc.RefreshTokenCookie(token, expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, token, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
}
