package jwt

import (
	"context"
	"testing"

	"github.com/blubridge/hrms-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	employeeID := "emp-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", "admin", &employeeID, user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, string(user.RoleAdmin), claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenNilEmployee(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	token, _, err := svc.GenerateAccessToken("user-1", "admin", nil, user.RoleAdmin)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateAccessTokenInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "soon")

	_, _, err := svc.GenerateAccessToken("user-1", "admin", nil, user.RoleAdmin)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	token, _, err := svc.GenerateAccessToken("user-1", "admin", nil, user.RoleAdmin)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}
