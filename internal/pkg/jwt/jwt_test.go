package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpayroll/attendance-backend-go/internal/domain/identity"
)

func TestAccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("emp-1", identity.RoleHR)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	employeeID, ok := token.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, "emp-1", employeeID)

	role, ok := token.Get("role")
	require.True(t, ok)
	assert.Equal(t, "HR", role)

	tokenType, ok := token.Get("type")
	require.True(t, ok)
	assert.Equal(t, "access", tokenType)
}

func TestStreamTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	tokenString, expiresIn, err := svc.GenerateStreamToken("emp-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	employeeID, err := svc.ValidateStreamToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestValidateStreamTokenRejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	accessToken, _, err := svc.GenerateAccessToken("emp-1", identity.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateStreamToken(accessToken)
	assert.Error(t, err)
}

func TestValidateStreamTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h")
	verifier := NewJWTService("secret-b", "1h")

	tokenString, _, err := issuer.GenerateStreamToken("emp-1")
	require.NoError(t, err)

	_, err = verifier.ValidateStreamToken(tokenString)
	assert.Error(t, err)
}
