package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/types"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret-at-least-32-chars-long!", ExpirationHours: 1})
}

func TestJWT_IssueAndValidate(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.IssueToken(userID, types.RoleCandidate)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, types.RoleCandidate, identity.Role)
}

func TestJWT_RecruiterRoleRoundTrips(t *testing.T) {
	svc := testJWTService()

	token, err := svc.IssueToken(uuid.New(), types.RoleRecruiter)
	require.NoError(t, err)

	identity, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, types.RoleRecruiter, identity.Role)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	svc := testJWTService()
	token, err := svc.IssueToken(uuid.New(), types.RoleCandidate)
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "a-different-secret-32-chars-long!!!", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_GarbageTokenRejected(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWT_ExpiredTokenRejected(t *testing.T) {
	// negative expiration issues an already-expired token
	svc := NewJWTService(&config.JWTConfig{Secret: "test-secret-at-least-32-chars-long!", ExpirationHours: -1})

	token, err := svc.IssueToken(uuid.New(), types.RoleCandidate)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
