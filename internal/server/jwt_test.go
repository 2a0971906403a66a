package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind/jobseeker-engine/internal/config"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	s := testJWTService()
	userID := uuid.New()

	token, err := s.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWT_RejectsEmptyToken(t *testing.T) {
	_, err := testJWTService().ValidateToken("")
	assert.Error(t, err)
}

func TestJWT_RejectsTamperedToken(t *testing.T) {
	s := testJWTService()
	token, err := s.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = s.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWT_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService().GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "other-secret", ExpirationHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_AsTokenValidator(t *testing.T) {
	s := testJWTService()
	userID := uuid.New()

	token, err := s.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := s.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
