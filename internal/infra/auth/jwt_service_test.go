package auth

import (
	"testing"

	"fleetops/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	operatorID := uuid.New()

	token, err := svc.GenerateAccessToken(operatorID, "ops@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, operatorID, claims.OperatorID)
	assert.Equal(t, "ops@example.com", claims.Email)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateAccessToken(uuid.New(), "ops@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
