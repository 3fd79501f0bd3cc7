package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fleetops/config"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/infra/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperatorFixture(t *testing.T) (*operatorService, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hasher := auth.NewBcryptHasher()

	hash, err := hasher.Hash("fleet-pass-1")
	require.NoError(t, err)

	cfg := &config.Config{
		Operators: []config.OperatorConfig{
			{ID: "5f6c2f5b-3b43-4df0-9a61-2f3f7a3f9a10", Email: "dispatch@example.com", PasswordHash: hash},
		},
	}
	cfg.SecretKey.Access = "test-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc, ok := NewOperatorService(cfg, hasher, tokens, logger).(*operatorService)
	require.True(t, ok)

	return svc, "fleet-pass-1"
}

func TestOperatorLoginIssuesToken(t *testing.T) {
	t.Parallel()

	svc, password := newOperatorFixture(t)

	result, err := svc.Login(context.Background(), "dispatch@example.com", password)
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "dispatch@example.com", result.Email)
}

func TestOperatorLoginEmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc, password := newOperatorFixture(t)

	result, err := svc.Login(context.Background(), "Dispatch@Example.COM", password)
	require.NoError(t, err)
	assert.Equal(t, "dispatch@example.com", result.Email)
}

func TestOperatorLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc, password := newOperatorFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "dispatch@example.com", "wrong-pass")
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", password)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
