package impl

import (
	"context"
	"log/slog"
	"strings"

	"fleetops/config"
	domainerrors "fleetops/internal/domain/errors"
	"fleetops/internal/domain/service"
	"fleetops/internal/usecase"

	"github.com/google/uuid"
)

type operatorService struct {
	operators []config.OperatorConfig
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewOperatorService creates the operator login use case. Operators come
// from configuration; there is no self-service signup for the dashboard.
func NewOperatorService(
	cfg *config.Config,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.OperatorUsecase {
	return &operatorService{
		operators: cfg.Operators,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are deliberately indistinguishable to the caller.
func (s *operatorService) Login(_ context.Context, email, password string) (*usecase.LoginResult, error) {
	operator, ok := s.findOperator(email)
	if !ok || !s.hasher.Check(password, operator.PasswordHash) {
		s.logger.Warn("login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	operatorID := resolveOperatorID(operator)
	token, err := s.tokens.GenerateAccessToken(operatorID, operator.Email)
	if err != nil {
		s.logger.Error("failed to issue access token",
			slog.String("email", operator.Email),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrTokenGeneration.WithDetails(err.Error())
	}

	return &usecase.LoginResult{AccessToken: token, Email: operator.Email}, nil
}

func (s *operatorService) findOperator(email string) (config.OperatorConfig, bool) {
	for _, op := range s.operators {
		if strings.EqualFold(op.Email, email) {
			return op, true
		}
	}

	return config.OperatorConfig{}, false
}

// resolveOperatorID parses the configured id, falling back to a stable
// uuid derived from the email when the id is missing or malformed.
func resolveOperatorID(operator config.OperatorConfig) uuid.UUID {
	if id, err := uuid.Parse(operator.ID); err == nil {
		return id
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.ToLower(operator.Email)))
}
