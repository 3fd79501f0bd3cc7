package usecase

import "context"

// LoginResult carries the issued access token for a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}

// OperatorUsecase defines the interface for operator authentication.
type OperatorUsecase interface {
	// Login verifies the credentials against the configured operators and
	// issues an access token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
