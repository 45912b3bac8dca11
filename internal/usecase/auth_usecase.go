package usecase

import (
	"context"

	"giftie/internal/domain/entity"
)

// RegisterInput mirrors the storefront registration form.
type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Phone           string `json:"phone"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries a refresh token to exchange for a new pair.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthOutput returns the session user together with a fresh token pair.
type AuthOutput struct {
	User         entity.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// AuthUsecase covers account registration and session management.
type AuthUsecase interface {
	// Register creates a new account. The email must be unused and the
	// password confirmation must match.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)

	// Profile returns the account of the authenticated user.
	Profile(ctx context.Context, userID string) (*entity.User, error)
}
