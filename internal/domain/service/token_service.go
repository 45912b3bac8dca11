// Package service defines interfaces for domain-level capabilities provided
// by the infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates the JWT pair used for API sessions.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its parsed form.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)

	// ValidateRefreshToken checks a refresh token and returns its parsed form.
	ValidateRefreshToken(tokenString string) (*jwt.Token, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
