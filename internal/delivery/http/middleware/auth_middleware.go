package middleware

import (
	"strings"

	"giftie/internal/delivery/http/response"
	"giftie/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which the authenticated
// user's id is stored.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the user id on the
// context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, errMsg := m.resolveUserID(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHORIZED", errMsg)
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the user id when a valid token is present
// and otherwise lets the request through anonymously. Cart routes use this
// so guests can shop before signing in.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "" {
			if userID, errMsg := m.resolveUserID(c); errMsg == "" {
				c.Set(ContextKeyUserID, userID)
			}
		}

		return next(c)
	}
}

// resolveUserID extracts and validates the bearer token, returning the
// subject user id or a human-readable rejection reason.
func (m *AuthMiddleware) resolveUserID(c echo.Context) (string, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", "Authorization header is missing"
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", "Invalid token format, must be Bearer token"
	}

	token, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil || !token.Valid {
		return "", "Invalid or expired token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "Failed to parse token claims"
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", "User ID missing from token"
	}

	return userID, ""
}
