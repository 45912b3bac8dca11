package repository

import (
	"context"

	"giftie/internal/domain/entity"
	"giftie/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository persists customer accounts.
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailTaken when the email is
	// already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id. Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a user by email (exact match).
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Seed inserts the given users if no users are stored yet. Used to load
	// the demo accounts on first start; a populated store is left untouched.
	Seed(ctx context.Context, users []*entity.User) error
}
