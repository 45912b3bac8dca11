package impl

import (
	"context"
	"time"

	"giftie/internal/domain/entity"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/service"
	"giftie/internal/errors"
	"giftie/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type authService struct {
	userRepo repository.UserRepository
	tokens   service.TokenService
	hasher   service.PasswordHasher
	validate *validator.Validate
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo repository.UserRepository,
	tokens service.TokenService,
	hasher service.PasswordHasher,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		validate: validator.New(),
	}
}

// Register creates a new account and signs it in.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return s.issueTokens(user)
}

// Login verifies credentials and issues a token pair. An unknown email and
// a wrong password produce the same error so accounts cannot be enumerated.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !s.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new pair. Refresh tokens are
// stateless, so a token stays usable until it expires even after newer pairs
// have been issued.
func (s *authService) Refresh(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	token, err := s.tokens.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	userID, err := token.Claims.GetSubject()
	if err != nil || userID == "" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return s.issueTokens(user)
}

// Profile returns the sanitized account of the authenticated user.
func (s *authService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	sanitized := user.Sanitized()

	return &sanitized, nil
}

func (s *authService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	access, refresh, err := s.tokens.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		User:         user.Sanitized(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
