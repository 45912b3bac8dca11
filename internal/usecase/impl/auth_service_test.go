package impl

import (
	"context"
	"testing"

	"giftie/config"
	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/domain/repository"
	"giftie/internal/domain/service"
	"giftie/internal/infra/auth"
	"giftie/internal/infra/persistence/kv"
	"giftie/internal/infra/persistence/memory"
	"giftie/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authEnv struct {
	auth     usecase.AuthUsecase
	userRepo repository.UserRepository
	tokens   service.TokenService
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // keep the tests fast
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	env := &authEnv{
		userRepo: kv.NewUserRepository(memory.New()),
		tokens:   tokens,
	}
	env.auth = NewAuthService(env.userRepo, tokens, auth.NewBcryptHasher(cfg))

	return env
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Name:            "Nguyễn Văn A",
		Email:           "a@example.com",
		Password:        "matkhau123",
		ConfirmPassword: "matkhau123",
		Phone:           "0987654321",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	env := newAuthEnv(t)

	output, err := env.auth.Register(context.Background(), registerInput())

	require.NoError(t, err)
	assert.NotEmpty(t, output.User.ID)
	assert.Equal(t, "a@example.com", output.User.Email)
	assert.Empty(t, output.User.PasswordHash)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)

	// The issued access token belongs to the new account.
	token, err := env.tokens.ValidateAccessToken(output.AccessToken)
	require.NoError(t, err)
	subject, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, subject)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Email = "A@Example.com" // email uniqueness is case-insensitive

	_, err = env.auth.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	env := newAuthEnv(t)

	input := registerInput()
	input.ConfirmPassword = "khac-mat-khau"

	_, err := env.auth.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	env := newAuthEnv(t)

	input := registerInput()
	input.Email = "not-an-email"

	_, err := env.auth.Register(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	output, err := env.auth.Login(ctx, &usecase.LoginInput{
		Email:    "a@example.com",
		Password: "matkhau123",
	})

	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, output.User.ID)
	assert.Empty(t, output.User.PasswordHash)
	assert.NotEmpty(t, output.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	_, err := env.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = env.auth.Login(ctx, &usecase.LoginInput{
		Email:    "a@example.com",
		Password: "sai-mat-khau",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.auth.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "matkhau123",
	})

	// Unknown email and wrong password are indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	output, err := env.auth.Refresh(ctx, &usecase.RefreshTokenInput{
		RefreshToken: registered.RefreshToken,
	})

	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, output.User.ID)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = env.auth.Refresh(ctx, &usecase.RefreshTokenInput{
		RefreshToken: registered.AccessToken,
	})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_GarbageToken(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.auth.Refresh(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "not.a.token",
	})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Profile(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	registered, err := env.auth.Register(ctx, registerInput())
	require.NoError(t, err)

	user, err := env.auth.Profile(ctx, registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	_, err = env.auth.Profile(ctx, "unknown-id")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
