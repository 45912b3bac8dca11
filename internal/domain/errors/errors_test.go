package errors_test

import (
	"net/http"
	"testing"

	domainerrors "giftie/internal/domain/errors"
	"giftie/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetails_MatchesSentinel(t *testing.T) {
	t.Parallel()

	err := domainerrors.ErrOrderNotCancellable.WithDetails("delivered")

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	assert.Equal(t, "delivered", err.Details())
	assert.Empty(t, domainerrors.ErrOrderNotCancellable.Details())
}

func TestBaseError_WithDetails_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(
		domainerrors.ErrValidationFailed.WithDetails("Email"),
		"register failed",
	)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBaseError_Is_DifferentCodeDoesNotMatch(t *testing.T) {
	t.Parallel()

	err := domainerrors.ErrShippingInfoIncomplete.WithDetails("Phone")

	assert.NotErrorIs(t, err, domainerrors.ErrCardInfoIncomplete)
	assert.NotErrorIs(t, err, errors.New("some other error"))
}

func TestNewBaseError_AppErrorContract(t *testing.T) {
	t.Parallel()

	err := domainerrors.NewBaseError(
		http.StatusTeapot,
		"TEST_CODE",
		"test message",
		"test details",
	)

	assert.Equal(t, http.StatusTeapot, err.HTTPCode())
	assert.Equal(t, "TEST_CODE", err.ErrorCode())
	assert.Equal(t, "test message", err.Message())
	assert.Equal(t, "test details", err.Details())
	assert.Equal(t, "test message", err.Error())
}
