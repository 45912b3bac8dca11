package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"giftie/internal/delivery/http/response"
	domainerrors "giftie/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordError(t *testing.T, err error) (int, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestErrorMiddleware_DomainError(t *testing.T) {
	code, body := recordError(t, domainerrors.ErrOrderNotCancellable.WithDetails("delivered"))

	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ORDER_NOT_CANCELLABLE", body.Error.Code)
	assert.Equal(t, "delivered", body.Error.Details)
}

func TestErrorMiddleware_WrappedDomainError(t *testing.T) {
	code, body := recordError(t, errors.Wrap(domainerrors.ErrCartEmpty, "checkout failed"))

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CART_EMPTY", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	code, body := recordError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))

	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "route not found", body.Message)
}

func TestErrorMiddleware_UnknownErrorFallsBackToInternal(t *testing.T) {
	code, body := recordError(t, errors.New("boom"))

	assert.Equal(t, domainerrors.ErrInternalError.HTTPCode(), code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), body.Error.Code)
}
