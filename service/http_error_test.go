package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusServiceUnavailable, m[ErrPoolEmptyCode])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}

func handleError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, ErrResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger()).Handler(err, e.NewContext(req, rec))

	var body ErrResponse
	if method != http.MethodHead {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.NotNil(t, body.Error)
	}
	return rec, body
}

func TestHTTPErrorHandler_Handler(t *testing.T) {
	t.Run("api_error_mapped_status", func(t *testing.T) {
		rec, body := handleError(t, http.MethodGet, NewBadParameterError("invalid guild id", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrBadParameter, body.Error.Code)
		assert.Equal(t, "invalid guild id", body.Error.Message)
	})
	t.Run("pool_empty", func(t *testing.T) {
		rec, body := handleError(t, http.MethodPost, FromPoolError("no node available", &PoolEmptyError{GuildID: 42}))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, ErrPoolEmptyCode, body.Error.Code)
	})
	t.Run("plain_error_500", func(t *testing.T) {
		rec, body := handleError(t, http.MethodGet, assert.AnError)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, ErrInternalServerError, body.Error.Code)
	})
	t.Run("echo_not_found", func(t *testing.T) {
		rec, body := handleError(t, http.MethodGet, echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, ErrEntityNotFound, body.Error.Code)
	})
	t.Run("request_validation_error", func(t *testing.T) {
		he := echo.NewHTTPError(http.StatusBadRequest, "request has an error")
		he.Internal = &openapi3filter.RequestError{Err: assert.AnError}
		rec, body := handleError(t, http.MethodPost, he)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrBadParameter, body.Error.Code)
		assert.Equal(t, "request has an error", body.Error.Message)
	})
	t.Run("head_has_no_body", func(t *testing.T) {
		rec, _ := handleError(t, http.MethodHead, echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
