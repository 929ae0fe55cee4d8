package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs HTTPErrorHandler as the echo error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	return map[string]int{
		ErrBadParameter:        http.StatusBadRequest,
		ErrEntityNotFound:      http.StatusNotFound,
		ErrPoolEmptyCode:       http.StatusServiceUnavailable,
		ErrInternalServerError: http.StatusInternalServerError,
	}
}

// HTTPErrorHandler renders errors returned by handlers as ErrResponse.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       log.With(logger, "component", "http_error_handler"),
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	if status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler handles error returned by echo Handlers. Echo errors keep their status; request validation
// failures (openapi3filter.RequestError) are reported as bad_parameter.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	apiErr := ToAPIError(err)
	if apiErr == nil {
		apiErr = NewAPIError(ErrInternalServerError, "an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code := ErrInternalServerError
		switch {
		case he.Code == http.StatusNotFound:
			code = ErrEntityNotFound
		case he.Code < http.StatusInternalServerError:
			code = ErrBadParameter
		}
		if he.Internal != nil {
			if inner, ok := he.Internal.(*echo.HTTPError); ok {
				he = inner
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				code = ErrBadParameter
			}
		}
		m, _ := he.Message.(string)
		apiErr = NewAPIError(code, m, err)
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(apiErr.Code)
	}

	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"status", statusCode,
		"err", err,
	)

	if c.Request().Method == http.MethodHead && he != nil {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(statusCode, ErrResponse{Error: apiErr})
}

// ErrResponse from server.
type ErrResponse struct {
	Error *APIError `json:"error,omitempty"`
}
