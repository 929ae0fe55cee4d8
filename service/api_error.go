package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested node or guild mapping does not exist.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrPoolEmptyCode means that no node could take the guild.
	ErrPoolEmptyCode = "pool_empty"
)

// APIError is an error of the admin API.
type APIError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

func NewAPIError(code string, message string, inner error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// NewInternalServerError keeps an APIError already present in inner's chain.
func NewInternalServerError(message string, inner error) *APIError {
	if apiInner := ToAPIError(inner); apiInner != nil {
		return apiInner
	}
	return NewAPIError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *APIError {
	if apiInner := ToAPIError(inner); apiInner != nil {
		return apiInner
	}
	return NewAPIError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *APIError {
	if apiInner := ToAPIError(inner); apiInner != nil {
		return apiInner
	}
	return NewAPIError(ErrBadParameter, message, inner)
}

// FromPoolError converts a pool error: *PoolEmptyError becomes pool_empty, anything else internal_server_error.
func FromPoolError(message string, err error) *APIError {
	if errors.Is(err, ErrPoolEmpty) || errors.Is(err, ErrPoolClosed) {
		return NewAPIError(ErrPoolEmptyCode, message, err)
	}
	return NewInternalServerError(message, err)
}

func (e APIError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e APIError) Unwrap() error {
	return e.Inner
}

// ToAPIError returns the *APIError in err's chain, or nil.
func ToAPIError(err error) *APIError {
	var e *APIError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsAPIError reports whether err carries an APIError with code.
func IsAPIError(err error, code string) bool {
	if apiErr := ToAPIError(err); apiErr != nil {
		return apiErr.Code == code
	}
	return false
}
