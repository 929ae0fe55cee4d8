package service

import (
	"errors"
	"fmt"

	"myandesite/domain"
)

var (
	// ErrAlreadyConnected is returned by Connect when the session already has an open connection.
	ErrAlreadyConnected = errors.New("already connected")
	// ErrSessionClosed is returned by Connect and Send once the session is closed (explicitly or after exhausting its connect attempts).
	ErrSessionClosed = errors.New("session is closed")
	// ErrUserIDRequired is returned by Connect when no user id has been set.
	ErrUserIDRequired = errors.New("user id is required to connect")
	// ErrClientAlreadyInPool is returned by Pool.AddClient for a member client.
	ErrClientAlreadyInPool = errors.New("client is already in the pool")
	// ErrClientNotInPool is returned by Pool.RemoveClient and Pool.PullClient for a client that is not a member.
	ErrClientNotInPool = errors.New("client is not in the pool")
	// ErrPoolClosed is returned by pool operations after Close.
	ErrPoolClosed = errors.New("pool is closed")
	// ErrPoolEmpty is matched by *PoolEmptyError via errors.Is.
	ErrPoolEmpty = errors.New("pool is empty")
	// ErrMissingOperation means an inbound message had no "op" field.
	ErrMissingOperation = errors.New("message has no op")
	// ErrMissingEventType means an inbound "event" message had no "type" field.
	ErrMissingEventType = errors.New("event has no type")
)

// ConnectionError is returned when a session gave up connecting. The session is closed afterwards.
type ConnectionError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("couldn't connect to %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// PoolEmptyError is returned when no member client could be assigned to a guild.
type PoolEmptyError struct {
	GuildID domain.GuildID
}

func (e *PoolEmptyError) Error() string {
	return fmt.Sprintf("no client available for guild %s: %v", e.GuildID, ErrPoolEmpty)
}

func (e *PoolEmptyError) Is(target error) bool { return target == ErrPoolEmpty }

// AndesiteError is a non-2xx REST response. Code and Message come from the {code, message} body.
type AndesiteError struct {
	Status  int
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AndesiteError) Error() string {
	return fmt.Sprintf("andesite error %d (http %d): %s", e.Code, e.Status, e.Message)
}

// ToAndesiteError returns the *AndesiteError in err's chain, or nil.
func ToAndesiteError(err error) *AndesiteError {
	var e *AndesiteError
	if errors.As(err, &e) {
		return e
	}
	return nil
}
