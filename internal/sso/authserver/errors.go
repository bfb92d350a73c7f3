package authserver

import (
	"errors"
	"fmt"
)

var (
	ErrMissingPort    = errors.New("redirect server is listening but its port could not be determined")
	ErrMissingCode    = errors.New("authorization redirect is missing the code parameter")
	ErrMissingState   = errors.New("authorization redirect is missing the state parameter")
	ErrInvalidState   = errors.New("authorization redirect state does not match the expected state")
	ErrNotStarted     = errors.New("redirect server has not been started")
	ErrAlreadyStarted = errors.New("redirect server has already been started")
	ErrClosed         = errors.New("redirect server is already closed")
	ErrServerClosed   = errors.New("redirect server closed before authorization completed")
)

// AuthError is an error reported by the identity provider through the
// redirect's error and error_description parameters.
type AuthError struct {
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// ServerError wraps a failure of the underlying listener.
type ServerError struct {
	Op  string
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("failed to %s redirect server: %v", e.Op, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}
