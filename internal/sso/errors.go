package sso

import (
	"errors"
	"fmt"

	"github.com/BerryBytes/ssoctl/internal/sso/authserver"
	"github.com/BerryBytes/ssoctl/internal/sso/oidc"
)

const CancelReasonUser = "user"

// CancellationError is returned when the user stops the flow, for example by
// declining to open the browser.
type CancellationError struct {
	Reason string
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("authorization cancelled (reason: %s)", e.Reason)
}

// ErrorKind is the closed set of failures the token provider surfaces.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMissingPort
	KindServer
	KindMissingCode
	KindMissingState
	KindInvalidState
	KindAuth
	KindCancelled
	KindNetwork
	KindClientFault
)

var kindNames = map[ErrorKind]string{
	KindUnknown:      "Unknown",
	KindMissingPort:  "MissingPort",
	KindServer:       "Server",
	KindMissingCode:  "MissingCode",
	KindMissingState: "MissingState",
	KindInvalidState: "InvalidState",
	KindAuth:         "AuthError",
	KindCancelled:    "Cancelled",
	KindNetwork:      "Network",
	KindClientFault:  "ClientFault",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Classify maps an error returned by the provider onto its kind.
func Classify(err error) ErrorKind {
	var authErr *authserver.AuthError
	var serverErr *authserver.ServerError
	var cancelErr *CancellationError

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &cancelErr):
		return KindCancelled
	case errors.Is(err, authserver.ErrMissingPort):
		return KindMissingPort
	case errors.Is(err, authserver.ErrMissingCode):
		return KindMissingCode
	case errors.Is(err, authserver.ErrMissingState):
		return KindMissingState
	case errors.Is(err, authserver.ErrInvalidState):
		return KindInvalidState
	case errors.As(err, &authErr):
		return KindAuth
	case errors.Is(err, authserver.ErrNotStarted),
		errors.Is(err, authserver.ErrAlreadyStarted),
		errors.Is(err, authserver.ErrClosed),
		errors.Is(err, authserver.ErrServerClosed),
		errors.As(err, &serverErr):
		return KindServer
	case oidc.IsClientFault(err):
		return KindClientFault
	case oidc.IsNetworkError(err):
		return KindNetwork
	}
	return KindUnknown
}

// IsCancellation reports whether err is a user cancellation.
func IsCancellation(err error) bool {
	return Classify(err) == KindCancelled
}
