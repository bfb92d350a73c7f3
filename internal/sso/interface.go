package sso

import (
	"context"
	"time"

	"github.com/BerryBytes/ssoctl/models"
)

type OIDCClient interface {
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (*models.ClientRegistration, error)
	Authorize(req models.AuthorizeRequest) (string, error)
	CreateToken(ctx context.Context, req models.CreateTokenRequest) (*models.SSOToken, error)
}

// TokenCache returns nil, nil from Load when nothing is cached for the key.
type TokenCache interface {
	Load(ctx context.Context, key string) (*models.CachedToken, error)
	Save(ctx context.Context, key string, record *models.CachedToken) error
	Clear(ctx context.Context, key string, reason string) error
}

// RegistrationCache returns nil, nil from Load when nothing is cached for the key.
type RegistrationCache interface {
	Load(ctx context.Context, key models.RegistrationKey) (*models.ClientRegistration, error)
	Save(ctx context.Context, key models.RegistrationKey, registration *models.ClientRegistration) error
	Clear(ctx context.Context, key models.RegistrationKey, reason string) error
}

// BrowserOpener opens a URL in the user's browser. It returns false when the
// user declined.
type BrowserOpener interface {
	OpenExternal(ctx context.Context, url string) (bool, error)
}

type SessionStore interface {
	SessionStart(key string) (time.Time, bool)
	SetSessionStart(key string, start time.Time) error
}

type TelemetryRecorder interface {
	RecordRefresh(ctx context.Context, event models.RefreshEvent)
}

type RedirectServer interface {
	Start() error
	RedirectURI() (string, error)
	WaitForAuthorization(ctx context.Context) (string, error)
	Close() error
}

// RedirectServerFactory builds a redirect server expecting the given state.
type RedirectServerFactory func(state string) RedirectServer

type TokenProvider interface {
	GetToken(ctx context.Context) (*models.SSOToken, error)
	CreateToken(ctx context.Context) (*models.SSOToken, error)
	Invalidate(ctx context.Context) error
	InvalidateToken(ctx context.Context) error
}
