package sso

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BerryBytes/ssoctl/internal/sso/authserver"
	"github.com/BerryBytes/ssoctl/internal/sso/oidc"
	"github.com/BerryBytes/ssoctl/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const (
	ClientName = "ssoctl"
	ClientType = "public"

	// RegistrationRedirectURI is registered with the provider. Loopback
	// redirects may use any port, so the listener's actual port is not part
	// of the registration.
	RegistrationRedirectURI = "http://127.0.0.1/"
)

// Dependencies are the collaborators of an AccessTokenProvider. Sessions and
// Telemetry are optional.
type Dependencies struct {
	OIDC          OIDCClient
	Tokens        TokenCache
	Registrations RegistrationCache
	Browser       BrowserOpener
	Sessions      SessionStore
	Telemetry     TelemetryRecorder
	NewServer     RedirectServerFactory
	Logger        *zap.SugaredLogger
	Now           func() time.Time
}

// NewServerFactory returns a factory for loopback redirect servers bound to port.
func NewServerFactory(port int, logger *zap.SugaredLogger) RedirectServerFactory {
	return func(state string) RedirectServer {
		return authserver.New(state, authserver.WithPort(port), authserver.WithLogger(logger))
	}
}

// AccessTokenProvider hands out bearer tokens for a single profile. It hides
// client registration, the browser authorization flow and token refresh.
type AccessTokenProvider struct {
	profile models.SSOProfile
	deps    Dependencies
	logger  *zap.SugaredLogger
}

func NewAccessTokenProvider(profile models.SSOProfile, deps Dependencies) *AccessTokenProvider {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop().Sugar()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewServer == nil {
		deps.NewServer = NewServerFactory(0, deps.Logger)
	}
	return &AccessTokenProvider{
		profile: profile,
		deps:    deps,
		logger:  deps.Logger.With("profile", profile.Name, "startUrl", profile.StartURL),
	}
}

func (p *AccessTokenProvider) Profile() models.SSOProfile {
	return p.profile
}

// GetToken returns a usable token from the cache, refreshing it when
// possible. It returns nil, nil when the caller has to run CreateToken.
func (p *AccessTokenProvider) GetToken(ctx context.Context) (*models.SSOToken, error) {
	key := p.profile.TokenKey()

	cached, err := p.deps.Tokens.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached token: %w", err)
	}
	if cached == nil || cached.Token == nil {
		p.logger.Debug("no cached token")
		return nil, nil
	}

	now := p.deps.Now()
	if !IsExpiredAt(cached.Token, now) {
		return withIdentity(cached.Token, key), nil
	}

	registration := cached.Registration
	if cached.Token.RefreshToken != "" && !IsExpiredAt(registration, now) && !IsDeprecatedAuth(registration) {
		p.logger.Debug("cached token expired, refreshing")
		return p.refreshToken(ctx, cached.Token, registration)
	}

	p.logger.Debug("cached token expired and cannot be refreshed")
	if err := p.Invalidate(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// CreateToken always runs the interactive browser flow and caches the result.
func (p *AccessTokenProvider) CreateToken(ctx context.Context) (*models.SSOToken, error) {
	token, registration, err := p.runFlow(ctx)
	if err != nil {
		if IsCancellation(err) {
			p.logger.Info("authorization cancelled by user")
		}
		return nil, err
	}

	key := p.profile.TokenKey()
	if err := p.saveToken(ctx, token, registration); err != nil {
		return nil, err
	}

	if p.deps.Sessions != nil {
		if err := p.deps.Sessions.SetSessionStart(key, p.deps.Now()); err != nil {
			p.logger.Warnf("failed to record session start: %v", err)
		}
	}

	return withIdentity(token, key), nil
}

// Invalidate clears the cached token and registration. Both clears run
// concurrently and both are awaited even if one fails.
func (p *AccessTokenProvider) Invalidate(ctx context.Context) error {
	var (
		g        errgroup.Group
		tokenErr error
		regErr   error
	)

	g.Go(func() error {
		if err := p.deps.Tokens.Clear(ctx, p.profile.TokenKey(), "invalidated"); err != nil {
			tokenErr = fmt.Errorf("failed to clear cached token: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := p.deps.Registrations.Clear(ctx, p.profile.RegistrationKey(), "invalidated"); err != nil {
			regErr = fmt.Errorf("failed to clear cached registration: %w", err)
		}
		return nil
	})
	_ = g.Wait()

	return errors.Join(tokenErr, regErr)
}

// InvalidateToken clears the cached token and keeps the client registration.
func (p *AccessTokenProvider) InvalidateToken(ctx context.Context) error {
	if err := p.deps.Tokens.Clear(ctx, p.profile.TokenKey(), "invalidated"); err != nil {
		return fmt.Errorf("failed to clear cached token: %w", err)
	}
	return nil
}

func (p *AccessTokenProvider) runFlow(ctx context.Context) (*models.SSOToken, *models.ClientRegistration, error) {
	registration, err := p.getValidatedClientRegistration(ctx)
	if err != nil {
		return nil, nil, err
	}

	token, err := p.authorize(ctx, registration)
	if err != nil {
		if oidc.IsClientFault(err) {
			p.logger.Debugf("provider rejected the client registration: %v", err)
			if clearErr := p.deps.Registrations.Clear(ctx, p.profile.RegistrationKey(), "client fault"); clearErr != nil {
				p.logger.Warnf("failed to clear cached registration: %v", clearErr)
			}
		}
		return nil, nil, err
	}
	return token, registration, nil
}

func (p *AccessTokenProvider) authorize(ctx context.Context, registration *models.ClientRegistration) (*models.SSOToken, error) {
	state := uuid.NewString()
	server := p.deps.NewServer(state)
	if err := server.Start(); err != nil {
		return nil, err
	}
	defer func() {
		if err := server.Close(); err != nil {
			p.logger.Debugf("failed to close redirect server: %v", err)
		}
	}()

	redirectURI, err := server.RedirectURI()
	if err != nil {
		return nil, err
	}

	verifier := oauth2.GenerateVerifier()
	location, err := p.deps.OIDC.Authorize(models.AuthorizeRequest{
		ResponseType:        oidc.ResponseTypeCode,
		ClientID:            registration.ClientID,
		RedirectURI:         redirectURI,
		Scopes:              p.profile.Scopes,
		State:               state,
		CodeChallenge:       oauth2.S256ChallengeFromVerifier(verifier),
		CodeChallengeMethod: oidc.CodeChallengeMethodS256,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization URL: %w", err)
	}

	opened, err := p.deps.Browser.OpenExternal(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to open browser: %w", err)
	}
	if !opened {
		return nil, &CancellationError{Reason: CancelReasonUser}
	}

	code, err := server.WaitForAuthorization(ctx)
	if err != nil {
		return nil, err
	}

	return p.deps.OIDC.CreateToken(ctx, models.CreateTokenRequest{
		ClientID:     registration.ClientID,
		ClientSecret: registration.ClientSecret,
		GrantType:    models.GrantTypeAuthorizationCode,
		RedirectURI:  redirectURI,
		CodeVerifier: verifier,
		Code:         code,
	})
}

func (p *AccessTokenProvider) getValidatedClientRegistration(ctx context.Context) (*models.ClientRegistration, error) {
	key := p.profile.RegistrationKey()

	registration, err := p.deps.Registrations.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load cached registration: %w", err)
	}

	if registration != nil && (IsExpiredAt(registration, p.deps.Now()) || IsDeprecatedAuth(registration)) {
		p.logger.Debugf("discarding %s client registration", registration.Variant())
		if err := p.Invalidate(ctx); err != nil {
			return nil, err
		}
		registration = nil
	}
	if registration != nil {
		return registration, nil
	}

	registration, err = p.deps.OIDC.RegisterClient(ctx, models.RegisterClientRequest{
		ClientName:   ClientName,
		ClientType:   ClientType,
		Scopes:       p.profile.Scopes,
		GrantTypes:   []string{models.GrantTypeAuthorizationCode, models.GrantTypeRefreshToken},
		RedirectURIs: []string{RegistrationRedirectURI},
		IssuerURL:    p.profile.StartURL,
	})
	if err != nil {
		return nil, err
	}

	if err := p.deps.Registrations.Save(ctx, key, registration); err != nil {
		return nil, fmt.Errorf("failed to cache client registration: %w", err)
	}
	return registration, nil
}

func (p *AccessTokenProvider) refreshToken(ctx context.Context, token *models.SSOToken, registration *models.ClientRegistration) (*models.SSOToken, error) {
	key := p.profile.TokenKey()

	refreshed, err := p.deps.OIDC.CreateToken(ctx, models.CreateTokenRequest{
		ClientID:     registration.ClientID,
		ClientSecret: registration.ClientSecret,
		GrantType:    models.GrantTypeRefreshToken,
		RefreshToken: token.RefreshToken,
	})
	if err != nil {
		if !oidc.IsNetworkError(err) {
			p.recordRefreshFailure(ctx, err)
		}
		if oidc.IsClientFault(err) {
			if clearErr := p.deps.Tokens.Clear(ctx, key, "refresh rejected"); clearErr != nil {
				p.logger.Warnf("failed to clear cached token: %v", clearErr)
			}
		}
		return nil, err
	}

	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	if err := p.saveToken(ctx, refreshed, registration); err != nil {
		return nil, err
	}
	return withIdentity(refreshed, key), nil
}

func (p *AccessTokenProvider) recordRefreshFailure(ctx context.Context, err error) {
	if p.deps.Telemetry == nil {
		return
	}

	reason := oidc.ErrorCode(err)
	if reason == "" {
		reason = Classify(err).String()
	}

	event := models.RefreshEvent{
		Result:             models.RefreshResultFailed,
		Reason:             reason,
		RequestID:          oidc.RequestID(err),
		CredentialType:     models.CredentialTypeBearerToken,
		CredentialSourceID: models.CredentialSourceFor(p.profile.StartURL),
	}
	if p.deps.Sessions != nil {
		if start, ok := p.deps.Sessions.SessionStart(p.profile.TokenKey()); ok {
			event.SessionDuration = p.deps.Now().Sub(start)
		}
	}
	p.deps.Telemetry.RecordRefresh(ctx, event)
}

func (p *AccessTokenProvider) saveToken(ctx context.Context, token *models.SSOToken, registration *models.ClientRegistration) error {
	record := &models.CachedToken{
		Token:        token,
		Registration: registration,
		Region:       p.profile.Region,
		StartURL:     p.profile.StartURL,
	}
	if err := p.deps.Tokens.Save(ctx, p.profile.TokenKey(), record); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	return nil
}

func withIdentity(token *models.SSOToken, key string) *models.SSOToken {
	out := *token
	out.Identity = key
	return &out
}
