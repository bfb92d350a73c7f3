package sso

import (
	"context"
	"fmt"
	"time"

	"github.com/BerryBytes/ssoctl/internal/browser"
	"github.com/BerryBytes/ssoctl/internal/config"
	"github.com/BerryBytes/ssoctl/internal/logger"
	"github.com/BerryBytes/ssoctl/internal/sso"
	"github.com/BerryBytes/ssoctl/internal/sso/cache"
	"github.com/BerryBytes/ssoctl/internal/sso/oidc"
	"github.com/BerryBytes/ssoctl/internal/telemetry"
	"github.com/BerryBytes/ssoctl/models"
	generalutils "github.com/BerryBytes/ssoctl/utils/general"
	promptutils "github.com/BerryBytes/ssoctl/utils/prompt"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// GlobalOptions are the flags shared by every sso command.
type GlobalOptions struct {
	ConfigPath string
	Profile    string
	NoBrowser  bool
	AssumeYes  bool
	Debug      bool
}

// Runtime is everything one sso command invocation needs.
type Runtime struct {
	Config        *config.Config
	Fs            afero.Fs
	Logger        *zap.SugaredLogger
	Prompter      promptutils.Prompter
	General       generalutils.GeneralUtilsInterface
	Tokens        sso.TokenCache
	Registrations sso.RegistrationCache
	Sessions      *telemetry.SessionStore
	Recorder      *telemetry.Recorder
	Now           func() time.Time

	NewTokenProvider func(ctx context.Context, profile models.SSOProfile) (sso.TokenProvider, error)
	NewSSOAPI        func(ctx context.Context, region string) (sso.SSOAPI, error)
}

type RuntimeFactory func(opts *GlobalOptions) (*Runtime, error)

// Close flushes the refresh metrics when a textfile is configured.
func (rt *Runtime) Close() {
	if rt.Recorder == nil || rt.Config == nil || rt.Config.MetricsFile == "" {
		return
	}
	if err := rt.Recorder.WriteTextfile(rt.Config.MetricsFile); err != nil {
		rt.Logger.Warnf("failed to write metrics file: %v", err)
	}
}

// DefaultRuntime wires the real file system, caches, browser and AWS clients.
func DefaultRuntime(opts *GlobalOptions) (*Runtime, error) {
	fs := afero.NewOsFs()

	cfg, err := config.Load(fs, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.Debug {
		level = "debug"
	}
	log, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := cache.NewStore(cache.Options{
		Backend:        cfg.Cache.Backend,
		Dir:            cfg.Cache.Dir,
		KeyringService: cache.DefaultKeyringService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open token cache: %w", err)
	}

	rt := &Runtime{
		Config:        cfg,
		Fs:            fs,
		Logger:        log,
		Prompter:      promptutils.NewPrompt(),
		General:       generalutils.NewGeneralUtilsManager(),
		Tokens:        cache.NewTokenCache(store, log),
		Registrations: cache.NewRegistrationCache(store, log),
		Sessions:      telemetry.NewSessionStore(fs, telemetry.DefaultSessionFile(), log),
		Recorder:      telemetry.NewRecorder(log),
		Now:           time.Now,
		NewSSOAPI:     sso.NewSSOAPI,
	}

	var browserOpts []browser.Option
	if opts.NoBrowser {
		browserOpts = append(browserOpts, browser.WithoutBrowser())
	}
	if opts.AssumeYes {
		browserOpts = append(browserOpts, browser.WithAssumeYes())
	}
	browserOpts = append(browserOpts, browser.WithLogger(log))
	opener := browser.NewOpener(rt.Prompter, browserOpts...)

	rt.NewTokenProvider = func(ctx context.Context, profile models.SSOProfile) (sso.TokenProvider, error) {
		client, err := oidc.NewClient(ctx, profile.Region, oidc.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return sso.NewAccessTokenProvider(profile, sso.Dependencies{
			OIDC:          client,
			Tokens:        rt.Tokens,
			Registrations: rt.Registrations,
			Browser:       opener,
			Sessions:      rt.Sessions,
			Telemetry:     rt.Recorder,
			NewServer:     sso.NewServerFactory(cfg.CallbackPort, log),
			Logger:        log,
		}), nil
	}
	return rt, nil
}
