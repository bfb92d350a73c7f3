// Package oidc talks to the AWS IAM Identity Center OIDC service.
package oidc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BerryBytes/ssoctl/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	ResponseTypeCode          = "code"
	CodeChallengeMethodS256   = "S256"
	authorizeEndpointTemplate = "https://oidc.%s.amazonaws.com/authorize"
)

type SSOOIDCAPI interface {
	RegisterClient(ctx context.Context, params *ssooidc.RegisterClientInput, optFns ...func(*ssooidc.Options)) (*ssooidc.RegisterClientOutput, error)
	CreateToken(ctx context.Context, params *ssooidc.CreateTokenInput, optFns ...func(*ssooidc.Options)) (*ssooidc.CreateTokenOutput, error)
}

type Option func(*Client)

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithAuthorizeEndpoint overrides the regional authorization endpoint.
func WithAuthorizeEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.authorizeEndpoint = endpoint
	}
}

type Client struct {
	API               SSOOIDCAPI
	Region            string
	authorizeEndpoint string
	now               func() time.Time
	logger            *zap.SugaredLogger
}

// NewClient loads an anonymous configuration for region. The OIDC operations
// used here are unsigned.
func NewClient(ctx context.Context, region string, opts ...Option) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for region %s: %w", region, err)
	}
	return NewFromAPI(ssooidc.NewFromConfig(cfg), region, opts...), nil
}

func NewFromAPI(api SSOOIDCAPI, region string, opts ...Option) *Client {
	c := &Client{
		API:               api,
		Region:            region,
		authorizeEndpoint: fmt.Sprintf(authorizeEndpointTemplate, region),
		now:               time.Now,
		logger:            zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (*models.ClientRegistration, error) {
	input := &ssooidc.RegisterClientInput{
		ClientName:   aws.String(req.ClientName),
		ClientType:   aws.String(req.ClientType),
		Scopes:       req.Scopes,
		GrantTypes:   req.GrantTypes,
		RedirectUris: req.RedirectURIs,
	}
	if req.IssuerURL != "" {
		input.IssuerUrl = aws.String(req.IssuerURL)
	}

	c.logger.Debugf("registering OIDC client %q in %s", req.ClientName, c.Region)
	output, err := c.API.RegisterClient(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to register client: %w", err)
	}

	return &models.ClientRegistration{
		ClientID:     aws.ToString(output.ClientId),
		ClientSecret: aws.ToString(output.ClientSecret),
		ExpiresAt:    time.Unix(output.ClientSecretExpiresAt, 0),
		Scopes:       req.Scopes,
		IssuerURL:    req.IssuerURL,
	}, nil
}

// Authorize builds the browser authorization URL. It performs no network call.
func (c *Client) Authorize(req models.AuthorizeRequest) (string, error) {
	if req.ResponseType != "" && req.ResponseType != ResponseTypeCode {
		return "", fmt.Errorf("unsupported response type %q", req.ResponseType)
	}
	if req.ClientID == "" {
		return "", errors.New("authorization request is missing the client id")
	}
	if req.CodeChallenge == "" {
		return "", errors.New("authorization request is missing the code challenge")
	}

	method := req.CodeChallengeMethod
	if method == "" {
		method = CodeChallengeMethodS256
	}

	conf := &oauth2.Config{
		ClientID:    req.ClientID,
		RedirectURL: req.RedirectURI,
		Scopes:      req.Scopes,
		Endpoint:    oauth2.Endpoint{AuthURL: c.authorizeEndpoint},
	}

	opts := []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("code_challenge", req.CodeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", method),
	}
	if len(req.Scopes) > 0 {
		opts = append(opts, oauth2.SetAuthURLParam("scopes", strings.Join(req.Scopes, ",")))
	}

	return conf.AuthCodeURL(req.State, opts...), nil
}

func (c *Client) CreateToken(ctx context.Context, req models.CreateTokenRequest) (*models.SSOToken, error) {
	input := &ssooidc.CreateTokenInput{
		ClientId:     aws.String(req.ClientID),
		ClientSecret: aws.String(req.ClientSecret),
		GrantType:    aws.String(req.GrantType),
	}
	if req.RedirectURI != "" {
		input.RedirectUri = aws.String(req.RedirectURI)
	}
	if req.CodeVerifier != "" {
		input.CodeVerifier = aws.String(req.CodeVerifier)
	}
	if req.Code != "" {
		input.Code = aws.String(req.Code)
	}
	if req.RefreshToken != "" {
		input.RefreshToken = aws.String(req.RefreshToken)
	}

	c.logger.Debugf("requesting token with grant type %s", req.GrantType)
	output, err := c.API.CreateToken(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &models.SSOToken{
		AccessToken:  aws.ToString(output.AccessToken),
		ExpiresAt:    c.now().Add(time.Duration(output.ExpiresIn) * time.Second),
		TokenType:    aws.ToString(output.TokenType),
		RefreshToken: aws.ToString(output.RefreshToken),
	}, nil
}
