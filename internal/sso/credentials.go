package sso

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BerryBytes/ssoctl/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awssso "github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/sso/types"
	"go.uber.org/zap"
)

const roleCredentialsSource = "SSORoleCredentials"

var ErrLoginRequired = errors.New("no valid SSO session, run 'ssoctl sso login' first")

// SSOAPI is the subset of the AWS SSO portal API authorized by a bearer token.
type SSOAPI interface {
	GetRoleCredentials(ctx context.Context, params *awssso.GetRoleCredentialsInput, optFns ...func(*awssso.Options)) (*awssso.GetRoleCredentialsOutput, error)
	ListAccounts(ctx context.Context, params *awssso.ListAccountsInput, optFns ...func(*awssso.Options)) (*awssso.ListAccountsOutput, error)
	ListAccountRoles(ctx context.Context, params *awssso.ListAccountRolesInput, optFns ...func(*awssso.Options)) (*awssso.ListAccountRolesOutput, error)
}

// NewSSOAPI returns a portal client for region. Like the OIDC operations,
// GetRoleCredentials is authorized by the bearer token alone.
func NewSSOAPI(ctx context.Context, region string) (SSOAPI, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for region %s: %w", region, err)
	}
	return awssso.NewFromConfig(cfg), nil
}

// RoleCredentialsProvider exchanges the profile's bearer token for account
// role credentials. It never starts the browser flow.
type RoleCredentialsProvider struct {
	tokens    TokenProvider
	api       SSOAPI
	accountID string
	roleName  string
	logger    *zap.SugaredLogger
}

var _ aws.CredentialsProvider = (*RoleCredentialsProvider)(nil)

func NewRoleCredentialsProvider(tokens TokenProvider, api SSOAPI, accountID, roleName string, logger *zap.SugaredLogger) *RoleCredentialsProvider {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RoleCredentialsProvider{
		tokens:    tokens,
		api:       api,
		accountID: accountID,
		roleName:  roleName,
		logger:    logger,
	}
}

func (p *RoleCredentialsProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	if p.accountID == "" || p.roleName == "" {
		return aws.Credentials{}, errors.New("profile has no account id or role name")
	}

	token, err := p.tokens.GetToken(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("failed to get SSO token: %w", err)
	}
	if token == nil {
		return aws.Credentials{}, ErrLoginRequired
	}

	output, err := p.api.GetRoleCredentials(ctx, &awssso.GetRoleCredentialsInput{
		AccessToken: aws.String(token.AccessToken),
		AccountId:   aws.String(p.accountID),
		RoleName:    aws.String(p.roleName),
	})
	if err != nil {
		var unauthorized *types.UnauthorizedException
		if errors.As(err, &unauthorized) {
			p.logger.Debugf("role credentials rejected the bearer token: %v", err)
			if invErr := p.tokens.InvalidateToken(ctx); invErr != nil {
				p.logger.Warnf("failed to invalidate cached token: %v", invErr)
			}
		}
		return aws.Credentials{}, fmt.Errorf("failed to get role credentials: %w", err)
	}
	if output.RoleCredentials == nil {
		return aws.Credentials{}, errors.New("role credentials response is empty")
	}

	rc := output.RoleCredentials
	return aws.Credentials{
		AccessKeyID:     aws.ToString(rc.AccessKeyId),
		SecretAccessKey: aws.ToString(rc.SecretAccessKey),
		SessionToken:    aws.ToString(rc.SessionToken),
		Source:          roleCredentialsSource,
		CanExpire:       true,
		Expires:         time.UnixMilli(rc.Expiration),
		AccountID:       p.accountID,
	}, nil
}

// ToAWSCredentials converts credentials to the credential_process shape.
func ToAWSCredentials(creds aws.Credentials) *models.AWSCredentials {
	out := &models.AWSCredentials{
		Version:         1,
		AccessKeyID:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
		SessionToken:    creds.SessionToken,
	}
	if creds.CanExpire {
		out.Expiration = creds.Expires.UTC().Format(time.RFC3339)
	}
	return out
}
