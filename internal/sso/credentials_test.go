package sso_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BerryBytes/ssoctl/internal/sso"
	"github.com/BerryBytes/ssoctl/models"
	mock_sso "github.com/BerryBytes/ssoctl/tests/mock/sso"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awssso "github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/sso/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCredentialsProvider_Retrieve(t *testing.T) {
	expiration := time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		accountID  string
		roleName   string
		setup      func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI)
		wantErr    string
		wantErrIs  error
		wantAccess string
	}{
		{
			name:      "success",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), &awssso.GetRoleCredentialsInput{
					AccessToken: aws.String("bearer"),
					AccountId:   aws.String("123456789012"),
					RoleName:    aws.String("Admin"),
				}).Return(&awssso.GetRoleCredentialsOutput{
					RoleCredentials: &types.RoleCredentials{
						AccessKeyId:     aws.String("AKIA"),
						SecretAccessKey: aws.String("secret"),
						SessionToken:    aws.String("session"),
						Expiration:      expiration.UnixMilli(),
					},
				}, nil)
			},
			wantAccess: "AKIA",
		},
		{
			name:      "missing role",
			accountID: "123456789012",
			setup:     func(*mock_sso.MockTokenProvider, *mock_sso.MockSSOAPI) {},
			wantErr:   "no account id or role name",
		},
		{
			name:      "not logged in",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, _ *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(nil, nil)
			},
			wantErrIs: sso.ErrLoginRequired,
		},
		{
			name:      "token error",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, _ *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(nil, errors.New("cache unreadable"))
			},
			wantErr: "failed to get SSO token",
		},
		{
			name:      "rejected token is cleared",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), gomock.Any()).
					Return(nil, &types.UnauthorizedException{Message: aws.String("session token not found or invalid")})
				tokens.EXPECT().InvalidateToken(gomock.Any()).Return(nil)
			},
			wantErr: "failed to get role credentials",
		},
		{
			name:      "token clear failure still returns the lookup error",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), gomock.Any()).Return(nil, &types.UnauthorizedException{})
				tokens.EXPECT().InvalidateToken(gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: "failed to get role credentials",
		},
		{
			name:      "unknown role keeps the session",
			accountID: "123456789012",
			roleName:  "Admni",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), gomock.Any()).
					Return(nil, &types.ResourceNotFoundException{Message: aws.String("role not found")})
			},
			wantErr: "failed to get role credentials",
		},
		{
			name:      "unassigned role keeps the session",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), gomock.Any()).Return(nil, clientFault("ForbiddenException"))
			},
			wantErr: "failed to get role credentials",
		},
		{
			name:      "server fault keeps the session",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), gomock.Any()).Return(nil, serverFault("InternalServerException"))
			},
			wantErr: "failed to get role credentials",
		},
		{
			name:      "empty response",
			accountID: "123456789012",
			roleName:  "Admin",
			setup: func(tokens *mock_sso.MockTokenProvider, api *mock_sso.MockSSOAPI) {
				tokens.EXPECT().GetToken(gomock.Any()).Return(&models.SSOToken{AccessToken: "bearer"}, nil)
				api.EXPECT().GetRoleCredentials(gomock.Any(), gomock.Any()).Return(&awssso.GetRoleCredentialsOutput{}, nil)
			},
			wantErr: "response is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := mock_sso.NewMockTokenProvider(ctrl)
			api := mock_sso.NewMockSSOAPI(ctrl)
			tt.setup(tokens, api)

			provider := sso.NewRoleCredentialsProvider(tokens, api, tt.accountID, tt.roleName, nil)
			creds, err := provider.Retrieve(context.Background())

			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
			case tt.wantErr != "":
				assert.ErrorContains(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantAccess, creds.AccessKeyID)
				assert.Equal(t, "secret", creds.SecretAccessKey)
				assert.Equal(t, "session", creds.SessionToken)
				assert.True(t, creds.CanExpire)
				assert.True(t, creds.Expires.Equal(expiration))
				assert.Equal(t, tt.accountID, creds.AccountID)
			}
		})
	}
}

func TestToAWSCredentials(t *testing.T) {
	expires := time.Date(2025, 5, 1, 13, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	out := sso.ToAWSCredentials(aws.Credentials{
		AccessKeyID:     "AKIA",
		SecretAccessKey: "secret",
		SessionToken:    "session",
		CanExpire:       true,
		Expires:         expires,
	})
	assert.Equal(t, 1, out.Version)
	assert.Equal(t, "AKIA", out.AccessKeyID)
	assert.Equal(t, "2025-05-01T11:00:00Z", out.Expiration)

	staticCreds, err := credentials.NewStaticCredentialsProvider("AKIA", "secret", "").Retrieve(context.Background())
	require.NoError(t, err)
	static := sso.ToAWSCredentials(staticCreds)
	assert.Empty(t, static.Expiration)
	assert.Empty(t, static.SessionToken)
}
