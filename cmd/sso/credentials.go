package sso

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BerryBytes/ssoctl/internal/sso"
	generalutils "github.com/BerryBytes/ssoctl/utils/general"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"
)

func CredentialsCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	var (
		accountID string
		roleName  string
		summary   bool
	)

	credentialsCmd := &cobra.Command{
		Use:   "credentials",
		Short: "Print role credentials for the profile's account and role",
		Long: `Exchange the cached SSO session for role credentials.

The output follows the credential_process contract, so the command can be used
from ~/.aws/config:

  credential_process = ssoctl sso credentials --profile dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(opts, newRuntime, func(rt *Runtime) error {
				profile, err := rt.Config.SelectProfile(opts.Profile)
				if err != nil {
					return err
				}
				if accountID != "" {
					profile.AccountID = accountID
				}
				if roleName != "" {
					profile.RoleName = roleName
				}
				if profile.AccountID == "" || profile.RoleName == "" {
					return errors.New("no account and role configured, pass --account-id and --role-name")
				}
				if err := sso.ValidateAccountID(profile.AccountID); err != nil {
					return err
				}

				tokens, err := rt.NewTokenProvider(cmd.Context(), profile)
				if err != nil {
					return fmt.Errorf("failed to set up SSO client: %w", err)
				}
				api, err := rt.NewSSOAPI(cmd.Context(), profile.Region)
				if err != nil {
					return err
				}

				provider := aws.NewCredentialsCache(
					sso.NewRoleCredentialsProvider(tokens, api, profile.AccountID, profile.RoleName, rt.Logger),
				)
				creds, err := provider.Retrieve(cmd.Context())
				if err != nil {
					return err
				}

				if summary {
					out := sso.ToAWSCredentials(creds)
					rt.General.PrintCurrentRole(cmd.OutOrStdout(), generalutils.RoleDetails{
						Profile:    profile.Name,
						AccountID:  profile.AccountID,
						RoleName:   profile.RoleName,
						Expiration: out.Expiration,
					})
					return nil
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sso.ToAWSCredentials(creds))
			})
		},
	}

	credentialsCmd.Flags().StringVar(&accountID, "account-id", "", "Account to get credentials for, overrides the profile")
	credentialsCmd.Flags().StringVar(&roleName, "role-name", "", "Role to assume, overrides the profile")
	credentialsCmd.Flags().BoolVar(&summary, "summary", false, "Print a readable summary instead of credential_process JSON")

	return credentialsCmd
}
