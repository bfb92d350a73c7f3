package sso

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/BerryBytes/ssoctl/internal/sso"
	"github.com/spf13/cobra"
)

func TokenCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	var asJSON bool

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Print the cached SSO access token",
		Long:  "Print the access token of the current session, refreshing it if needed. It never starts a browser sign-in.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(opts, newRuntime, func(rt *Runtime) error {
				profile, err := rt.Config.SelectProfile(opts.Profile)
				if err != nil {
					return err
				}

				provider, err := rt.NewTokenProvider(cmd.Context(), profile)
				if err != nil {
					return fmt.Errorf("failed to set up SSO client: %w", err)
				}

				token, err := provider.GetToken(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to get SSO token: %w", err)
				}
				if token == nil {
					return sso.ErrLoginRequired
				}

				if !asJSON {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
					return err
				}

				out := struct {
					AccessToken string `json:"accessToken"`
					ExpiresAt   string `json:"expiresAt"`
					Identity    string `json:"identity"`
				}{
					AccessToken: token.AccessToken,
					ExpiresAt:   token.ExpiresAt.UTC().Format(time.RFC3339),
					Identity:    token.Identity,
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			})
		},
	}

	tokenCmd.Flags().BoolVar(&asJSON, "json", false, "Print the token with its expiry as JSON")

	return tokenCmd
}
