package sso

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func LoginCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	var force bool

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to AWS IAM Identity Center",
		Long: `Sign in with the browser-based authorization code flow.

A cached session that is still valid, or can be refreshed, is reused unless
--force is given.`,
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

				if !force {
					token, err := provider.GetToken(cmd.Context())
					if err != nil {
						rt.Logger.Debugf("cached session unusable: %v", err)
					} else if token != nil {
						cmd.Printf("Already signed in to %s (expires %s)\n", profile.StartURL, token.ExpiresAt.Local().Format(time.RFC1123))
						return nil
					}
				}

				token, err := provider.CreateToken(cmd.Context())
				if err != nil {
					if isInterrupt(err) {
						cmd.Println("Sign-in cancelled.")
						return nil
					}
					return fmt.Errorf("SSO login failed: %w", err)
				}

				cmd.Printf("Signed in to %s (expires %s)\n", profile.StartURL, token.ExpiresAt.Local().Format(time.RFC1123))
				return nil
			})
		},
	}

	loginCmd.Flags().BoolVarP(&force, "force", "f", false, "Sign in again even if a cached session is valid")

	return loginCmd
}
