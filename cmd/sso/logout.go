package sso

import (
	"fmt"

	"github.com/spf13/cobra"
)

func LogoutCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the cached SSO session",
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

				if err := provider.Invalidate(cmd.Context()); err != nil {
					return fmt.Errorf("failed to clear SSO session: %w", err)
				}
				if rt.Sessions != nil {
					if err := rt.Sessions.Forget(profile.TokenKey()); err != nil {
						rt.Logger.Warnf("failed to forget session start: %v", err)
					}
				}

				cmd.Printf("Signed out of %s\n", profile.StartURL)
				return nil
			})
		},
	}
}
