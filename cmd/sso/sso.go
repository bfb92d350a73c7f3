package sso

import (
	"context"
	"errors"

	"github.com/BerryBytes/ssoctl/internal/sso"
	promptutils "github.com/BerryBytes/ssoctl/utils/prompt"
	"github.com/spf13/cobra"
)

func NewSSOCommands(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	ssoCmd := &cobra.Command{
		Use:   "sso",
		Short: "Manage AWS IAM Identity Center sessions",
		Long:  "A set of commands to sign in with AWS IAM Identity Center and use the resulting session.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
	}

	ssoCmd.PersistentFlags().BoolVar(&opts.NoBrowser, "no-browser", false, "Print the sign-in URL instead of opening a browser")
	ssoCmd.PersistentFlags().BoolVarP(&opts.AssumeYes, "yes", "y", false, "Open the browser without asking first")

	ssoCmd.AddCommand(LoginCmd(opts, newRuntime))
	ssoCmd.AddCommand(TokenCmd(opts, newRuntime))
	ssoCmd.AddCommand(LogoutCmd(opts, newRuntime))
	ssoCmd.AddCommand(StatusCmd(opts, newRuntime))
	ssoCmd.AddCommand(CredentialsCmd(opts, newRuntime))
	ssoCmd.AddCommand(ProfilesCmd(opts, newRuntime))

	return ssoCmd
}

// isInterrupt reports whether err means the user stopped the command.
func isInterrupt(err error) bool {
	return errors.Is(err, promptutils.ErrInterrupted) ||
		errors.Is(err, context.Canceled) ||
		sso.IsCancellation(err)
}

// runWithRuntime builds the runtime, runs fn and flushes metrics.
func runWithRuntime(opts *GlobalOptions, newRuntime RuntimeFactory, fn func(rt *Runtime) error) error {
	rt, err := newRuntime(opts)
	if err != nil {
		return err
	}
	defer rt.Close()
	return fn(rt)
}
