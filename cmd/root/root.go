package root

import (
	cmdSSO "github.com/BerryBytes/ssoctl/cmd/sso"
	"github.com/spf13/cobra"
)

func NewRootCmd(newRuntime cmdSSO.RuntimeFactory) *cobra.Command {
	opts := &cmdSSO.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "ssoctl",
		Short: "AWS IAM Identity Center CLI",
		Long:  `A CLI tool for signing in with AWS IAM Identity Center and using the resulting sessions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default $XDG_CONFIG_HOME/ssoctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.Profile, "profile", "p", "", "SSO profile to use (default $SSOCTL_PROFILE)")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(cmdSSO.NewSSOCommands(opts, newRuntime))

	return rootCmd
}
