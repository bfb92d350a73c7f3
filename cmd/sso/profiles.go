package sso

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/BerryBytes/ssoctl/internal/config"
	"github.com/BerryBytes/ssoctl/internal/sso"
	"github.com/BerryBytes/ssoctl/models"
	generalutils "github.com/BerryBytes/ssoctl/utils/general"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func ProfilesCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage SSO profiles",
	}

	profilesCmd.AddCommand(profilesListCmd(opts, newRuntime))
	profilesCmd.AddCommand(profilesAddCmd(opts, newRuntime))
	profilesCmd.AddCommand(profilesRemoveCmd(opts, newRuntime))

	return profilesCmd
}

func profilesListCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured SSO profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(opts, newRuntime, func(rt *Runtime) error {
				if len(rt.Config.Profiles) == 0 {
					cmd.Println("No SSO profiles configured.")
					return nil
				}

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleRounded)
				t.AppendHeader(table.Row{"Name", "Region", "Start URL", "Account", "Role", "Scopes"})
				for _, p := range rt.Config.Profiles {
					t.AppendRow(table.Row{p.Name, p.Region, p.StartURL, p.AccountID, p.RoleName, strings.Join(p.Scopes, ",")})
				}
				t.Render()
				return nil
			})
		},
	}
}

type addOptions struct {
	name       string
	region     string
	startURL   string
	scopes     []string
	identifier string
	accountID  string
	roleName   string
	selectRole bool
}

func profilesAddCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	var add addOptions

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an SSO profile",
		Long: `Add an SSO profile to the configuration file.

With --select-role the command signs in, lists the accounts and roles
available to you and lets you pick one. The profile name is derived from the
selection when --name is not given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(opts, newRuntime, func(rt *Runtime) error {
				profile := models.SSOProfile{
					Name:       add.name,
					Region:     add.region,
					StartURL:   add.startURL,
					Scopes:     add.scopes,
					Identifier: add.identifier,
					AccountID:  add.accountID,
					RoleName:   add.roleName,
				}
				if len(profile.Scopes) == 0 {
					profile.Scopes = []string{config.DefaultScope}
				}
				if !config.IsValidRegion(profile.Region) {
					return fmt.Errorf("invalid region %q", profile.Region)
				}
				if err := config.ValidateStartURL(profile.StartURL); err != nil {
					return err
				}

				if add.selectRole {
					if err := selectAccountRole(cmd, rt, &profile); err != nil {
						if isInterrupt(err) {
							cmd.Println("Profile setup cancelled.")
							return nil
						}
						return err
					}
				}

				if profile.Name == "" {
					return errors.New("a profile name is required, pass --name")
				}
				if !generalutils.IsValidProfileName(profile.Name) {
					return fmt.Errorf("invalid profile name %q", profile.Name)
				}

				if err := rt.Config.AddProfile(profile); err != nil {
					return err
				}
				if err := rt.Config.Save(rt.Fs); err != nil {
					return err
				}

				cmd.Printf("Added profile %s to %s\n", profile.Name, rt.Config.Path())
				return nil
			})
		},
	}

	addCmd.Flags().StringVar(&add.name, "name", "", "Profile name")
	addCmd.Flags().StringVar(&add.region, "region", "", "IAM Identity Center region, e.g. us-east-1")
	addCmd.Flags().StringVar(&add.startURL, "start-url", "", "IAM Identity Center start URL")
	addCmd.Flags().StringSliceVar(&add.scopes, "scopes", nil, "OAuth scopes to request (default "+config.DefaultScope+")")
	addCmd.Flags().StringVar(&add.identifier, "identifier", "", "Token cache key, defaults to the start URL")
	addCmd.Flags().StringVar(&add.accountID, "account-id", "", "Account for role credentials")
	addCmd.Flags().StringVar(&add.roleName, "role-name", "", "Role for role credentials")
	addCmd.Flags().BoolVar(&add.selectRole, "select-role", false, "Sign in and pick the account and role interactively")
	_ = addCmd.MarkFlagRequired("region")
	_ = addCmd.MarkFlagRequired("start-url")

	return addCmd
}

func selectAccountRole(cmd *cobra.Command, rt *Runtime, profile *models.SSOProfile) error {
	ctx := cmd.Context()

	tokens, err := rt.NewTokenProvider(ctx, *profile)
	if err != nil {
		return fmt.Errorf("failed to set up SSO client: %w", err)
	}
	token, err := tokens.GetToken(ctx)
	if err != nil {
		rt.Logger.Debugf("cached session unusable: %v", err)
	}
	if token == nil {
		if _, err := tokens.CreateToken(ctx); err != nil {
			return err
		}
	}

	api, err := rt.NewSSOAPI(ctx, profile.Region)
	if err != nil {
		return err
	}
	lister := sso.NewAccountLister(tokens, api)
	selector := sso.NewSelectionClient(rt.Prompter)

	accounts, err := lister.ListAccounts(ctx)
	if err != nil {
		return err
	}
	account, err := selector.SelectAccount(accounts)
	if err != nil {
		return err
	}

	roles, err := lister.ListRoles(ctx, account.AccountID)
	if err != nil {
		return err
	}
	role, err := selector.SelectRole(roles)
	if err != nil {
		return err
	}

	profile.AccountID = account.AccountID
	profile.RoleName = role
	if profile.Name == "" {
		profile.Name = sso.GenerateProfileName(sessionName(profile.StartURL), account.AccountName, role)
	}
	return nil
}

// sessionName is the first label of the start URL's host, e.g. "corp" for
// https://corp.awsapps.com/start.
func sessionName(startURL string) string {
	u, err := url.Parse(startURL)
	if err != nil || u.Hostname() == "" {
		return "sso"
	}
	label, _, _ := strings.Cut(u.Hostname(), ".")
	return label
}

func profilesRemoveCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an SSO profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(opts, newRuntime, func(rt *Runtime) error {
				if err := rt.Config.RemoveProfile(args[0]); err != nil {
					return err
				}
				if err := rt.Config.Save(rt.Fs); err != nil {
					return err
				}
				cmd.Printf("Removed profile %s\n", args[0])
				return nil
			})
		},
	}
}
