package sso

import (
	"context"
	"time"

	"github.com/BerryBytes/ssoctl/internal/sso"
	"github.com/BerryBytes/ssoctl/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const (
	stateNone        = "none"
	stateActive      = "active"
	stateRefreshable = "refreshable"
	stateExpired     = "expired"
	stateLegacy      = "legacy"
	stateUnreadable  = "unreadable"
)

func StatusCmd(opts *GlobalOptions, newRuntime RuntimeFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show cached SSO sessions",
		Long:  "Show the cached token and client registration of every configured profile, or of --profile only. No network calls are made.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithRuntime(opts, newRuntime, func(rt *Runtime) error {
				profiles := rt.Config.Profiles
				if opts.Profile != "" {
					profile, err := rt.Config.SelectProfile(opts.Profile)
					if err != nil {
						return err
					}
					profiles = []models.SSOProfile{profile}
				}
				if len(profiles) == 0 {
					cmd.Println("No SSO profiles configured.")
					return nil
				}

				now := time.Now()
				if rt.Now != nil {
					now = rt.Now()
				}

				t := table.NewWriter()
				t.SetOutputMirror(cmd.OutOrStdout())
				t.SetStyle(table.StyleRounded)
				t.AppendHeader(table.Row{"Profile", "Start URL", "Region", "Role", "Session", "Expires", "Client"})
				for _, p := range profiles {
					session, expires := tokenState(cmd.Context(), rt, p, now)
					t.AppendRow(table.Row{
						p.Name,
						p.StartURL,
						p.Region,
						roleLabel(p),
						session,
						expires,
						registrationState(cmd.Context(), rt, p, now),
					})
				}
				t.Render()
				return nil
			})
		},
	}
}

func roleLabel(p models.SSOProfile) string {
	if p.AccountID == "" {
		return "-"
	}
	return p.AccountID + "/" + p.RoleName
}

func formatExpiry(t time.Time) string {
	return t.Local().Format(time.RFC3339)
}

func tokenState(ctx context.Context, rt *Runtime, p models.SSOProfile, now time.Time) (string, string) {
	record, err := rt.Tokens.Load(ctx, p.TokenKey())
	if err != nil {
		rt.Logger.Debugf("failed to read cached token for %s: %v", p.Name, err)
		return stateUnreadable, "-"
	}
	if record == nil || record.Token == nil {
		return stateNone, "-"
	}

	expires := formatExpiry(record.Token.ExpiresAt)
	switch {
	case !sso.IsExpiredAt(record.Token, now):
		return stateActive, expires
	case record.Token.RefreshToken != "" &&
		!sso.IsExpiredAt(record.Registration, now) &&
		!sso.IsDeprecatedAuth(record.Registration):
		return stateRefreshable, expires
	default:
		return stateExpired, expires
	}
}

func registrationState(ctx context.Context, rt *Runtime, p models.SSOProfile, now time.Time) string {
	registration, err := rt.Registrations.Load(ctx, p.RegistrationKey())
	switch {
	case err != nil:
		rt.Logger.Debugf("failed to read cached registration for %s: %v", p.Name, err)
		return stateUnreadable
	case registration == nil:
		return stateNone
	case sso.IsDeprecatedAuth(registration):
		return stateLegacy
	case sso.IsExpiredAt(registration, now):
		return stateExpired
	}
	return "until " + formatExpiry(registration.ExpiresAt)
}
