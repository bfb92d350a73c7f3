package sso

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/BerryBytes/ssoctl/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awssso "github.com/aws/aws-sdk-go-v2/service/sso"
)

var accountIDPattern = regexp.MustCompile(`^\d{12}$`)

func ValidateAccountID(accountID string) error {
	if !accountIDPattern.MatchString(accountID) {
		return fmt.Errorf("invalid account ID: %s (must be 12 digits)", accountID)
	}
	return nil
}

// AccountLister lists the accounts and roles visible to the profile's
// current SSO session.
type AccountLister struct {
	tokens TokenProvider
	api    SSOAPI
}

func NewAccountLister(tokens TokenProvider, api SSOAPI) *AccountLister {
	return &AccountLister{tokens: tokens, api: api}
}

func (l *AccountLister) accessToken(ctx context.Context) (string, error) {
	token, err := l.tokens.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	if token == nil {
		return "", ErrLoginRequired
	}
	return token.AccessToken, nil
}

func (l *AccountLister) ListAccounts(ctx context.Context) ([]models.SSOAccount, error) {
	accessToken, err := l.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var accounts []models.SSOAccount
	paginator := awssso.NewListAccountsPaginator(l.api, &awssso.ListAccountsInput{
		AccessToken: aws.String(accessToken),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, acc := range page.AccountList {
			if aws.ToString(acc.AccountId) == "" {
				continue
			}
			accounts = append(accounts, models.SSOAccount{
				AccountID:   aws.ToString(acc.AccountId),
				AccountName: aws.ToString(acc.AccountName),
				Email:       aws.ToString(acc.EmailAddress),
			})
		}
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts found")
	}
	return accounts, nil
}

func (l *AccountLister) ListRoles(ctx context.Context, accountID string) ([]string, error) {
	if err := ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	accessToken, err := l.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var roles []string
	paginator := awssso.NewListAccountRolesPaginator(l.api, &awssso.ListAccountRolesInput{
		AccessToken: aws.String(accessToken),
		AccountId:   aws.String(accountID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list roles: %w", err)
		}
		for _, role := range page.RoleList {
			if name := aws.ToString(role.RoleName); name != "" {
				roles = append(roles, name)
			}
		}
	}

	if len(roles) == 0 {
		return nil, fmt.Errorf("no roles found for account %s", accountID)
	}
	return roles, nil
}

// AccountLabel is how an account is shown in selection prompts.
func AccountLabel(acc models.SSOAccount) string {
	name := acc.AccountName
	if name == "" {
		name = "Unnamed"
	}
	return fmt.Sprintf("%s (%s)", acc.AccountID, name)
}

// ParseAccountLabel reverses AccountLabel.
func ParseAccountLabel(label string) (string, string, error) {
	parts := strings.SplitN(label, " ", 2)
	accountID := parts[0]
	accountName := ""
	if len(parts) > 1 {
		accountName = strings.Trim(parts[1], "()")
	}
	if err := ValidateAccountID(accountID); err != nil {
		return "", "", err
	}
	return accountID, accountName, nil
}

var roleAbbreviations = map[string]string{
	"administrator":          "adm",
	"administration":         "adm",
	"admin":                  "adm",
	"readonly":               "ro",
	"read":                   "ro",
	"only":                   "",
	"write":                  "wr",
	"full":                   "full",
	"access":                 "acc",
	"management":             "mgmt",
	"manager":                "mgr",
	"developer":              "dev",
	"operations":             "ops",
	"system":                 "sys",
	"network":                "net",
	"database":               "db",
	"security":               "sec",
	"support":                "sup",
	"production":             "prod",
	"professional":           "prof",
	"awsadministratoraccess": "aws-admin-acc",
	"datalake":               "dl",
}

// GenerateProfileName derives a short profile name from the session,
// account and role, for example "corp-payments-prod-adm-acc".
func GenerateProfileName(session, account, role string) string {
	slug := func(s string) string {
		return strings.Trim(strings.ToLower(strings.ReplaceAll(s, " ", "-")), "-")
	}

	var accountParts []string
	for _, part := range strings.Split(slug(account), "-") {
		if part == "" || part == "and" || part == "the" || part == "of" {
			continue
		}
		accountParts = append(accountParts, part)
		if len(accountParts) >= 3 {
			break
		}
	}

	var roleParts []string
	roleWords := strings.FieldsFunc(strings.ToLower(role), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	for _, word := range roleWords {
		if abbrev, ok := roleAbbreviations[word]; ok {
			if abbrev != "" {
				roleParts = append(roleParts, abbrev)
			}
			continue
		}
		if len(word) <= 3 {
			roleParts = append(roleParts, word)
		} else {
			roleParts = append(roleParts, word[:3])
		}
	}

	parts := []string{slug(session), strings.Join(accountParts, "-"), strings.Join(roleParts, "-")}
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "-")
}
