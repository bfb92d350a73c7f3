package sso

import (
	"errors"
	"fmt"

	"github.com/BerryBytes/ssoctl/models"
	promptutils "github.com/BerryBytes/ssoctl/utils/prompt"
)

// SelectionClient asks the user to pick a profile, an account or a role.
type SelectionClient struct {
	Prompter promptutils.Prompter
}

func NewSelectionClient(prompter promptutils.Prompter) *SelectionClient {
	return &SelectionClient{Prompter: prompter}
}

func (c *SelectionClient) SelectProfile(profiles []string) (string, error) {
	if len(profiles) == 0 {
		return "", errors.New("no profiles found in configuration")
	}
	profile, err := c.Prompter.PromptForSelection("Select an SSO profile", profiles)
	if err != nil {
		if errors.Is(err, promptutils.ErrInterrupted) {
			return "", promptutils.ErrInterrupted
		}
		return "", fmt.Errorf("profile selection aborted: %w", err)
	}
	return profile, nil
}

func (c *SelectionClient) SelectAccount(accounts []models.SSOAccount) (*models.SSOAccount, error) {
	labels := make([]string, len(accounts))
	for i, account := range accounts {
		labels[i] = AccountLabel(account)
	}

	selected, err := c.Prompter.PromptForSelection("Select an AWS account", labels)
	if err != nil {
		if errors.Is(err, promptutils.ErrInterrupted) {
			return nil, promptutils.ErrInterrupted
		}
		return nil, fmt.Errorf("account selection aborted: %w", err)
	}

	accountID, _, err := ParseAccountLabel(selected)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].AccountID == accountID {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("account %s not found", accountID)
}

func (c *SelectionClient) SelectRole(roles []string) (string, error) {
	if len(roles) == 0 {
		return "", errors.New("no roles available for this account")
	}
	role, err := c.Prompter.PromptForSelection("Select a role", roles)
	if err != nil {
		if errors.Is(err, promptutils.ErrInterrupted) {
			return "", promptutils.ErrInterrupted
		}
		return "", fmt.Errorf("role selection aborted: %w", err)
	}
	return role, nil
}
