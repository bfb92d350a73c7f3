package browser_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/BerryBytes/ssoctl/internal/browser"
	mock_ssoctl "github.com/BerryBytes/ssoctl/tests/mock"
	promptutils "github.com/BerryBytes/ssoctl/utils/prompt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const signInURL = "https://oidc.us-east-1.amazonaws.com/authorize?state=abc"

func TestOpener_OpenExternal(t *testing.T) {
	tests := []struct {
		name         string
		opts         []browser.Option
		setupMocks   func(p *mock_ssoctl.MockPrompter)
		launchErr    error
		expectOpened bool
		expectLaunch bool
		expectErr    bool
		expectOutput string
	}{
		{
			name: "user consents",
			setupMocks: func(p *mock_ssoctl.MockPrompter) {
				p.EXPECT().PromptForConfirmation(gomock.Any()).Return(true, nil)
			},
			expectOpened: true,
			expectLaunch: true,
			expectOutput: "Opening browser to:",
		},
		{
			name: "user declines",
			setupMocks: func(p *mock_ssoctl.MockPrompter) {
				p.EXPECT().PromptForConfirmation(gomock.Any()).Return(false, nil)
			},
		},
		{
			name: "user interrupts",
			setupMocks: func(p *mock_ssoctl.MockPrompter) {
				p.EXPECT().PromptForConfirmation(gomock.Any()).Return(false, promptutils.ErrInterrupted)
			},
		},
		{
			name: "prompt fails",
			setupMocks: func(p *mock_ssoctl.MockPrompter) {
				p.EXPECT().PromptForConfirmation(gomock.Any()).Return(false, errors.New("no tty"))
			},
			expectErr: true,
		},
		{
			name:         "assume yes skips the prompt",
			opts:         []browser.Option{browser.WithAssumeYes()},
			setupMocks:   func(p *mock_ssoctl.MockPrompter) {},
			expectOpened: true,
			expectLaunch: true,
		},
		{
			name:         "launch failure still lets the user continue",
			opts:         []browser.Option{browser.WithAssumeYes()},
			setupMocks:   func(p *mock_ssoctl.MockPrompter) {},
			launchErr:    errors.New("no display"),
			expectOpened: true,
			expectLaunch: true,
			expectOutput: "Please visit the URL above manually.",
		},
		{
			name:         "no browser prints the URL",
			opts:         []browser.Option{browser.WithoutBrowser()},
			setupMocks:   func(p *mock_ssoctl.MockPrompter) {},
			expectOpened: true,
			expectOutput: signInURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			prompter := mock_ssoctl.NewMockPrompter(ctrl)
			tt.setupMocks(prompter)

			var launched []string
			var out bytes.Buffer
			opts := append([]browser.Option{
				browser.WithOutput(&out),
				browser.WithLauncher(func(url string) error {
					launched = append(launched, url)
					return tt.launchErr
				}),
			}, tt.opts...)

			opened, err := browser.NewOpener(prompter, opts...).OpenExternal(context.Background(), signInURL)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectOpened, opened)
			if tt.expectLaunch {
				assert.Equal(t, []string{signInURL}, launched)
			} else {
				assert.Empty(t, launched)
			}
			if tt.expectOutput != "" {
				assert.Contains(t, out.String(), tt.expectOutput)
			}
		})
	}
}

func TestOpener_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opened, err := browser.NewOpener(nil, browser.WithAssumeYes()).OpenExternal(ctx, signInURL)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, opened)
}
