// Package browser opens the authorization page in the user's browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	promptutils "github.com/BerryBytes/ssoctl/utils/prompt"
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
)

const consentPrompt = "Open the AWS sign-in page in your browser"

type Option func(*Opener)

// WithoutBrowser prints the URL instead of launching a browser.
func WithoutBrowser() Option {
	return func(o *Opener) {
		o.noBrowser = true
	}
}

// WithAssumeYes skips the consent prompt.
func WithAssumeYes() Option {
	return func(o *Opener) {
		o.assumeYes = true
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *Opener) {
		o.out = w
	}
}

func WithLauncher(launch func(url string) error) Option {
	return func(o *Opener) {
		o.launch = launch
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *Opener) {
		o.logger = logger
	}
}

// Opener asks for consent before launching the system browser. Declining
// reports false so the caller can treat it as a user cancellation.
type Opener struct {
	prompter  promptutils.Prompter
	launch    func(url string) error
	out       io.Writer
	noBrowser bool
	assumeYes bool
	logger    *zap.SugaredLogger
}

func NewOpener(prompter promptutils.Prompter, opts ...Option) *Opener {
	o := &Opener{
		prompter: prompter,
		launch:   open.Run,
		out:      os.Stderr,
		logger:   zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Opener) OpenExternal(ctx context.Context, url string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if o.noBrowser {
		_, _ = fmt.Fprintf(o.out, "\nOpen the following URL to sign in:\n%s\n\n", url)
		return true, nil
	}

	if !o.assumeYes {
		ok, err := o.prompter.PromptForConfirmation(consentPrompt)
		if err != nil {
			if errors.Is(err, promptutils.ErrInterrupted) {
				return false, nil
			}
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	_, _ = fmt.Fprintf(o.out, "\nOpening browser to:\n%s\n\n", url)
	if err := o.launch(url); err != nil {
		o.logger.Debugf("failed to launch browser: %v", err)
		_, _ = fmt.Fprintf(o.out, "Failed to open browser automatically.\n")
		_, _ = fmt.Fprintf(o.out, "Please visit the URL above manually.\n")
	}
	return true, nil
}
