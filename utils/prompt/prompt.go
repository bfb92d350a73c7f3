package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
	PromptForConfirmation(prompt string) (bool, error)
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			fmt.Println("\nReceived termination signal. Exiting.")
			return ErrInterrupted
		}
		return fmt.Errorf("failed to select an option: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	if len(items) == 0 {
		return "", errors.New("no options to select from")
	}

	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, selected, err := prompt.Run()

	if err := p.HandlePromptError(err); err != nil {
		return "", err
	}

	return selected, nil
}

// PromptForConfirmation asks a yes/no question. Answering anything but yes
// returns false without an error; Ctrl-C returns ErrInterrupted.
func (p *RealPrompter) PromptForConfirmation(prompt string) (bool, error) {
	promptInstance := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	result, err := promptInstance.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, p.HandlePromptError(err)
	}
	return strings.HasPrefix(strings.ToLower(result), "y"), nil
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
