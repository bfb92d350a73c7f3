package promptutils_test

import (
	"errors"
	"testing"

	promptutils "github.com/BerryBytes/ssoctl/utils/prompt"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
)

func TestHandlePromptError(t *testing.T) {
	p := &promptutils.RealPrompter{}

	tests := []struct {
		name        string
		err         error
		expectedErr error
		wantErr     bool
	}{
		{name: "no error", err: nil},
		{name: "ctrl-c", err: promptui.ErrInterrupt, expectedErr: promptutils.ErrInterrupted, wantErr: true},
		{name: "ctrl-d", err: promptui.ErrEOF, expectedErr: promptutils.ErrInterrupted, wantErr: true},
		{name: "other", err: errors.New("tty gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.HandlePromptError(tt.err)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.Contains(t, err.Error(), "failed to select an option")
			}
		})
	}
}

func TestPromptForSelection_NoItems(t *testing.T) {
	_, err := promptutils.NewPrompt().PromptForSelection("pick", nil)
	assert.Error(t, err)
}
