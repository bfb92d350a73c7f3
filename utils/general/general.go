package generalutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"syscall"
)

type GeneralUtilsInterface interface {
	HandleSignals() (context.Context, context.CancelFunc)
	PrintCurrentRole(w io.Writer, details RoleDetails)
}

// RoleDetails are the fields shown after a profile's credentials are resolved.
type RoleDetails struct {
	Profile     string
	AccountID   string
	AccountName string
	RoleName    string
	Expiration  string
}

type DefaultGeneralUtilsManager struct {
	Signals []os.Signal
}

// HandleSignals returns a context that is cancelled on SIGINT or SIGTERM.
func (g *DefaultGeneralUtilsManager) HandleSignals() (context.Context, context.CancelFunc) {
	signals := g.Signals
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return signal.NotifyContext(context.Background(), signals...)
}

func (g *DefaultGeneralUtilsManager) PrintCurrentRole(w io.Writer, d RoleDetails) {
	accountName := d.AccountName
	if accountName == "" {
		accountName = "Unknown"
	}
	fmt.Fprintf(w, `
AWS Session Details:
---------------------------------
Profile      : %s
Account Id   : %s
Account Name : %s
Role Name    : %s
Expiration   : %s
---------------------------------
`, d.Profile, d.AccountID, accountName, d.RoleName, d.Expiration)
}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

var validNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-_]{0,126}[a-zA-Z0-9]$`)

// IsValidProfileName reports whether name can be used as a profile name.
func IsValidProfileName(name string) bool {
	return validNameRegex.MatchString(name)
}
