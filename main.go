package main

import (
	"fmt"
	"os"

	"github.com/BerryBytes/ssoctl/cmd/root"
	cmdSSO "github.com/BerryBytes/ssoctl/cmd/sso"
	generalutils "github.com/BerryBytes/ssoctl/utils/general"
)

func main() {
	ctx, stop := generalutils.NewGeneralUtilsManager().HandleSignals()
	defer stop()

	if err := root.NewRootCmd(cmdSSO.DefaultRuntime).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
