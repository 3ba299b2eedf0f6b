package cli_cmds

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultline/vaultline-go/interfaces"
)

// renderErr maps client and validation errors to what the user sees:
// backend validation messages verbatim, a generic line for network trouble,
// and a login prompt for an expired session (the redirect-to-login analog).
func renderErr(cmd *cobra.Command, err error) error {
	var ce *interfaces.ClientError
	if errors.As(err, &ce) {
		switch ce.Type {
		case interfaces.ErrorTypeAuth:
			return fmt.Errorf("session expired, please run 'vaultline login'")
		case interfaces.ErrorTypeNetwork:
			return fmt.Errorf("something went wrong, please try again")
		default:
			return fmt.Errorf("%s", ce.Message)
		}
	}
	return err
}
