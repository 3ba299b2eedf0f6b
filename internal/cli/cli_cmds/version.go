package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultline/vaultline-go/internal"
	"github.com/vaultline/vaultline-go/internal/cli"
)

// NewVersion creates a version command
func NewVersion(params *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the Vaultline version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Vaultline")
			fmt.Println("=========")
			fmt.Printf("%s\n", internal.VersionInfo())
		},
	}

	return versionCmd
}
