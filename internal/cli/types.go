package cli

import (
	"github.com/spf13/cobra"

	"github.com/vaultline/vaultline-go/interfaces"
	"github.com/vaultline/vaultline-go/internal"
	"github.com/vaultline/vaultline-go/services"
)

// CmdParams holds all dependencies needed by command handlers
type CmdParams struct {
	Config    *internal.Config
	Logger    *internal.Logger
	Client    interfaces.BackendClient
	Session   interfaces.SessionStore
	Dashboard *services.Dashboard
	Palette   []*cobra.Command
	Use       string
	Alias     string
	Short     string
	Long      string
}

type CLICMD struct {
	Root *cobra.Command
}

func NewCMD(cmdRoot *cobra.Command) *CLICMD {
	return &CLICMD{
		Root: cmdRoot,
	}
}
