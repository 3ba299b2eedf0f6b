package cli_cmds

import (
	"github.com/spf13/cobra"

	"github.com/vaultline/vaultline-go/internal/cli"
)

// GeneratePalette builds the full command set for the root command.
func GeneratePalette(params *cli.CmdParams) []*cobra.Command {

	// Auth commands
	loginCmd := NewLogin(params)
	signupCmd := NewSignup(params)
	logoutCmd := NewLogout(params)

	// Dashboard commands
	balanceCmd := NewBalance(params)
	historyCmd := NewHistory(params)
	withdrawCmd := NewWithdraw(params)
	depositCmd := NewDeposit(params)
	transferCmd := NewTransfer(params)
	refreshCmd := NewRefresh(params)

	// Utility commands
	versionCmd := NewVersion(params)

	return []*cobra.Command{
		loginCmd,
		signupCmd,
		logoutCmd,
		balanceCmd,
		historyCmd,
		withdrawCmd,
		depositCmd,
		transferCmd,
		refreshCmd,
		versionCmd,
	}
}
