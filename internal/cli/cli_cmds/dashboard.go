package cli_cmds

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vaultline/vaultline-go/domain/models"
	"github.com/vaultline/vaultline-go/internal"
	"github.com/vaultline/vaultline-go/internal/cli"
)

// NewBalance creates the balance command
func NewBalance(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := params.Dashboard.Profile(cmd.Context())
			if err != nil {
				return renderErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", profile.FullName(), profile.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", profile.Balance.String())
			return nil
		},
	}
}

// NewHistory creates the history command
func NewHistory(params *cli.CmdParams) *cobra.Command {
	var filterFlag string
	var refresh bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show transaction history",
		Long:  `Display the transaction history, optionally filtered by type. Repeat visits to the same filter are served from the view cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := models.ParseFilterKey(filterFlag)
			if err != nil {
				return err
			}

			transactions, ok, err := params.Dashboard.History(cmd.Context(), filter, refresh)
			if err != nil {
				return renderErr(cmd, err)
			}
			if !ok {
				// A joined fetch failed; there is nothing new to show.
				params.Logger.Debug(internal.ComponentCLI, "No update for filter %s", filter)
				return nil
			}

			if len(transactions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions")
				return nil
			}

			for _, tx := range transactions {
				line := fmt.Sprintf("%s  %-10s  %10s", tx.CreatedAt.Format("2006-01-02 15:04"), tx.Type, tx.DisplayAmount())
				if tx.IsTransfer() {
					line += fmt.Sprintf("  %s -> %s", tx.SenderEmail, tx.RecipientEmail)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	historyCmd.Flags().StringVarP(&filterFlag, "type", "t", "", "filter by type (withdrawal, deposit, transfer)")
	historyCmd.Flags().BoolVarP(&refresh, "refresh", "r", false, "bypass the cache and fetch fresh data")

	return historyCmd
}

// NewWithdraw creates the withdraw command
func NewWithdraw(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Withdraw from your balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			if err := params.Dashboard.Withdraw(cmd.Context(), amount); err != nil {
				return renderErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Withdrew %s\n", amount.String())
			return nil
		},
	}
}

// NewDeposit creates the deposit command
func NewDeposit(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit into your balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			if err := params.Dashboard.Deposit(cmd.Context(), amount); err != nil {
				return renderErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deposited %s\n", amount.String())
			return nil
		},
	}
}

// NewTransfer creates the transfer command
func NewTransfer(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <amount> <recipient-email>",
		Short: "Transfer to another account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			if err := params.Dashboard.Transfer(cmd.Context(), amount, args[1]); err != nil {
				return renderErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s to %s\n", amount.String(), args[1])
			return nil
		},
	}
}

// NewRefresh creates the refresh command
func NewRefresh(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Prefetch profile and every history filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Dashboard.Warm(cmd.Context()); err != nil {
				return renderErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Dashboard refreshed")
			return nil
		},
	}
}
