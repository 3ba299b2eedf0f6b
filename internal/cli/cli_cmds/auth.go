package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultline/vaultline-go/internal"
	"github.com/vaultline/vaultline-go/internal/cli"
)

// NewLogin creates the login command
func NewLogin(params *cli.CmdParams) *cobra.Command {
	var email, password string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your account",
		Long:  `Sign in with your email and password. The issued session is stored locally until logout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := params.Client.SignIn(cmd.Context(), email, password); err != nil {
				return renderErr(cmd, err)
			}
			params.Logger.Info(internal.ComponentCLI, "Login succeeded for %s", email)
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", email)
			return nil
		},
	}

	loginCmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	return loginCmd
}

// NewSignup creates the signup command
func NewSignup(params *cli.CmdParams) *cobra.Command {
	var email, password, firstName, lastName string

	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		Long:  `Register a new account. On success you are signed in immediately.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := params.Client.SignUp(cmd.Context(), email, password, firstName, lastName); err != nil {
				return renderErr(cmd, err)
			}
			params.Logger.Info(internal.ComponentCLI, "Signup succeeded for %s", email)
			fmt.Fprintf(cmd.OutOrStdout(), "Account created, signed in as %s\n", email)
			return nil
		},
	}

	signupCmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	signupCmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	signupCmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	signupCmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")

	return signupCmd
}

// NewLogout creates the logout command
func NewLogout(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Client.SignOut(cmd.Context()); err != nil {
				return renderErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
