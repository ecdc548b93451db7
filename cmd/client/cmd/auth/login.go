package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/internal/domain/user"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		email, password, err := promptCredentials()
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), user.Credentials{Email: email, Password: password}); err != nil {
			return fmt.Errorf("login: %w", err)
		}

		color.Green("Logged in as %s", email)
		return nil
	},
}
