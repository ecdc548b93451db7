package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/internal/domain/user"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		email, password, err := promptCredentials()
		if err != nil {
			return err
		}

		if err := app.Register(cmd.Context(), user.Credentials{Email: email, Password: password}); err != nil {
			return fmt.Errorf("register: %w", err)
		}

		color.Green("Account created. You can now log in.")
		return nil
	},
}
