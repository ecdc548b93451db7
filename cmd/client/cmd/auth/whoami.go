package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		me, err := app.CurrentUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("whoami: %w", err)
		}

		fmt.Printf("id:    %d\nemail: %s\n", me.ID, me.Email)
		return nil
	},
}
