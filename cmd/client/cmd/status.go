package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/cmd/client/cmd/types"
	"watchlater/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the server is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("client is not initialized")
		}

		if err := app.HealthCheck(cmd.Context()); err != nil {
			color.Red("Server is unreachable: %v", err)
			return err
		}

		color.Green("Server is up")
		return nil
	},
}
