package playlist

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addOwner int

var addCmd = &cobra.Command{
	Use:   "add <title> <url>",
	Short: "Add an entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		it, err := app.AddPlaylist(cmd.Context(), args[0], args[1], addOwner)
		if err != nil {
			return fmt.Errorf("add playlist: %w", err)
		}

		color.Green("Added entry %d (%s)", it.ID, it.App)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVar(&addOwner, "owner", 0, "user id to attach the entry to")
}
