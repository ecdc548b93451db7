package playlist

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/internal/domain/playlist"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Toggle an entry between watched and pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		it, err := app.ToggleComplete(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("toggle complete: %w", err)
		}

		if it.Completed == playlist.Completed {
			color.Green("Entry %d marked watched", it.ID)
		} else {
			color.Yellow("Entry %d back to pending", it.ID)
		}
		return nil
	},
}
