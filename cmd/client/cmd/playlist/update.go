package playlist

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/internal/domain/playlist"
)

var (
	updateContent string
	updateSauce   string
	updateApp     string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace an entry's title and source URL",
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

		cur, err := app.GetPlaylist(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("update playlist: %w", err)
		}

		req := playlist.UpdateRequest{
			Content:   cur.Content,
			Sauce:     cur.Sauce,
			App:       cur.App,
			Completed: cur.Completed,
			Owner:     cur.Owner,
		}
		if cmd.Flags().Changed("content") {
			req.Content = updateContent
		}
		if cmd.Flags().Changed("sauce") {
			req.Sauce = updateSauce
			// the server re-derives the platform for a new URL
			if !cmd.Flags().Changed("app") {
				req.App = ""
			}
		}
		if cmd.Flags().Changed("app") {
			req.App = updateApp
		}

		it, err := app.UpdatePlaylist(cmd.Context(), id, req)
		if err != nil {
			return fmt.Errorf("update playlist: %w", err)
		}

		color.Green("Updated entry %d", it.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateContent, "content", "", "new title")
	updateCmd.Flags().StringVar(&updateSauce, "sauce", "", "new source URL")
	updateCmd.Flags().StringVar(&updateApp, "app", "", "platform label override")
}
