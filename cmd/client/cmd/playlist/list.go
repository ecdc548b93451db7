package playlist

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/internal/domain/playlist"
)

var (
	listSort   string
	listFormat string
	listOwner  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		mode := playlist.SortMode(listSort)

		if cmd.Flags().Changed("owner") {
			items, err := app.ListPlaylistsByOwner(cmd.Context(), listOwner, mode)
			if err != nil {
				return fmt.Errorf("list playlists: %w", err)
			}
			return printPlaylists(items, listFormat)
		}

		items, fromCache, err := app.ListPlaylists(cmd.Context(), mode)
		if err != nil {
			return fmt.Errorf("list playlists: %w", err)
		}
		if fromCache {
			color.Yellow("server unreachable, showing cached entries")
		}
		return printPlaylists(items, listFormat)
	},
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", string(playlist.DefaultSortMode),
		"sort order: dateAsc, dateDesc, contentAsc, contentDesc")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")
	listCmd.Flags().IntVar(&listOwner, "owner", 0, "only entries belonging to this user id")
}
