package playlist

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"watchlater/cmd/client/cmd/types"
	"watchlater/internal/app/client"
	"watchlater/internal/domain/playlist"
)

var PlaylistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl"},
	Short:   "Manage watch-later entries",
}

func init() {
	PlaylistCmd.AddCommand(listCmd)
	PlaylistCmd.AddCommand(getCmd)
	PlaylistCmd.AddCommand(addCmd)
	PlaylistCmd.AddCommand(updateCmd)
	PlaylistCmd.AddCommand(completeCmd)
	PlaylistCmd.AddCommand(deleteCmd)
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func printPlaylists(items []playlist.Playlist, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "table", "":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCONTENT\tAPP\tDONE\tDATE\tTIME\tSAUCE")
		for _, it := range items {
			done := " "
			if it.Completed == playlist.Completed {
				done = "x"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				it.ID, it.Content, it.App, done, it.Date, it.Time, it.Sauce)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}

func printPlaylist(it *playlist.Playlist) {
	status := color.YellowString("pending")
	if it.Completed == playlist.Completed {
		status = color.GreenString("watched")
	}
	fmt.Printf("id:      %d\ncontent: %s\nsauce:   %s\napp:     %s\nstatus:  %s\nadded:   %s %s\n",
		it.ID, it.Content, it.Sauce, it.App, status, it.Date, it.Time)
	if it.Owner != 0 {
		fmt.Printf("owner:   %d\n", it.Owner)
	}
}
