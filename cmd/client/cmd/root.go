package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	authcmd "watchlater/cmd/client/cmd/auth"
	playlistcmd "watchlater/cmd/client/cmd/playlist"
	"watchlater/cmd/client/cmd/types"
	"watchlater/internal/app/client"
	"watchlater/internal/app/client/config"
	"watchlater/internal/utils/logger"
)

var (
	serverURL string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "watchlater",
	Short: "watchlater - bookmark videos to watch later",
	Long: `watchlater is the command-line client for the watch-later service.

Bookmark video URLs, browse and sort them, and mark them watched. The
platform (YouTube, Vimeo, ...) is derived from the URL automatically.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	viper.AutomaticEnv()

	if serverURL != "" {
		viper.Set("server_address", serverURL)
	}
	if configDir != "" {
		viper.Set("config_dir", configDir)
	}

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "watchlater server address (host:port)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory for the local cache and session")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(authcmd.AuthCmd)
	rootCmd.AddCommand(playlistcmd.PlaylistCmd)
}
