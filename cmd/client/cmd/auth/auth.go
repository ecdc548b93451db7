package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"watchlater/cmd/client/cmd/types"
	"watchlater/internal/app/client"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account and session commands",
}

func init() {
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(whoamiCmd)
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("client is not initialized")
	}
	return app, nil
}

func promptCredentials() (string, string, error) {
	fmt.Print("Email: ")
	var email string
	_, _ = fmt.Scanln(&email)
	email = strings.TrimSpace(email)

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}

	return email, string(password), nil
}
