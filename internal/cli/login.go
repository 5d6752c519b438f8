package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattyatea/esa-client/pkg/esa"
)

// newLoginCmd creates and returns a new login command
func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an esa access token in the configuration file",
		Long: `Login verifies a personal access token against the esa API and stores
it in your configuration file, together with an optional default team.

Generate a token in your team's settings under Applications.

Example:
  esa login --token=<token> --team=myteam`,
		RunE: runLogin,
	}

	cmd.Flags().String("token", "", "Personal access token")
	cmd.Flags().String("team", "", "Default team for subsequent commands")
	return cmd
}

// runLogin handles the login command execution
func runLogin(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv(accessTokenEnv)
	}
	if token == "" {
		return fmt.Errorf("no token provided. Use --token or set %s", accessTokenEnv)
	}
	team, _ := cmd.Flags().GetString("team")

	client, err := esa.NewClient(token)
	if err != nil {
		return err
	}

	// Verify the token before persisting it.
	user, err := client.AuthenticatedUser(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	cfg := &Config{
		Version:     "v1",
		AccessToken: token,
		DefaultTeam: team,
	}
	if err := cfg.WriteConfig(configFile); err != nil {
		return err
	}
	config = cfg

	okLabel.Printf("Logged in as %s\n", user.ScreenName)
	return nil
}
