package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattyatea/esa-client/pkg/esa"
)

// newUserCmd creates and returns the user command
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user",
		RunE:  runUser,
	}
	cmd.Flags().Bool("teams", false, "Include the teams the user belongs to")
	return cmd
}

func runUser(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	includeTeams, _ := cmd.Flags().GetBool("teams")
	user, err := client.AuthenticatedUser(cmd.Context(), &esa.UserGetOptions{IncludeTeams: includeTeams})
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(user, fieldPath)
	}

	fmt.Printf("%s (%s)\n", user.Name, user.ScreenName)
	fmt.Printf("  email: %s\n", user.Email)
	for _, team := range user.Teams {
		fmt.Printf("  team: %s\n", team.Name)
	}
	return nil
}
