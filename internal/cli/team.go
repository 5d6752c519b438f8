package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTeamCmd creates and returns the team command with its subcommands
func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect teams",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the teams you belong to",
		RunE:  runTeamList,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "get [NAME]",
		Short: "Show a team",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTeamGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "stats [NAME]",
		Short: "Show a team's activity statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTeamStats,
	})
	return cmd
}

func runTeamList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.Teams(cmd.Context(), nil)
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(resp, fieldPath)
	}

	for _, team := range resp.Teams {
		fmt.Printf("%-20s %-8s %s\n", team.Name, team.Privacy, team.Description)
	}
	return nil
}

// teamArg picks the team from the positional argument or the global flag.
func teamArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return teamFlag
}

func runTeamGet(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	team, err := client.Team(cmd.Context(), teamArg(args))
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(team, fieldPath)
	}

	fmt.Printf("%s (%s)\n", team.Name, team.Privacy)
	if team.Description != "" {
		fmt.Printf("  %s\n", team.Description)
	}
	fmt.Printf("  %s\n", team.URL)
	return nil
}

func runTeamStats(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	stats, err := client.TeamStats(cmd.Context(), teamArg(args))
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(stats, fieldPath)
	}

	fmt.Printf("members: %d\n", stats.Members)
	fmt.Printf("posts:   %d (wip %d, shipped %d)\n", stats.Posts, stats.PostsWIP, stats.PostsShipped)
	fmt.Printf("comments: %d, stars: %d\n", stats.Comments, stats.Stars)
	fmt.Printf("active users: %d daily, %d weekly, %d monthly\n",
		stats.DailyActiveUsers, stats.WeeklyActiveUsers, stats.MonthlyActiveUsers)
	return nil
}
