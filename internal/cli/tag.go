package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTagCmd creates and returns the tag command
func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Browse tags",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the team's tags with post counts",
		RunE:  runTagList,
	})
	return cmd
}

func runTagList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.Tags(cmd.Context(), teamFlag, nil)
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(resp, fieldPath)
	}

	for _, tag := range resp.Tags {
		fmt.Printf("%-30s %d\n", tag.Name, tag.PostsCount)
	}
	return nil
}
