package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mattyatea/esa-client/pkg/esa"
)

var commentBody string

// newCommentCmd creates and returns the comment command with its
// subcommands
func newCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Browse and add comments",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list POST_NUMBER",
		Short: "List the comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE:  runCommentList,
	})

	addCmd := &cobra.Command{
		Use:   "add POST_NUMBER",
		Short: "Add a comment to a post",
		Args:  cobra.ExactArgs(1),
		RunE:  runCommentAdd,
	}
	addCmd.Flags().StringVar(&commentBody, "body", "", "Comment body in Markdown (required)")
	addCmd.MarkFlagRequired("body")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete COMMENT_ID",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE:  runCommentDelete,
	})

	return cmd
}

func runCommentList(cmd *cobra.Command, args []string) error {
	postNumber, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post number %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.PostComments(cmd.Context(), teamFlag, postNumber, nil)
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(resp, fieldPath)
	}

	for _, comment := range resp.Comments {
		fmt.Printf("%d  %s  %s\n", comment.ID, comment.CreatedBy.ScreenName,
			comment.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Println(comment.BodyMD)
		fmt.Println()
	}
	return nil
}

func runCommentAdd(cmd *cobra.Command, args []string) error {
	postNumber, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post number %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	comment, err := client.CreateComment(cmd.Context(), teamFlag, postNumber, &esa.CommentParams{
		BodyMD: commentBody,
	})
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(comment, fieldPath)
	}
	okLabel.Printf("Commented: %s\n", comment.URL)
	return nil
}

func runCommentDelete(cmd *cobra.Command, args []string) error {
	commentID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid comment id %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteComment(cmd.Context(), teamFlag, commentID); err != nil {
		return err
	}
	okLabel.Printf("Deleted comment %d\n", commentID)
	return nil
}
