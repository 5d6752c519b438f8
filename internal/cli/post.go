package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mattyatea/esa-client/pkg/esa"
)

var (
	// post list flags
	postSearch  string
	postSort    string
	postOrder   string
	postPage    int
	postPerPage int

	// post create/update flags
	postName     string
	postBodyFile string
	postCategory string
	postTags     []string
	postMessage  string
	postWIP      bool
	postShip     bool
)

// newPostCmd creates and returns the post command with its subcommands
func newPostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Browse and edit posts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Long: `List posts in the team. The search query uses esa's search syntax.

Examples:
  esa post list
  esa post list -q "category:docs wip:false"
  esa post list --sort stars --order desc`,
		RunE: runPostList,
	}
	listCmd.Flags().StringVarP(&postSearch, "query", "q", "", "Search query, e.g. 'category:docs wip:false'")
	listCmd.Flags().StringVar(&postSort, "sort", "", "Sort key: updated, created, number, stars, watches, comments, best_match")
	listCmd.Flags().StringVar(&postOrder, "order", "", "Sort order: asc or desc")
	listCmd.Flags().IntVar(&postPage, "page", 0, "Page to fetch")
	listCmd.Flags().IntVar(&postPerPage, "per-page", 0, "Results per page (max 100)")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get NUMBER",
		Short: "Show a post",
		Args:  cobra.ExactArgs(1),
		RunE:  runPostGet,
	})

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Long: `Create a post. The body is read from --body-file, or stdin when the
file is "-".

Examples:
  esa post create --name "meeting/2026-08-26" --body-file notes.md
  cat notes.md | esa post create --name "draft" --wip --body-file -`,
		RunE: runPostCreate,
	}
	createCmd.Flags().StringVar(&postName, "name", "", "Post title (required)")
	createCmd.Flags().StringVar(&postBodyFile, "body-file", "", "File holding the Markdown body, '-' for stdin")
	createCmd.Flags().StringVar(&postCategory, "category", "", "Category path, e.g. 'dev/docs'")
	createCmd.Flags().StringSliceVar(&postTags, "tag", nil, "Tag to attach, repeatable")
	createCmd.Flags().StringVar(&postMessage, "message", "", "Commit message")
	createCmd.Flags().BoolVar(&postWIP, "wip", false, "Create as work in progress")
	createCmd.MarkFlagRequired("name")
	cmd.AddCommand(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update NUMBER",
		Short: "Update a post",
		Args:  cobra.ExactArgs(1),
		RunE:  runPostUpdate,
	}
	updateCmd.Flags().StringVar(&postName, "name", "", "New post title")
	updateCmd.Flags().StringVar(&postBodyFile, "body-file", "", "File holding the new Markdown body, '-' for stdin")
	updateCmd.Flags().StringVar(&postCategory, "category", "", "New category path")
	updateCmd.Flags().StringSliceVar(&postTags, "tag", nil, "Tag to attach, repeatable")
	updateCmd.Flags().StringVar(&postMessage, "message", "", "Commit message")
	updateCmd.Flags().BoolVar(&postShip, "ship", false, "Mark the post as shipped (wip=false)")
	cmd.AddCommand(updateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NUMBER",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE:  runPostDelete,
	})

	return cmd
}

func runPostList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.Posts(cmd.Context(), teamFlag, &esa.PostListOptions{
		Query:   postSearch,
		Sort:    postSort,
		Order:   postOrder,
		Page:    postPage,
		PerPage: postPerPage,
	})
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(resp, fieldPath)
	}

	for _, post := range resp.Posts {
		marker := " "
		if post.WIP {
			marker = "*"
		}
		fmt.Printf("#%-6d %s %s\n", post.Number, marker, post.FullName)
	}
	if !resp.NextPage.IsNil() {
		fmt.Printf("(%d total, next page %d)\n", resp.TotalCount, resp.NextPage.Int())
	}
	return nil
}

func runPostGet(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post number %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	post, err := client.Post(cmd.Context(), teamFlag, number, nil)
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(post, fieldPath)
	}

	fmt.Printf("#%d %s\n", post.Number, post.FullName)
	fmt.Printf("by %s, revision %d, updated %s\n\n",
		post.UpdatedBy.ScreenName, post.RevisionNumber, post.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Println(post.BodyMD)
	return nil
}

// readBodyFile loads the Markdown body from a file, or stdin for "-".
func readBodyFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "-" {
		data, err := os.ReadFile("/dev/stdin")
		if err != nil {
			return "", fmt.Errorf("failed to read body from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read body file: %w", err)
	}
	return string(data), nil
}

func runPostCreate(cmd *cobra.Command, args []string) error {
	body, err := readBodyFile(postBodyFile)
	if err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	params := &esa.PostCreateParams{
		Name:     postName,
		BodyMD:   body,
		Category: postCategory,
		Tags:     postTags,
		Message:  postMessage,
	}
	if postWIP {
		params.WIP = esa.Bool(true)
	}

	post, err := client.CreatePost(cmd.Context(), teamFlag, params)
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(post, fieldPath)
	}
	okLabel.Printf("Created #%d %s\n", post.Number, post.URL)
	return nil
}

func runPostUpdate(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post number %q", args[0])
	}

	body, err := readBodyFile(postBodyFile)
	if err != nil {
		return err
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	params := &esa.PostUpdateParams{
		Name:     postName,
		BodyMD:   body,
		Category: postCategory,
		Tags:     postTags,
		Message:  postMessage,
	}
	if postShip {
		params.WIP = esa.Bool(false)
	}

	post, err := client.UpdatePost(cmd.Context(), teamFlag, number, params)
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(post, fieldPath)
	}
	okLabel.Printf("Updated #%d, revision %d\n", post.Number, post.RevisionNumber)
	return nil
}

func runPostDelete(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post number %q", args[0])
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeletePost(cmd.Context(), teamFlag, number); err != nil {
		return err
	}
	okLabel.Printf("Deleted #%d\n", number)
	return nil
}
