package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattyatea/esa-client/pkg/esa"
)

var (
	emojiAll       bool
	emojiImageFile string
	emojiOrigin    string
)

// newEmojiCmd creates and returns the emoji command with its subcommands
func newEmojiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "Manage custom emojis",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the team's emojis",
		RunE:  runEmojiList,
	}
	listCmd.Flags().BoolVar(&emojiAll, "all", false, "Include standard emojis, not just custom ones")
	cmd.AddCommand(listCmd)

	createCmd := &cobra.Command{
		Use:   "create CODE",
		Short: "Register a custom emoji",
		Long: `Register a custom emoji from an image file, or alias an existing one.

Examples:
  esa emoji create party_parrot --image parrot.png
  esa emoji create conga_parrot --origin party_parrot`,
		Args: cobra.ExactArgs(1),
		RunE: runEmojiCreate,
	}
	createCmd.Flags().StringVar(&emojiImageFile, "image", "", "Image file (png or gif, under 64KB)")
	createCmd.Flags().StringVar(&emojiOrigin, "origin", "", "Existing emoji code to alias")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete CODE",
		Short: "Delete a custom emoji",
		Args:  cobra.ExactArgs(1),
		RunE:  runEmojiDelete,
	})

	return cmd
}

func runEmojiList(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	resp, err := client.Emojis(cmd.Context(), teamFlag, &esa.EmojiListOptions{IncludeAll: emojiAll})
	if err != nil {
		return err
	}

	if jsonOutput || fieldPath != "" {
		return printJSON(resp, fieldPath)
	}

	for _, emoji := range resp.Emojis {
		aliases := ""
		if len(emoji.Aliases) > 1 {
			aliases = " (" + strings.Join(emoji.Aliases[1:], ", ") + ")"
		}
		fmt.Printf(":%s:%s\n", emoji.Code, aliases)
	}
	return nil
}

func runEmojiCreate(cmd *cobra.Command, args []string) error {
	if emojiImageFile == "" && emojiOrigin == "" {
		return fmt.Errorf("either --image or --origin is required")
	}

	params := &esa.EmojiCreateParams{
		Code:       args[0],
		OriginCode: emojiOrigin,
	}
	if emojiImageFile != "" {
		image, err := os.ReadFile(emojiImageFile)
		if err != nil {
			return fmt.Errorf("failed to read image file: %w", err)
		}
		params.Image = image
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	emoji, err := client.CreateEmoji(cmd.Context(), teamFlag, params)
	if err != nil {
		return err
	}

	okLabel.Printf("Registered :%s:\n", emoji.Code)
	return nil
}

func runEmojiDelete(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	if err := client.DeleteEmoji(cmd.Context(), teamFlag, args[0]); err != nil {
		return err
	}
	okLabel.Printf("Deleted :%s:\n", args[0])
	return nil
}
