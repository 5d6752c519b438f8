package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	configFile string
	teamFlag   string
	fieldPath  string
	verbose    bool
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "esa [command] [flags]",
	Short: "esa CLI - A command line interface for the esa.io team wiki",
	Long: `esa CLI is a command line interface for the esa.io team wiki.
It lets you browse and edit posts, comments, tags and emojis from the terminal.

Examples:
  # Store your access token and default team
  esa login --token=<token> --team=myteam

  # List posts
  esa post list -q "wip:false"

  # Show a post
  esa post get 123

  # Create a post
  esa post create --name "meeting/2026-08-26" --body-file notes.md

  # Upload a custom emoji
  esa emoji create party_parrot --image parrot.png`,
	PersistentPreRunE: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Set up persistent flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().StringVarP(&teamFlag, "team", "t", "", "Team to act on, overriding the configured default")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&fieldPath, "field", "f", "", "Print a single value selected by gjson path, e.g. 'posts.0.name'")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API exchange to stderr")

	// Add commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newPostCmd())
	rootCmd.AddCommand(newCommentCmd())
	rootCmd.AddCommand(newTagCmd())
	rootCmd.AddCommand(newEmojiCmd())
}

// preRunHandlePersistents loads configuration before any command other
// than login runs.
func preRunHandlePersistents(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "login" || cmd.Name() == "version" {
		return nil
	}
	return LoadConfig(configFile)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, ErrAlreadyHandled) {
			errorLabel.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// Version is stamped at build time via -ldflags.
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("esa", Version)
		},
	}
}
