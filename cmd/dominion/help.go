package dominion

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/game"
	"github.com/arthur-debert/dominion/pkg/help"
)

// initHelp replaces cobra's help command with one that also answers
// the game's help topics and card names, like the in-game help menu.
// Anything that is neither falls back to regular command help.
func initHelp(rootCmd *cobra.Command) {
	originalHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Topics are the same ones the in-game help menu answers, and any card
name works as a topic too.

To see all available help topics:
  dominion topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			// Combine command names, topic names and card names
			var completions []string
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, help.Topics()...)
			completions = append(completions, cards.AllNames()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				// No args - show root help
				originalHelp(rootCmd, []string{})
				return
			}

			out := cmd.OutOrStdout()

			// Card names shadow topics, matching the in-game menu
			if card, ok := cards.Lookup(args[0]); ok {
				card.Describe(out)
				return
			}

			if renderTopic(cmd, args[0]) {
				return
			}

			// Not a topic - fall back to regular command help
			originalHelp(rootCmd, args)
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
}

// renderTopic renders a built-in help topic and reports whether the
// name was one. The supply topic needs a game to describe, so one is
// set up from the default options on demand.
func renderTopic(cmd *cobra.Command, topic string) bool {
	var cfg *game.Config
	if topic == "supply" {
		built, err := game.New(game.DefaultOptions())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return true
		}
		cfg = built
	}

	menu := newMenu(cfg, cmd.OutOrStdout())
	err := menu.Topic(topic)
	if err == nil {
		return true
	}
	if errors.IsErrorCode(err, errors.ErrUnknownTopic) {
		return false
	}

	// A known topic that failed to render
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return true
}
