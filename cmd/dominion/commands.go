package dominion

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dominion/internal/version"
	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/compendium"
	"github.com/arthur-debert/dominion/pkg/game"
	"github.com/arthur-debert/dominion/pkg/help"
	"github.com/arthur-debert/dominion/pkg/logging"
	"github.com/arthur-debert/dominion/pkg/style"
	"github.com/arthur-debert/dominion/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "dominion",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "reference",
		Title: "REFERENCE:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newCardCmd())
	rootCmd.AddCommand(newCardsCmd())
	rootCmd.AddCommand(newSupplyCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompendiumCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Replace cobra's help with the topic-aware help command
	initHelp(rootCmd)

	return rootCmd
}

// outputFormat resolves how output to w should be styled.
func outputFormat(w io.Writer) ui.Format {
	if f, ok := w.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}

// newMenu builds the help menu used by a command, picking the markdown
// renderer that matches the terminal.
func newMenu(cfg *game.Config, w io.Writer) *help.Menu {
	opts := []help.Option{help.WithWriter(w)}
	if outputFormat(w) == ui.FormatTerminal {
		opts = append(opts, help.WithRenderer(help.NewGlamourRenderer()))
	}
	return help.New(cfg, opts...)
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "reference",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newMenu(nil, cmd.OutOrStdout()).Topic("rules")
		},
	}
}

func newCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "card <name>",
		Short:   MsgCardShort,
		Long:    MsgCardLong,
		Example: "  dominion card moat\n  dominion card Laboratory",
		GroupID: "reference",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return cards.AllNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := cards.Get(args[0])
			if err != nil {
				return err
			}
			card.Describe(cmd.OutOrStdout())
			return nil
		},
	}
}

func newCardsCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:     "cards",
		Short:   MsgCardsShort,
		Long:    MsgCardsLong,
		GroupID: "reference",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := cards.All()
			if kindName != "" {
				kind, err := cards.ParseKind(kindName)
				if err != nil {
					return err
				}
				list = cards.ByKind(kind)
			}

			out := cmd.OutOrStdout()
			renderer := style.ForFormat(outputFormat(out))
			fmt.Fprintln(out, renderer.RenderCardList(list))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", MsgFlagKind)
	return cmd
}

func newSupplyCmd() *cobra.Command {
	var (
		configPath string
		players    int
		kingdom    string
	)

	cmd := &cobra.Command{
		Use:     "supply",
		Short:   MsgSupplyShort,
		Long:    MsgSupplyLong,
		Example: "  dominion supply\n  dominion supply --players 3 --kingdom random",
		GroupID: "reference",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := game.LoadOptions(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("players") {
				opts.Players = defaultPlayerNames(players)
			}
			if cmd.Flags().Changed("kingdom") {
				opts.Kingdom = kingdom
			}

			cfg, err := game.New(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := style.ForFormat(outputFormat(out))
			fmt.Fprintln(out, renderer.RenderSupply(cfg.Supply))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", game.DefaultOptionsPath(), MsgFlagConfig)
	cmd.Flags().IntVar(&players, "players", 2, MsgFlagPlayers)
	cmd.Flags().StringVar(&kingdom, "kingdom", "", MsgFlagKingdom)
	return cmd
}

// defaultPlayerNames makes up names for an anonymous table of n.
func defaultPlayerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}
	return names
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "reference",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.Render(MsgTopicsHeader))
			for _, topic := range help.Topics() {
				fmt.Fprintf(out, "  %s\n", topic)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, style.Render(MsgCardTopicsNote))
			fmt.Fprintf(out, "  %s\n", strings.Join(cards.AllNames(), ", "))
			fmt.Fprintln(out)
			fmt.Fprintln(out, style.RenderTemplate(MsgTopicsUsageHint,
				map[string]string{"cmd": cmd.Root().Name()}))
		},
	}
}

func newCompendiumCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:     "compendium",
		Short:   MsgCompendiumShort,
		Long:    MsgCompendiumLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return compendium.Write(cmd.OutOrStdout())
			}
			if err := compendium.WriteFile(outputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgCompendiumWritten, len(cards.All()), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dominion version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
