package dominion

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A terminal rules reference for Dominion"
	MsgRootLong        = "dominion is the rules reference for a terminal game of Dominion.\nIt explains the phases of a turn, describes every card in the base\nset, and renders the starting supply for a given table."
	MsgRulesShort      = "Show the rule summary"
	MsgCardShort       = "Describe a card"
	MsgCardLong        = "Describe a card from the base set. Card names are matched case-insensitively."
	MsgCardsShort      = "List the cards in the base set"
	MsgCardsLong       = "List the cards in the base set, grouped by kind."
	MsgSupplyShort     = "Render a starting supply"
	MsgSupplyLong      = "Build and render the starting supply for a table. Flags override\nthe optional dominion.toml setup file."
	MsgTopicsShort     = "List the help topics"
	MsgTopicsLong      = "Display the built-in help topics and the card names that can be used as topics."
	MsgCompendiumShort = "Export the card catalog as XML"
	MsgCompendiumLong  = "Export the card catalog as an XML card database for external deck tools."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Output headers, in the style package's markup
	MsgTopicsHeader    = "[title]Help topics:[/title]"
	MsgCardTopicsNote  = "[title]Any card name also works as a topic:[/title]"
	MsgTopicsUsageHint = "Use \"{{cmd}} help <topic>\" to read about a topic."

	// Status messages
	MsgCompendiumWritten = "Wrote %d cards to %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to a dominion.toml setup file"
	MsgFlagPlayers = "Number of players (1-4)"
	MsgFlagKingdom = "Kingdom layout: first_game, solo or random"
	MsgFlagKind    = "Only list one kind: treasure, victory or action"
	MsgFlagOutput  = "Write to a file instead of stdout"
)

// Long messages embedded from files
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
