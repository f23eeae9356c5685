package help

import (
	_ "embed"
	"strings"
)

// invalidTopic is the answer to any free-text query that cannot be
// resolved to a card or a built-in topic.
const invalidTopic = "Not a valid help topic."

// Phase and action descriptions, word-wrapped to the menu width when
// printed.
const (
	buyMsg = "Select a card from the supply to purchase by specifying the " +
		"card identifier (# next to the card). To view the available " +
		"cards again, type help supply. You must have 1 or more buy points " +
		"to make a purchase, in addition to the requisite number of coins. " +
		"If either of these conditions are not met or you do not want to " +
		"purchase a card, you may continue by typing pass."

	actionMsg = "Select an action card from your hand to play by specifying the " +
		"card identifier (# next to the card). If your hand does not " +
		"contain any action cards, you may continue to the buy phase by " +
		"typing pass."

	discardMsg = "Select a card from your hand to discard by specifying the " +
		"card identifier (# next to the card). If you choose to not " +
		"discard, you may continue by typing pass."

	trashMsg = "Select a card from your hand to trash (remove from the game) " +
		"by specifying the card identifier (# next to the card). If the " +
		"instructions specify a specific type of card to trash, you must " +
		"choose a card of that type from your hand. You can also choose to " +
		"not trash a card by typing pass."
)

//go:embed msgs/key.txt
var rawKeyText string

//go:embed msgs/rules.md
var rawRulesText string

// The embedded files carry a trailing newline; the topic frame supplies
// the surrounding blank lines instead.
var (
	keyText   = strings.TrimSpace(rawKeyText)
	rulesText = strings.TrimSpace(rawRulesText)
)
