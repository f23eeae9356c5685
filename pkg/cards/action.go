package cards

import (
	"fmt"
	"io"
	"strings"
)

// Effects holds what playing an Action card grants. The zero value
// means the card does nothing beyond its free-form text.
type Effects struct {
	Actions int    // additional action points
	Buys    int    // additional buy points
	Cards   int    // cards drawn
	Coins   int    // additional coin
	Text    string // free-form effect, resolved by the game loop
}

// parts renders the non-zero numeric effects in the game's shorthand.
// The order is fixed: A, B, Ca, C.
func (e Effects) parts() []string {
	var parts []string
	if e.Actions > 0 {
		parts = append(parts, fmt.Sprintf("+%d A", e.Actions))
	}
	if e.Buys > 0 {
		parts = append(parts, fmt.Sprintf("+%d B", e.Buys))
	}
	if e.Cards > 0 {
		parts = append(parts, fmt.Sprintf("+%d Ca", e.Cards))
	}
	if e.Coins > 0 {
		parts = append(parts, fmt.Sprintf("+%d C", e.Coins))
	}
	return parts
}

// Action is a card played during the action phase of a turn.
type Action struct {
	name         string
	cost         int
	attack       bool
	reaction     bool
	singlePlayer bool
	effects      Effects
}

func (a *Action) Name() string { return a.name }
func (a *Action) Cost() int    { return a.cost }
func (a *Action) Kind() Kind   { return KindAction }

// Attack reports whether the card attacks the other players.
func (a *Action) Attack() bool { return a.attack }

// Reaction reports whether the card can be revealed in response to an attack.
func (a *Action) Reaction() bool { return a.reaction }

// SinglePlayer reports whether the card affects only the player who plays it.
func (a *Action) SinglePlayer() bool { return a.singlePlayer }

// Effects returns what playing the card grants.
func (a *Action) Effects() Effects { return a.effects }

// Describe writes the card's rulebook text to w.
func (a *Action) Describe(w io.Writer) {
	info := fmt.Sprintf("%s card.", a.name)

	parts := a.effects.parts()
	if len(parts) > 0 {
		info += " Playing this card results in the following: "
		info += strings.Join(parts, ", ") + "."
	}

	if a.effects.Text != "" {
		info += " This card has the following effect: "
		info += a.effects.Text
	}

	writeWrapped(w, info)
}

// String renders the fixed-width row used in pile listings. The type
// column is A for plain actions, AA for attacks, AR for reactions, and
// a trailing * marks a free-form effect.
func (a *Action) String() string {
	typeStr := "A"
	if a.attack {
		typeStr += "A"
	} else if a.reaction {
		typeStr += "R"
	}

	row := fmt.Sprintf("%-12s(Type %s, Cost %d, ", a.name, typeStr, a.cost)
	parts := a.effects.parts()
	row += strings.Join(parts, ", ")

	if a.effects.Text != "" {
		if len(parts) > 0 {
			row += ", *"
		} else {
			row += "*"
		}
	}
	row += ")"

	return fmt.Sprintf("%-*s", rowWidth, row)
}

// Cellar costs 2 and adds an action while cycling the hand.
func Cellar() *Action {
	return &Action{
		name:         "Cellar",
		cost:         2,
		singlePlayer: true,
		effects: Effects{
			Actions: 1,
			Text:    "Discard any number of cards, then draw that many.",
		},
	}
}

// Market costs 5 and grants one of everything.
func Market() *Action {
	return &Action{
		name:         "Market",
		cost:         5,
		singlePlayer: true,
		effects: Effects{
			Actions: 1,
			Buys:    1,
			Cards:   1,
			Coins:   1,
		},
	}
}

// Merchant costs 3 and rewards the first Silver played in a turn.
func Merchant() *Action {
	return &Action{
		name:         "Merchant",
		cost:         3,
		singlePlayer: true,
		effects: Effects{
			Actions: 1,
			Cards:   1,
			Text:    "The first time you play a silver this turn, +1 C.",
		},
	}
}

// Militia costs 4. It is an attack card.
func Militia() *Action {
	return &Action{
		name:   "Militia",
		cost:   4,
		attack: true,
		effects: Effects{
			Coins: 2,
			Text:  "Each other player discards down to 3 cards in hand.",
		},
	}
}

// Mine costs 5 and upgrades a Treasure in hand.
func Mine() *Action {
	return &Action{
		name:         "Mine",
		cost:         5,
		singlePlayer: true,
		effects: Effects{
			Text: "You may trash a Treasure from your hand. Gain a Treasure to your hand costing up to 3 C more than it.",
		},
	}
}

// Moat costs 2. It is a reaction card that blocks attacks.
func Moat() *Action {
	return &Action{
		name:     "Moat",
		cost:     2,
		reaction: true,
		effects: Effects{
			Cards: 2,
			Text:  "When another player plays an Attack card, you may first reveal this from your hand, to be unaffected by it.",
		},
	}
}

// Remodel costs 4 and trades a card up.
func Remodel() *Action {
	return &Action{
		name:         "Remodel",
		cost:         4,
		singlePlayer: true,
		effects: Effects{
			Text: "Trash a card from your hand. Gain a card costing up to 2 C more than it.",
		},
	}
}

// Smithy costs 4 and draws three cards.
func Smithy() *Action {
	return &Action{
		name:         "Smithy",
		cost:         4,
		singlePlayer: true,
		effects: Effects{
			Cards: 3,
		},
	}
}

// Village costs 3 and adds two actions and a card.
func Village() *Action {
	return &Action{
		name:         "Village",
		cost:         3,
		singlePlayer: true,
		effects: Effects{
			Actions: 2,
			Cards:   1,
		},
	}
}

// Workshop costs 3 and gains a cheap card.
func Workshop() *Action {
	return &Action{
		name:         "Workshop",
		cost:         3,
		singlePlayer: true,
		effects: Effects{
			Text: "Gain a card costing up to 4 coin.",
		},
	}
}

// Festival costs 5 and grants actions, a buy and coin.
func Festival() *Action {
	return &Action{
		name:         "Festival",
		cost:         5,
		singlePlayer: true,
		effects: Effects{
			Actions: 2,
			Buys:    1,
			Coins:   2,
		},
	}
}

// Laboratory costs 5 and draws two cards with an action back.
func Laboratory() *Action {
	return &Action{
		name:         "Laboratory",
		cost:         5,
		singlePlayer: true,
		effects: Effects{
			Actions: 1,
			Cards:   2,
		},
	}
}
