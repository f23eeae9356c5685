// Package cards defines the card types used in the game and the
// standard catalog they are collected in.
//
// Every card belongs to one of three kinds. Treasure cards are worth
// coin, Victory cards are worth victory points, and Action cards carry
// a set of effects that apply when played. Cards are immutable values;
// a pile of sixty Coppers holds the same Copper sixty times.
package cards

import (
	"fmt"
	"io"

	"github.com/muesli/reflow/wordwrap"
)

// Kind is the base category of a card.
type Kind string

const (
	KindTreasure Kind = "Treasure"
	KindVictory  Kind = "Victory"
	KindAction   Kind = "Action"
)

// Width the game wraps prose output to, and the width of a card row in
// pile listings.
const (
	describeWidth = 70
	rowWidth      = 56
)

// Card is the interface all card kinds implement.
//
// Describe writes the card's rulebook text to w, wrapped for terminal
// display. String renders the fixed-width row used in pile listings.
type Card interface {
	Name() string
	Cost() int
	Kind() Kind
	Describe(w io.Writer)
	fmt.Stringer
}

// writeWrapped writes msg wrapped to the standard prose width, set off
// by blank lines so it reads as a block between prompts.
func writeWrapped(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n\n", wordwrap.String(msg, describeWidth))
}
