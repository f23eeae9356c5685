package containers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dominion/pkg/cards"
)

// Pile is a container of copies of a single card, the unit a supply is
// built from. A reference card is kept aside so the pile's row can
// still be rendered once it has emptied.
type Pile struct {
	Container
	ref cards.Card
}

// NewPile builds a pile of n copies of the given card.
func NewPile(card cards.Card, n int) *Pile {
	list := make([]cards.Card, n)
	for i := range list {
		list[i] = card
	}
	return &Pile{
		Container: *New(list, 0),
		ref:       card,
	}
}

// Card returns the card this pile is made of.
func (p *Pile) Card() cards.Card {
	return p.ref
}

// renderPiles renders a pile group: a header, an underline matching its
// width, then one "id : card xcount" row per pile.
func renderPiles(header string, piles []*Pile, idStart int) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")
	for i, p := range piles {
		fmt.Fprintf(&b, "%-3d: %sx%d\n", idStart+i, p.Card(), p.Len())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
