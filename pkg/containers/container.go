// Package containers defines the card collections a game is played
// with: the generic ordered Container, the single-card Pile, and the
// Base, Kingdom and Supply pile groups.
//
// Cards inside a container are addressed by identifier, a contiguous
// run of ints starting at the container's idStart. Identifiers are
// re-derived after every mutation, so they always reflect the current
// positions.
package containers

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/errors"
)

// Container is an ordered collection of cards with stable, contiguous
// identifiers.
type Container struct {
	cards       []cards.Card
	idStart     int
	identifiers []int
}

// New creates a container holding the given cards. The slice is copied;
// the caller keeps ownership of its own list.
func New(cardList []cards.Card, idStart int) *Container {
	c := &Container{
		cards:   slices.Clone(cardList),
		idStart: idStart,
	}
	c.renumber()
	return c
}

// renumber re-derives the identifiers from the current card positions.
func (c *Container) renumber() {
	c.identifiers = make([]int, len(c.cards))
	for i := range c.cards {
		c.identifiers[i] = i + c.idStart
	}
}

// Cards returns a copy of the cards in container order.
func (c *Container) Cards() []cards.Card {
	return slices.Clone(c.cards)
}

// Len is the number of cards currently in the container.
func (c *Container) Len() int {
	return len(c.cards)
}

// Identifiers returns a copy of the current identifiers, in order.
func (c *Container) Identifiers() []int {
	return slices.Clone(c.identifiers)
}

// IDStart is the identifier of the first card in the container.
func (c *Container) IDStart() int {
	return c.idStart
}

// Shuffle permutes the cards and renumbers them.
func (c *Container) Shuffle() {
	rand.Shuffle(len(c.cards), func(i, j int) {
		c.cards[i], c.cards[j] = c.cards[j], c.cards[i]
	})
	c.renumber()
}

// AddCards appends the given cards and renumbers the container.
func (c *Container) AddCards(cs []cards.Card) {
	c.cards = append(c.cards, cs...)
	c.renumber()
}

// RemoveCards removes the cards with the given identifiers and returns
// them, highest identifier first. The container is left untouched on
// error: asking for more cards than it holds, an identifier outside
// the current range, or the same identifier twice.
func (c *Container) RemoveCards(ids []int) ([]cards.Card, error) {
	if len(ids) > len(c.cards) {
		return nil, errors.Newf(errors.ErrContainerRange,
			"cannot remove %d cards from a container with %d cards", len(ids), len(c.cards)).
			WithDetail("requested", len(ids)).
			WithDetail("held", len(c.cards))
	}

	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	for i, id := range sorted {
		idx := id - c.idStart
		if idx < 0 || idx >= len(c.cards) {
			return nil, errors.Newf(errors.ErrContainerRange,
				"identifier %d is not in this container", id).
				WithDetail("identifier", id)
		}
		if i > 0 && sorted[i-1] == id {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"identifier %d given more than once", id)
		}
	}

	// Remove back to front so earlier indexes stay valid.
	removed := make([]cards.Card, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		idx := sorted[i] - c.idStart
		removed = append(removed, c.cards[idx])
		c.cards = slices.Delete(c.cards, idx, idx+1)
	}

	c.renumber()
	return removed, nil
}

// String renders the container as "id : card" rows. An empty container
// renders as the empty string.
func (c *Container) String() string {
	var b strings.Builder
	for i, card := range c.cards {
		fmt.Fprintf(&b, "%-3d: %s\n", c.identifiers[i], card)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
