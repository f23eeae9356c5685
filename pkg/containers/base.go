package containers

import (
	"github.com/arthur-debert/dominion/pkg/cards"
)

// Base is the base supply: the Treasure and Victory piles every game
// uses regardless of kingdom layout.
type Base struct {
	piles []*Pile
}

// NewBase builds the base supply for the given number of players.
// Copper shrinks by seven per player; the Victory piles hold 8 cards
// for one or two players and 12 for more.
func NewBase(players int) *Base {
	victory := 8
	if players > 2 {
		victory = 12
	}

	return &Base{
		piles: []*Pile{
			NewPile(cards.Copper(), 60-players*7),
			NewPile(cards.Silver(), 40),
			NewPile(cards.Gold(), 30),
			NewPile(cards.Estate(), victory),
			NewPile(cards.Duchy(), victory),
			NewPile(cards.Province(), victory),
		},
	}
}

// Piles returns the base piles in identifier order.
func (b *Base) Piles() []*Pile {
	return b.piles
}

func (b *Base) String() string {
	return renderPiles("Base Card Supply", b.piles, 0)
}
