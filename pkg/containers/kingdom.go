package containers

import (
	"math/rand"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/errors"
)

// Layout names selectable for the kingdom supply.
const (
	LayoutFirstGame = "first_game"
	LayoutSolo      = "solo"
	LayoutRandom    = "random"
)

// Each kingdom pile starts with ten cards.
const pileSize = 10

// Layouts returns the selectable kingdom layout names.
func Layouts() []string {
	return []string{LayoutFirstGame, LayoutSolo, LayoutRandom}
}

// Kingdom is the kingdom supply: the ten Action piles chosen for a
// game. Its identifiers continue from where the base supply's stop.
type Kingdom struct {
	piles   []*Pile
	idStart int
	layout  string
}

// NewKingdom builds the kingdom supply. A single player always plays
// the solo layout, whatever was asked for. An unknown layout name is
// an error.
func NewKingdom(players int, layout string, idStart int) (*Kingdom, error) {
	if players == 1 {
		layout = LayoutSolo
	}

	var names []string
	switch layout {
	case LayoutFirstGame:
		names = []string{
			"Cellar", "Market", "Merchant", "Militia", "Mine",
			"Moat", "Remodel", "Smithy", "Village", "Workshop",
		}
	case LayoutSolo:
		names = []string{
			"Cellar", "Market", "Merchant", "Mine", "Remodel",
			"Smithy", "Village", "Workshop", "Festival", "Laboratory",
		}
	case LayoutRandom:
		names = randomActions(pileSize)
	default:
		return nil, errors.Newf(errors.ErrUnknownLayout, "unknown kingdom layout %q", layout).
			WithDetail("layout", layout)
	}

	k := &Kingdom{idStart: idStart, layout: layout}
	for _, name := range names {
		k.piles = append(k.piles, NewPile(cards.MustCard(name), pileSize))
	}
	return k, nil
}

// randomActions samples n distinct action cards from the catalog.
func randomActions(n int) []string {
	names := cards.Names(cards.KindAction)
	rand.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
	return names[:n]
}

// Piles returns the kingdom piles in identifier order.
func (k *Kingdom) Piles() []*Pile {
	return k.piles
}

// Layout is the layout the kingdom was actually built with.
func (k *Kingdom) Layout() string {
	return k.layout
}

func (k *Kingdom) String() string {
	return renderPiles("Kingdom Card Supply", k.piles, k.idStart)
}
