package containers

import (
	"slices"

	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/logging"
)

var log = logging.GetLogger("containers")

// Supply is the full card supply for a game: the base piles followed by
// the kingdom piles, numbered as one sequence.
type Supply struct {
	base    *Base
	kingdom *Kingdom
}

// NewSupply builds a starting supply for the given player count and
// kingdom layout. The game supports one to four players.
func NewSupply(players int, layout string) (*Supply, error) {
	if players < 1 || players > 4 {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"player count must be between 1 and 4, got %d", players)
	}

	base := NewBase(players)
	kingdom, err := NewKingdom(players, layout, len(base.Piles()))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("players", players).
		Str("layout", kingdom.Layout()).
		Msg("Built supply")

	return &Supply{base: base, kingdom: kingdom}, nil
}

// Base returns the base half of the supply.
func (s *Supply) Base() *Base {
	return s.base
}

// Kingdom returns the kingdom half of the supply.
func (s *Supply) Kingdom() *Kingdom {
	return s.kingdom
}

// Piles returns every pile, base first then kingdom, in identifier order.
func (s *Supply) Piles() []*Pile {
	return append(slices.Clone(s.base.Piles()), s.kingdom.Piles()...)
}

func (s *Supply) String() string {
	return s.base.String() + "\n\n" + s.kingdom.String()
}
