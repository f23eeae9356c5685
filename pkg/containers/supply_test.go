package containers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/containers"
	"github.com/arthur-debert/dominion/pkg/errors"
)

func TestNewPile(t *testing.T) {
	p := containers.NewPile(cards.Copper(), 3)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "Copper", p.Card().Name())

	// The reference card survives the pile emptying
	_, err := p.RemoveCards(p.Identifiers())
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "Copper", p.Card().Name())
}

func TestNewBase(t *testing.T) {
	tests := []struct {
		name        string
		players     int
		wantCopper  int
		wantVictory int
	}{
		{"two players", 2, 46, 8},
		{"three players", 3, 39, 12},
		{"four players", 4, 32, 12},
		{"solo", 1, 53, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := containers.NewBase(tt.players)
			piles := base.Piles()
			require.Len(t, piles, 6)

			wantNames := []string{"Copper", "Silver", "Gold", "Estate", "Duchy", "Province"}
			for i, p := range piles {
				assert.Equal(t, wantNames[i], p.Card().Name())
			}

			assert.Equal(t, tt.wantCopper, piles[0].Len())
			assert.Equal(t, 40, piles[1].Len())
			assert.Equal(t, 30, piles[2].Len())
			for _, i := range []int{3, 4, 5} {
				assert.Equal(t, tt.wantVictory, piles[i].Len())
			}
		})
	}
}

func TestNewKingdom(t *testing.T) {
	t.Run("first game layout", func(t *testing.T) {
		k, err := containers.NewKingdom(2, containers.LayoutFirstGame, 6)
		require.NoError(t, err)

		want := []string{
			"Cellar", "Market", "Merchant", "Militia", "Mine",
			"Moat", "Remodel", "Smithy", "Village", "Workshop",
		}
		piles := k.Piles()
		require.Len(t, piles, 10)
		for i, p := range piles {
			assert.Equal(t, want[i], p.Card().Name())
			assert.Equal(t, 10, p.Len())
		}
		assert.Equal(t, containers.LayoutFirstGame, k.Layout())
	})

	t.Run("solo layout drops the multiplayer cards", func(t *testing.T) {
		k, err := containers.NewKingdom(2, containers.LayoutSolo, 6)
		require.NoError(t, err)

		var names []string
		for _, p := range k.Piles() {
			names = append(names, p.Card().Name())
		}
		assert.NotContains(t, names, "Militia")
		assert.NotContains(t, names, "Moat")
		assert.Contains(t, names, "Festival")
		assert.Contains(t, names, "Laboratory")
	})

	t.Run("one player always gets the solo layout", func(t *testing.T) {
		k, err := containers.NewKingdom(1, containers.LayoutFirstGame, 6)
		require.NoError(t, err)
		assert.Equal(t, containers.LayoutSolo, k.Layout())
	})

	t.Run("random layout picks ten distinct action piles", func(t *testing.T) {
		k, err := containers.NewKingdom(2, containers.LayoutRandom, 6)
		require.NoError(t, err)

		piles := k.Piles()
		require.Len(t, piles, 10)

		seen := make(map[string]bool)
		for _, p := range piles {
			card := p.Card()
			assert.Equal(t, cards.KindAction, card.Kind())
			assert.False(t, seen[card.Name()], "duplicate pile %s", card.Name())
			seen[card.Name()] = true
		}
	})

	t.Run("unknown layout is an error", func(t *testing.T) {
		_, err := containers.NewKingdom(2, "prosperity", 6)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownLayout))
	})
}

func TestLayouts(t *testing.T) {
	assert.Equal(t,
		[]string{"first_game", "solo", "random"},
		containers.Layouts())
}

func TestNewSupply(t *testing.T) {
	t.Run("base and kingdom as one sequence", func(t *testing.T) {
		s, err := containers.NewSupply(2, containers.LayoutFirstGame)
		require.NoError(t, err)

		assert.Len(t, s.Base().Piles(), 6)
		assert.Len(t, s.Kingdom().Piles(), 10)
		assert.Len(t, s.Piles(), 16)
	})

	t.Run("player count is validated", func(t *testing.T) {
		for _, players := range []int{0, -1, 5} {
			_, err := containers.NewSupply(players, containers.LayoutFirstGame)
			require.Error(t, err, "players=%d", players)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		}
	})

	t.Run("layout errors propagate", func(t *testing.T) {
		_, err := containers.NewSupply(2, "prosperity")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownLayout))
	})
}

func TestSupplyString(t *testing.T) {
	s, err := containers.NewSupply(2, containers.LayoutFirstGame)
	require.NoError(t, err)

	out := s.String()

	// Both sections with their underlined headers
	assert.Contains(t, out, "Base Card Supply\n----------------\n")
	assert.Contains(t, out, "Kingdom Card Supply\n-------------------\n")

	// Base rows carry pile counts after the fixed-width card row
	lines := strings.Split(out, "\n")
	assert.Equal(t, "0  : Copper      (Type T, Cost 0, +1 C)", strings.TrimRight(strings.TrimSuffix(lines[2], "x46"), " "))
	assert.True(t, strings.HasSuffix(lines[2], "x46"), "copper pile holds 60 minus 7 per player")
	assert.True(t, strings.HasSuffix(lines[3], "x40"), "silver pile holds 40")

	// Kingdom identifiers continue after the base's
	assert.Contains(t, out, "6  : Cellar")
	assert.Contains(t, out, "15 : Workshop")

	// Sections are separated by a blank line
	assert.Contains(t, out, "x8\n\nKingdom Card Supply")
}
