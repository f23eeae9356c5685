package cards

import (
	"fmt"
	"io"
)

// Treasure is a card worth coin when played.
type Treasure struct {
	name string
	cost int
	coin int
}

func (t *Treasure) Name() string { return t.name }
func (t *Treasure) Cost() int    { return t.cost }
func (t *Treasure) Kind() Kind   { return KindTreasure }

// Coin is the amount of currency the card is worth.
func (t *Treasure) Coin() int { return t.coin }

// Describe writes the card's rulebook text to w.
func (t *Treasure) Describe(w io.Writer) {
	writeWrapped(w, fmt.Sprintf("%s. This card is worth %d coin.", t.name, t.coin))
}

// String renders the fixed-width row used in pile listings.
func (t *Treasure) String() string {
	row := fmt.Sprintf("%-12s(Type T, Cost %d, +%d C)", t.name, t.cost, t.coin)
	return fmt.Sprintf("%-*s", rowWidth, row)
}

// Copper costs 0 and is worth 1 coin.
func Copper() *Treasure {
	return &Treasure{name: "Copper", cost: 0, coin: 1}
}

// Silver costs 3 and is worth 2 coin.
func Silver() *Treasure {
	return &Treasure{name: "Silver", cost: 3, coin: 2}
}

// Gold costs 6 and is worth 3 coin.
func Gold() *Treasure {
	return &Treasure{name: "Gold", cost: 6, coin: 3}
}
