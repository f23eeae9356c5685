package cards

import (
	"fmt"
	"io"
)

// Victory is a card worth victory points at the end of the game.
type Victory struct {
	name    string
	cost    int
	victory int
}

func (v *Victory) Name() string { return v.name }
func (v *Victory) Cost() int    { return v.cost }
func (v *Victory) Kind() Kind   { return KindVictory }

// Points is the number of victory points the card is worth.
func (v *Victory) Points() int { return v.victory }

// Describe writes the card's rulebook text to w.
func (v *Victory) Describe(w io.Writer) {
	writeWrapped(w, fmt.Sprintf("%s. This card is worth %d victory points.", v.name, v.victory))
}

// String renders the fixed-width row used in pile listings.
func (v *Victory) String() string {
	row := fmt.Sprintf("%-12s(Type V, Cost %d, +%d V)", v.name, v.cost, v.victory)
	return fmt.Sprintf("%-*s", rowWidth, row)
}

// Estate costs 2 and is worth 1 victory point.
func Estate() *Victory {
	return &Victory{name: "Estate", cost: 2, victory: 1}
}

// Duchy costs 5 and is worth 3 victory points.
func Duchy() *Victory {
	return &Victory{name: "Duchy", cost: 5, victory: 3}
}

// Province costs 8 and is worth 6 victory points.
func Province() *Victory {
	return &Victory{name: "Province", cost: 8, victory: 6}
}
