package cards

// Lineage returns a card's type ancestry as names, most derived first:
// the card's own name, then its kind, then Card.
//
// Callers test category membership against the chain, such as checking
// for "Action" when deciding whether a card can be played in the action
// phase.
func Lineage(c Card) []string {
	return []string{c.Name(), string(c.Kind()), "Card"}
}
