package testutil

import (
	"testing"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/containers"
)

// Cards resolves card names against the standard catalog. The test
// fails on a name outside the catalog.
func Cards(t *testing.T, names ...string) []cards.Card {
	t.Helper()

	list := make([]cards.Card, len(names))
	for i, name := range names {
		card, ok := cards.Lookup(name)
		if !ok {
			t.Fatalf("no card named %q in the standard catalog", name)
		}
		list[i] = card
	}
	return list
}

// Container builds a container holding the named cards.
func Container(t *testing.T, idStart int, names ...string) *containers.Container {
	t.Helper()
	return containers.New(Cards(t, names...), idStart)
}

// Names maps cards to their display names, keeping order.
func Names(list []cards.Card) []string {
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.Name()
	}
	return names
}
