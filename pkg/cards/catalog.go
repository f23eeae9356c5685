package cards

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/registry"
)

// The standard catalog. Cards register per kind; lookup precedence
// across kinds is Treasure, then Victory, then Action.
var (
	treasures = registry.New[Card]()
	victories = registry.New[Card]()
	actions   = registry.New[Card]()
)

func init() {
	for _, c := range []Card{Copper(), Silver(), Gold()} {
		registry.MustRegister(treasures, key(c.Name()), c)
	}
	for _, c := range []Card{Estate(), Duchy(), Province()} {
		registry.MustRegister(victories, key(c.Name()), c)
	}
	for _, c := range []Card{
		Cellar(), Market(), Merchant(), Militia(), Mine(), Moat(),
		Remodel(), Smithy(), Village(), Workshop(), Festival(), Laboratory(),
	} {
		registry.MustRegister(actions, key(c.Name()), c)
	}
}

// key normalizes a card name for catalog lookup.
func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// kindRegistries returns the per-kind registries in lookup precedence order.
func kindRegistries() []registry.Registry[Card] {
	return []registry.Registry[Card]{treasures, victories, actions}
}

func kindRegistry(kind Kind) registry.Registry[Card] {
	switch kind {
	case KindTreasure:
		return treasures
	case KindVictory:
		return victories
	case KindAction:
		return actions
	}
	return nil
}

// Kinds returns the card kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindTreasure, KindVictory, KindAction}
}

// Lookup finds a card by name, case-insensitively. When two kinds hold
// the same name, Treasure wins over Victory, and Victory over Action.
func Lookup(name string) (Card, bool) {
	k := key(name)
	for _, reg := range kindRegistries() {
		if card, err := reg.Get(k); err == nil {
			return card, true
		}
	}
	return nil, false
}

// Get is Lookup with a coded error for the miss.
func Get(name string) (Card, error) {
	card, ok := Lookup(name)
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownCard, "no card named %q", name)
	}
	return card, nil
}

// MustCard returns the named card or panics. Use it for the standard
// cards whose presence is a program invariant, such as supply layouts.
func MustCard(name string) Card {
	card, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("no card named %q in the standard catalog", name))
	}
	return card
}

// Has reports whether a card with the given name is in the catalog.
func Has(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// ByKind returns the cards of one kind in catalog order.
func ByKind(kind Kind) []Card {
	reg := kindRegistry(kind)
	if reg == nil {
		return nil
	}
	names := reg.List()
	out := make([]Card, 0, len(names))
	for _, name := range names {
		out = append(out, registry.MustGet(reg, name))
	}
	return out
}

// All returns the whole catalog, Treasure first, then Victory, then Action.
func All() []Card {
	var out []Card
	for _, kind := range Kinds() {
		out = append(out, ByKind(kind)...)
	}
	return out
}

// Names returns the display names of one kind's cards in catalog order.
func Names(kind Kind) []string {
	ofKind := ByKind(kind)
	names := make([]string, len(ofKind))
	for i, c := range ofKind {
		names[i] = c.Name()
	}
	return names
}

// AllNames returns every card name in the catalog, in catalog order.
func AllNames() []string {
	var names []string
	for _, kind := range Kinds() {
		names = append(names, Names(kind)...)
	}
	return names
}

// ParseKind converts a user-supplied kind name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "treasure":
		return KindTreasure, nil
	case "victory":
		return KindVictory, nil
	case "action":
		return KindAction, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown card kind %q", s)
}
