// Package game assembles the shared state a running game of Dominion
// hands to its collaborators: the supply, the trash, and who is playing.
package game

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/dominion/pkg/containers"
	"github.com/arthur-debert/dominion/pkg/logging"
)

var log = logging.GetLogger("game")

// Type tells collaborators what kind of game is being played.
type Type string

const (
	// TypeSolo is a single player game, won in the fewest turns.
	TypeSolo Type = "solo"
	// TypeNormal is a multiplayer game, won on victory points.
	TypeNormal Type = "normal"
)

// Config houses the data required for a game.
type Config struct {
	Supply  *containers.Supply
	Trash   *containers.Container
	Players []string
	Session uuid.UUID
	Type    Type
}

// New builds the configuration for a fresh game from the given options:
// a full supply, an empty trash, and a session id for log correlation.
func New(opts Options) (*Config, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	supply, err := containers.NewSupply(len(opts.Players), opts.Kingdom)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Supply:  supply,
		Trash:   containers.New(nil, 0),
		Players: slices.Clone(opts.Players),
		Session: uuid.New(),
		Type:    TypeNormal,
	}
	if len(cfg.Players) == 1 {
		cfg.Type = TypeSolo
	}

	log.Debug().
		Str("session", cfg.Session.String()).
		Int("players", len(cfg.Players)).
		Str("layout", supply.Kingdom().Layout()).
		Str("type", string(cfg.Type)).
		Msg("Game configured")

	return cfg, nil
}

// String describes the game and who is playing.
func (c *Config) String() string {
	return "Dominion game with " + strings.Join(c.Players, ", ")
}
