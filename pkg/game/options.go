package game

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dominion/pkg/containers"
	"github.com/arthur-debert/dominion/pkg/errors"
)

// OptionsFile is the file name probed when no explicit path is given.
const OptionsFile = "dominion.toml"

// OptionsPathEnv overrides the options file location when set.
const OptionsPathEnv = "DOMINION_OPTIONS"

// DefaultOptionsPath returns the options file path to probe: the
// DOMINION_OPTIONS environment variable when set, dominion.toml in the
// working directory otherwise.
func DefaultOptionsPath() string {
	if path := os.Getenv(OptionsPathEnv); path != "" {
		return path
	}
	return OptionsFile
}

// Options is the game setup read from an optional dominion.toml file.
type Options struct {
	Players []string `toml:"players"`
	Kingdom string   `toml:"kingdom"`
}

// DefaultOptions returns the setup used when no options file exists:
// a two player game on the first_game kingdom layout.
func DefaultOptions() Options {
	return Options{
		Players: []string{"Player 1", "Player 2"},
		Kingdom: containers.LayoutFirstGame,
	}
}

// Validate checks that the options describe a playable game.
func (o Options) Validate() error {
	if len(o.Players) < 1 || len(o.Players) > 4 {
		return errors.Newf(errors.ErrConfigValid,
			"a game needs between 1 and 4 players, got %d", len(o.Players)).
			WithDetail("players", len(o.Players))
	}
	return nil
}

// LoadOptions reads and parses a dominion.toml setup file. A missing
// file is not an error and yields DefaultOptions. Fields left out of
// the file keep their default values.
func LoadOptions(path string) (Options, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No options file, using defaults")
			return DefaultOptions(), nil
		}
		return Options{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read options file %s", path)
	}

	opts := DefaultOptions()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse options file %s", path)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	logger.Debug().
		Int("players", len(opts.Players)).
		Str("kingdom", opts.Kingdom).
		Msg("Options loaded")

	return opts, nil
}
