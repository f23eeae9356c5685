// Package help implements the game's help menu. It answers free-form
// "help ..." requests typed at the prompt and renders the built-in
// topics the rest of the game asks for by name.
package help

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/game"
	"github.com/arthur-debert/dominion/pkg/logging"
)

var log = logging.GetLogger("help")

// wrapWidth is the line width topic paragraphs are filled to.
const wrapWidth = 70

// Menu is the help menu for one game. All output goes through its
// writer.
type Menu struct {
	cfg      *game.Config
	out      io.Writer
	width    int
	renderer Renderer
}

// Option configures a Menu.
type Option func(*Menu)

// WithWriter directs the menu's output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(m *Menu) { m.out = w }
}

// WithWidth overrides the paragraph wrap width.
func WithWidth(width int) Option {
	return func(m *Menu) { m.width = width }
}

// WithRenderer sets the renderer used for markdown topics.
func WithRenderer(r Renderer) Option {
	return func(m *Menu) { m.renderer = r }
}

// New creates the help menu for a game.
func New(cfg *game.Config, opts ...Option) *Menu {
	m := &Menu{
		cfg:      cfg,
		out:      os.Stdout,
		width:    wrapWidth,
		renderer: &PlainRenderer{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Topic renders a built-in topic by name. This is the path game code
// uses when it already knows which topic applies, so an unknown name
// is an error for the caller to handle.
func (m *Menu) Topic(topic string) error {
	fn, ok := topics[topic]
	if !ok {
		return errors.Newf(errors.ErrUnknownTopic, "unknown help topic %q", topic).
			WithDetail("topic", topic)
	}

	log.Debug().Str("topic", topic).Msg("Rendering help topic")
	return fn(m)
}

// Ask answers a raw "help ..." line typed by a player. The query is
// resolved case-insensitively, first against the card catalog and then
// against the built-in topics. Anything unresolvable gets the invalid
// topic message; bad input never becomes an error.
func (m *Menu) Ask(response string) {
	tokens := strings.Fields(response)
	if len(tokens) != 2 {
		fmt.Fprintln(m.out, invalidTopic)
		return
	}
	topic := strings.ToLower(tokens[1])

	// Cards shadow built-in topics, not the other way around.
	if card, ok := cards.Lookup(topic); ok {
		log.Debug().Str("card", card.Name()).Msg("Help resolved to a card")
		card.Describe(m.out)
		return
	}

	if fn, ok := topics[topic]; ok {
		log.Debug().Str("topic", topic).Msg("Help resolved to a topic")
		if err := fn(m); err != nil {
			log.Debug().Err(err).Str("topic", topic).Msg("Help topic failed to render")
		}
		return
	}

	log.Debug().Str("topic", topic).Msg("Help topic not resolved")
	fmt.Fprintln(m.out, invalidTopic)
}
