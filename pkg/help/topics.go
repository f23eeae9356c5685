package help

import (
	"fmt"

	"github.com/muesli/reflow/wordwrap"

	"github.com/arthur-debert/dominion/pkg/errors"
)

// topics maps the built-in topic names to their renderers. Card names
// are resolved separately through the catalog.
var topics = map[string]func(*Menu) error{
	"buy":     (*Menu).topicBuy,
	"action":  (*Menu).topicAction,
	"discard": (*Menu).topicDiscard,
	"trash":   (*Menu).topicTrash,
	"key":     (*Menu).topicKey,
	"supply":  (*Menu).topicSupply,
	"rules":   (*Menu).topicRules,
}

// Topics returns the built-in topic names, in the order the key topic
// lists them.
func Topics() []string {
	return []string{"rules", "action", "buy", "discard", "trash", "key", "supply"}
}

// frame prints content between a leading newline and a trailing blank
// line, the shape every topic shares.
func (m *Menu) frame(content string) error {
	_, err := fmt.Fprintf(m.out, "\n%s\n\n", content)
	return err
}

// paragraph fills a one-paragraph message to the menu width.
func (m *Menu) paragraph(msg string) error {
	return m.frame(wordwrap.String(msg, m.width))
}

func (m *Menu) topicBuy() error {
	return m.paragraph(buyMsg)
}

func (m *Menu) topicAction() error {
	return m.paragraph(actionMsg)
}

func (m *Menu) topicDiscard() error {
	return m.paragraph(discardMsg)
}

func (m *Menu) topicTrash() error {
	return m.paragraph(trashMsg)
}

// topicKey prints the key block verbatim. It is preformatted and must
// not be rewrapped.
func (m *Menu) topicKey() error {
	return m.frame(keyText)
}

// topicRules runs the rule summary through the menu's renderer, so a
// markdown-capable terminal gets rich output while the plain renderer
// reproduces the text as written.
func (m *Menu) topicRules() error {
	return m.frame(m.renderer.Render(rulesText))
}

// topicSupply is the one topic that reads live game state.
func (m *Menu) topicSupply() error {
	if m.cfg == nil || m.cfg.Supply == nil {
		return errors.New(errors.ErrInternal, "help menu has no game to describe")
	}
	return m.frame(m.cfg.Supply.String())
}
