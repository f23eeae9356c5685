package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/containers"
	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/ui"
)

// Renderer defines the interface for rendering game output
type Renderer interface {
	RenderCardList(cs []cards.Card) string
	RenderSupply(s *containers.Supply) string
	RenderError(err error) string
}

// ForFormat returns the renderer for a resolved output format. JSON is
// not a renderer concern; callers encode it themselves.
func ForFormat(f ui.Format) Renderer {
	if f == ui.FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderCardList renders card rows colored by category, with a heading
// wherever the category changes.
func (r *TerminalRenderer) RenderCardList(cs []cards.Card) string {
	if len(cs) == 0 {
		return MutedStyle.Render("No cards found")
	}

	var result strings.Builder
	var lastKind cards.Kind
	for _, c := range cs {
		if c.Kind() != lastKind {
			if lastKind != "" {
				result.WriteString("\n")
			}
			result.WriteString(TitleStyle.Render(string(c.Kind())+" cards") + "\n")
			lastKind = c.Kind()
		}
		row := strings.TrimRight(c.String(), " ")
		result.WriteString(CardStyle(c).Render(row) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSupply renders both supply sections with styled headers and
// card rows colored by category.
func (r *TerminalRenderer) RenderSupply(s *containers.Supply) string {
	var result strings.Builder

	writeSection := func(header string, piles []*containers.Pile, idStart int) {
		result.WriteString(TitleStyle.Render(header) + "\n")
		for i, p := range piles {
			row := fmt.Sprintf("%-3d: %sx%d", idStart+i, p.Card(), p.Len())
			result.WriteString(CardStyle(p.Card()).Render(row) + "\n")
		}
	}

	writeSection("Base Card Supply", s.Base().Piles(), 0)
	result.WriteString("\n")
	writeSection("Kingdom Card Supply", s.Kingdom().Piles(), len(s.Base().Piles()))

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	if gameErr, ok := errors.AsGameError(err); ok {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(gameErr.Code)),
			gameErr.Message)
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderCardList renders one card row per line.
func (r *PlainRenderer) RenderCardList(cs []cards.Card) string {
	if len(cs) == 0 {
		return "No cards found"
	}

	var result strings.Builder
	for _, c := range cs {
		result.WriteString(strings.TrimRight(c.String(), " ") + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSupply returns the supply's own string form, the one players
// see during a game.
func (r *PlainRenderer) RenderSupply(s *containers.Supply) string {
	return s.String()
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}
