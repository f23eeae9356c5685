package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/dominion/pkg/cards"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)
)

// Card category styles
var (
	TreasureStyle = lipgloss.NewStyle().
			Foreground(TreasureColor)

	VictoryStyle = lipgloss.NewStyle().
			Foreground(VictoryColor)

	ActionStyle = lipgloss.NewStyle().
			Foreground(ActionColor)

	AttackStyle = lipgloss.NewStyle().
			Foreground(AttackColor)

	ReactionStyle = lipgloss.NewStyle().
			Foreground(ReactionColor)
)

// CardStyle returns the style for a card row. Attack and reaction
// cards are called out separately from plain actions.
func CardStyle(c cards.Card) lipgloss.Style {
	if a, ok := c.(*cards.Action); ok {
		if a.Attack() {
			return AttackStyle
		}
		if a.Reaction() {
			return ReactionStyle
		}
		return ActionStyle
	}

	switch c.Kind() {
	case cards.KindTreasure:
		return TreasureStyle
	case cards.KindVictory:
		return VictoryStyle
	default:
		return NormalStyle
	}
}

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Italic(s string) string {
	return lipgloss.NewStyle().Italic(true).Render(s)
}

func Underline(s string) string {
	return lipgloss.NewStyle().Underline(true).Render(s)
}
