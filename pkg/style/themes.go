package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// colorDef is an adaptive color definition in styles.yaml.
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// themeConfig is the parsed styles.yaml.
type themeConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
}

//go:embed styles.yaml
var embeddedTheme []byte

var theme = mustLoadTheme(embeddedTheme)

// mustLoadTheme parses the embedded theme. The file ships inside the
// binary, so a parse failure is a build defect rather than a runtime
// condition.
func mustLoadTheme(data []byte) themeConfig {
	var cfg themeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("styles.yaml is malformed: %v", err))
	}
	return cfg
}

// color resolves a named color from the theme.
func (t themeConfig) color(name string) lipgloss.AdaptiveColor {
	def, ok := t.Colors[name]
	if !ok {
		panic(fmt.Sprintf("styles.yaml defines no color named %q", name))
	}
	return lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
}

// Colors loaded from the embedded theme. AdaptiveColor switches
// automatically between light and dark terminal backgrounds.
var (
	// Primary colors
	PrimaryColor   = theme.color("primary")
	SecondaryColor = theme.color("secondary")

	// Status colors
	SuccessColor = theme.color("success")
	ErrorColor   = theme.color("error")
	WarningColor = theme.color("warning")
	InfoColor    = theme.color("info")

	// Text colors
	HeadingColor = theme.color("heading")
	TextColor    = theme.color("text")
	MutedColor   = theme.color("muted")
)

// Card category colors
var (
	TreasureColor = theme.color("treasure")
	VictoryColor  = theme.color("victory")
	ActionColor   = theme.color("action")
	AttackColor   = theme.color("attack")
	ReactionColor = theme.color("reaction")
)
