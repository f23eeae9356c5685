// Test Type: Unit Test
// Description: Tests for the help package - free-text queries and built-in topics

package help_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/game"
	"github.com/arthur-debert/dominion/pkg/help"
)

const invalidTopicLine = "Not a valid help topic.\n"

func newMenu(t *testing.T) (*help.Menu, *bytes.Buffer) {
	t.Helper()

	cfg, err := game.New(game.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	return help.New(cfg, help.WithWriter(&buf)), &buf
}

func TestAsk_InvalidQueries(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "bare_help", response: "help"},
		{name: "empty_response", response: ""},
		{name: "whitespace_only", response: "   "},
		{name: "three_tokens", response: "help buy now"},
		{name: "unknown_topic", response: "help xyzzy"},
		{name: "unknown_card", response: "help throneroom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, buf := newMenu(t)
			menu.Ask(tt.response)
			assert.Equal(t, invalidTopicLine, buf.String())
		})
	}
}

func TestAsk_CardQueries(t *testing.T) {
	t.Run("treasure_any_case", func(t *testing.T) {
		want := "\nSilver. This card is worth 2 coin.\n\n"
		for _, response := range []string{"help silver", "help Silver", "HELP SILVER"} {
			menu, buf := newMenu(t)
			menu.Ask(response)
			assert.Equal(t, want, buf.String(), "response %q", response)
		}
	})

	t.Run("victory_card", func(t *testing.T) {
		menu, buf := newMenu(t)
		menu.Ask("help province")
		assert.Equal(t, "\nProvince. This card is worth 6 victory points.\n\n", buf.String())
	})

	t.Run("action_card", func(t *testing.T) {
		menu, buf := newMenu(t)
		menu.Ask("help moat")

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "\nMoat card. Playing this card results in the following: +2 Ca."))
		assert.Contains(t, out, "This card has the following effect:")
		assert.True(t, strings.HasSuffix(out, "\n\n"))
		for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
			assert.LessOrEqual(t, len(line), 70)
		}
	})
}

func TestAsk_BuiltinTopics(t *testing.T) {
	t.Run("key_topic", func(t *testing.T) {
		menu, buf := newMenu(t)
		menu.Ask("help key")

		want := "\n" +
			"Effect Key: (C=Coin) (V=Victory) (A=Action) (Ca=Cards) (B=Buy)\n" +
			"Card Type Key: (T=Treasure) (V=Victory) (A*=Action) (AA=Attack) (AR=Reaction)\n" +
			"User Actions: (# = No. of Card) (pass = Pass to Next Phase)\n" +
			"User Actions: (quit = Quit Game) (help or help <topic> = Get help)\n" +
			"Help Menu Topics: rules, action, buy, discard, trash, key, supply, and any card name.\n" +
			"\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("rules_topic", func(t *testing.T) {
		menu, buf := newMenu(t)
		menu.Ask("help rules")

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "\nWelcome to Dominion!"))
		assert.Contains(t, out, "1) Action (A)")
		assert.Contains(t, out, "2) Buy (B)")
		assert.Contains(t, out, "3) Clean-up (C)")
		assert.True(t, strings.HasSuffix(out, "Enjoy!\n\n"))
	})

	t.Run("supply_topic_reads_live_state", func(t *testing.T) {
		cfg, err := game.New(game.DefaultOptions())
		require.NoError(t, err)

		var buf bytes.Buffer
		menu := help.New(cfg, help.WithWriter(&buf))
		menu.Ask("help supply")

		assert.Equal(t, "\n"+cfg.Supply.String()+"\n\n", buf.String())
	})
}

func TestTopic_Paragraphs(t *testing.T) {
	tests := []struct {
		topic     string
		firstWord string
		contains  []string
	}{
		{
			topic:     "buy",
			firstWord: "Select a card from the supply to purchase",
			contains:  []string{"help supply", "buy points", "typing pass."},
		},
		{
			topic:     "action",
			firstWord: "Select an action card from your hand",
			contains:  []string{"buy phase", "typing pass."},
		},
		{
			topic:     "discard",
			firstWord: "Select a card from your hand to discard",
			contains:  []string{"typing pass."},
		},
		{
			topic:     "trash",
			firstWord: "Select a card from your hand to trash (remove from the game)",
			contains:  []string{"card of that type", "typing pass."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			menu, buf := newMenu(t)
			require.NoError(t, menu.Topic(tt.topic))

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "\n"+tt.firstWord),
				"output starts %q", out[:min(len(out), 40)])
			assert.True(t, strings.HasSuffix(out, "\n\n"))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
				assert.LessOrEqual(t, len(line), 70, "line %q", line)
			}
		})
	}
}

func TestTopic_AllBuiltinsRender(t *testing.T) {
	for _, topic := range help.Topics() {
		t.Run(topic, func(t *testing.T) {
			menu, buf := newMenu(t)
			require.NoError(t, menu.Topic(topic))

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "\n"))
			assert.True(t, strings.HasSuffix(out, "\n\n"))
			assert.NotEqual(t, "\n\n", out)
		})
	}
}

func TestTopic_Unknown(t *testing.T) {
	menu, buf := newMenu(t)

	err := menu.Topic("xyzzy")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTopic))
	assert.Empty(t, buf.String(), "an unknown explicit topic must not print")
}

func TestTopic_CardsAreNotTopics(t *testing.T) {
	// Card lookups belong to the free-text path only.
	menu, _ := newMenu(t)

	err := menu.Topic("moat")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTopic))
}

func TestWithWidth(t *testing.T) {
	cfg, err := game.New(game.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	menu := help.New(cfg, help.WithWriter(&buf), help.WithWidth(40))
	require.NoError(t, menu.Topic("buy"))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len(line), 40, "line %q", line)
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content string) string {
	return strings.ToUpper(content)
}

func TestWithRenderer(t *testing.T) {
	cfg, err := game.New(game.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	menu := help.New(cfg, help.WithWriter(&buf), help.WithRenderer(upperRenderer{}))
	require.NoError(t, menu.Topic("rules"))

	assert.Contains(t, buf.String(), "WELCOME TO DOMINION!")
}

func TestAskProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("responses without exactly two fields always get the invalid message", prop.ForAll(
		func(response string) bool {
			if len(strings.Fields(response)) == 2 {
				return true
			}
			menu, buf := newMenuQuiet(t)
			menu.Ask(response)
			return buf.String() == invalidTopicLine
		},
		gen.AnyString(),
	))

	properties.Property("asking twice prints the same thing twice", prop.ForAll(
		func(pick uint8) bool {
			topics := help.Topics()
			topic := topics[int(pick)%len(topics)]

			menu, buf := newMenuQuiet(t)
			menu.Ask("help " + topic)
			first := buf.String()
			buf.Reset()
			menu.Ask("help " + topic)
			return buf.String() == first
		},
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func newMenuQuiet(t *testing.T) (*help.Menu, *bytes.Buffer) {
	cfg, err := game.New(game.DefaultOptions())
	if err != nil {
		t.Fatalf("building game config: %v", err)
	}
	var buf bytes.Buffer
	return help.New(cfg, help.WithWriter(&buf)), &buf
}
