// Package compendium exports the card catalog as an XML card database
// so external deck tools can consume the set.
package compendium

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/dominion/pkg/cards"
	"github.com/arthur-debert/dominion/pkg/errors"
	"github.com/arthur-debert/dominion/pkg/logging"
)

var log = logging.GetLogger("compendium")

// SetCode identifies the base set in the exported database.
const SetCode = "DOM"

// Write renders the whole catalog as an XML card database to w.
func Write(w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("carddatabase")
	root.CreateAttr("version", "1")

	sets := root.CreateElement("sets")
	set := sets.CreateElement("set")
	set.CreateElement("name").SetText(SetCode)
	set.CreateElement("longname").SetText("Dominion Base Set")

	list := root.CreateElement("cards")
	for _, c := range cards.All() {
		appendCard(list, c)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrCompendiumWrite,
			"failed to write card compendium")
	}

	log.Debug().Int("cards", len(cards.All())).Msg("Compendium written")
	return nil
}

// WriteFile writes the compendium to the named file.
func WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCompendiumWrite,
			"cannot create compendium file %s", path)
	}
	defer f.Close()

	if err := Write(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrCompendiumWrite,
			"cannot finish compendium file %s", path)
	}
	return nil
}

// appendCard adds one <card> entry for c.
func appendCard(parent *etree.Element, c cards.Card) {
	entry := parent.CreateElement("card")
	entry.CreateElement("name").SetText(c.Name())
	entry.CreateElement("set").SetText(SetCode)
	entry.CreateElement("type").SetText(string(c.Kind()))
	entry.CreateElement("cost").SetText(strconv.Itoa(c.Cost()))
	entry.CreateElement("text").SetText(describeText(c))
}

// describeText captures a card's rulebook text as a single block,
// without the blank lines Describe frames it with for the prompt.
func describeText(c cards.Card) string {
	var buf bytes.Buffer
	c.Describe(&buf)
	return strings.TrimSpace(buf.String())
}
