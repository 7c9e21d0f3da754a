package solmeta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muktihari/xmltokenizer"
)

type errorString string

func (e errorString) Error() string { return string(e) }

// ErrMalformed reports that the document was not well-formed XML.
const ErrMalformed = errorString("malformed xml document")

// parseContext ties the active-state set to the record being populated for
// the duration of a single load.
type parseContext struct {
	state parseState
	meta  *Metadata
}

// characters dispatches one run of character data. The package name requires
// the exact set {root, Package, Name}; the component requires only the PartOf
// flag, so a PartOf nested deeper (inside a History block, say) is still
// captured. The asymmetry is part of the schema contract.
func (c *parseContext) characters(data []byte) {
	switch {
	case c.state.flags == flagRoot|flagPackage|flagName:
		s := string(data)
		c.meta.packageName = &s
	case c.state.flags&flagComponent != 0:
		s := string(data)
		c.meta.component = &s
	}
}

// Load parses a metadata.xml document from r. A nil return means the
// document was well-formed XML; fields no matching element was seen for
// simply remain absent. Both fields are cleared before parsing starts, and
// cleared again on failure, so a failed load never leaves partial state.
//
// Well-formedness follows the tokenizer's judgment, supplemented by a tag
// balance check. The tokenizer skips non-markup content ahead of the first
// tag, so leading junk before the root element is tolerated.
func (m *Metadata) Load(r io.Reader) error {
	m.reset()

	tok := xmltokenizer.New(r)
	ctx := parseContext{meta: m}

	// The open-element stack exists only for the well-formedness verdict.
	// Matching state lives in the toggle-based flag set, see parseState.
	var open []string
	for {
		token, err := tok.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return m.malformed(err.Error())
		}
		switch {
		case token.SelfClosing:
			// Prolog, comments and directives carry no element name.
			// A real <name/> nets no flag change but its tail text is
			// still a character event under the current state.
			if len(token.Name.Local) > 0 && len(token.Data) > 0 {
				ctx.characters(token.Data)
			}
		case token.IsEndElement:
			n := len(open)
			if n == 0 || open[n-1] != string(token.Name.Local) {
				return m.malformed(fmt.Sprintf("unexpected </%s>", token.Name.Local))
			}
			open = open[:n-1]
			ctx.state.flip(token.Name.Local)
			if len(token.Data) > 0 { // tail text, dispatched after the close
				ctx.characters(token.Data)
			}
		default:
			// A token with no name is the tokenizer surfacing content
			// that contains no tags at all.
			if len(token.Name.Local) == 0 {
				return m.malformed("document contains no markup")
			}
			open = append(open, string(token.Name.Local))
			ctx.state.flip(token.Name.Local)
			if len(token.Data) > 0 {
				ctx.characters(token.Data)
			}
		}
	}
	if len(open) > 0 {
		return m.malformed(fmt.Sprintf("<%s> is never closed", open[len(open)-1]))
	}
	return nil
}

// LoadFile opens path and loads it. An unreadable file clears the record the
// same way a malformed document does, so every failure mode leaves the
// record empty.
func (m *Metadata) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		m.reset()
		m.options.logger.Errorf("error creating XML context: %v", err)
		return fmt.Errorf("open metadata %s: %w", path, err)
	}
	defer f.Close()
	return m.Load(f)
}

func (m *Metadata) malformed(detail string) error {
	m.reset()
	m.options.logger.Errorf("badly formed XML document, aborting: %s", detail)
	return fmt.Errorf("%s: %w", detail, ErrMalformed)
}
