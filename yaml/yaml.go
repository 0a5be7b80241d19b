// Package yaml reads theme documents in YAML using gopkg.in/yaml.v3.
//
// Unlike TOML, YAML can express an omitted state slot directly as null:
//
//	themes:
//	  string:
//	    - fg: C16(2)
//	    - ~
//	    - { fg: "#000000", bg: C16(3) }
//	  "null":
//	    - fg: C16(1)
//
// Element names that YAML resolves to other types, such as null, must be
// quoted.
package yaml

import (
	"errors"
	"fmt"
	"io"

	"github.com/fwojciec/jview"
	yamllib "gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ jview.ThemeDecoder = (*Decoder)(nil)

// ErrMissingThemes is returned when a document has no top-level themes mapping.
var ErrMissingThemes = errors.New("missing themes mapping")

// document mirrors jview.ThemeDocument with a pointer so that an absent
// themes key can be told apart from an empty one.
type document struct {
	Themes *jview.ThemeSource `yaml:"themes"`
}

// Decoder decodes YAML theme documents.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a theme document. Any invalid color token fails the whole
// document.
func (d *Decoder) Decode(r io.Reader) (jview.ThemeSource, error) {
	var doc document
	if err := yamllib.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingThemes
		}
		return nil, fmt.Errorf("decode yaml theme: %w", err)
	}
	if doc.Themes == nil {
		return nil, ErrMissingThemes
	}
	if *doc.Themes == nil {
		return jview.ThemeSource{}, nil
	}
	return *doc.Themes, nil
}
