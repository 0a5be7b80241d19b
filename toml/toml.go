// Package toml reads and writes theme documents in TOML using BurntSushi/toml.
//
// TOML has no null, so an omitted state slot is written as an empty inline
// table:
//
//	[themes]
//	string = [{ fg = "C16(2)" }, {}, { fg = "#000000", bg = "C16(3)" }]
package toml

import (
	"errors"
	"fmt"
	"io"

	tomllib "github.com/BurntSushi/toml"
	"github.com/fwojciec/jview"
)

// Compile-time interface verification.
var (
	_ jview.ThemeDecoder = (*Decoder)(nil)
	_ jview.ThemeEncoder = (*Encoder)(nil)
)

// ErrMissingThemes is returned when a document has no top-level themes table.
var ErrMissingThemes = errors.New("missing [themes] table")

// Decoder decodes TOML theme documents.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a theme document. Any invalid color token fails the whole
// document.
func (d *Decoder) Decode(r io.Reader) (jview.ThemeSource, error) {
	var doc jview.ThemeDocument
	md, err := tomllib.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode toml theme: %w", err)
	}
	if !md.IsDefined("themes") {
		return nil, ErrMissingThemes
	}
	if doc.Themes == nil {
		doc.Themes = jview.ThemeSource{}
	}
	return doc.Themes, nil
}

// Encoder writes resolved themes as TOML theme documents.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes theme with every state of every element spelled out, so the
// output can be edited and loaded back as a theme file.
func (e *Encoder) Encode(w io.Writer, theme *jview.Theme) error {
	doc := jview.ThemeDocument{Themes: theme.Source()}
	if err := tomllib.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode toml theme: %w", err)
	}
	return nil
}
