// Package jview provides domain types for resolving the visual theme of a
// terminal structured-data viewer.
//
// A theme document maps element names to up to four partial styles, one per
// display state. Resolve turns that sparse source into a complete Theme, and
// a Highlighter answers style lookups over it with neutral fallbacks.
package jview

import (
	"context"
	"io"
)

// ThemeDecoder turns a theme document into a ThemeSource. A malformed
// document, including any bad color token, fails as a whole.
type ThemeDecoder interface {
	Decode(r io.Reader) (ThemeSource, error)
}

// ThemeFileDecoder decodes the theme document at a path, choosing the format
// from the file name.
type ThemeFileDecoder interface {
	Decode(path string) (ThemeSource, error)
}

// ThemeEncoder writes a resolved theme as a theme document.
type ThemeEncoder interface {
	Encode(w io.Writer, theme *Theme) error
}

// ThemeLocator finds the theme document to load.
type ThemeLocator interface {
	// Locate returns the path of the theme document, or an empty string
	// when there is none. An explicitly configured path that does not
	// exist is an error.
	Locate() (string, error)
}

// ThemeLoader loads and resolves the configured theme.
type ThemeLoader interface {
	// Load returns the resolved theme, or nil when no theme document is
	// configured or found.
	Load() (*Theme, error)
}

// ThemePreviewer shows sample content styled by a highlighter.
type ThemePreviewer interface {
	// Preview blocks until the user exits or ctx is cancelled.
	Preview(ctx context.Context, highlighter *Highlighter) error
}

// DocumentTokenizer splits a structured document into lines of themed
// segments.
type DocumentTokenizer interface {
	TokenizeLines(language, source string) ([]Line, error)
}

// LanguageDetector names the document language for a path, or returns an
// empty string when it is unknown.
type LanguageDetector interface {
	Detect(path string) string
}
