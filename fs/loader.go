package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/jview"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var (
	_ jview.ThemeLoader      = (*Loader)(nil)
	_ jview.ThemeFileDecoder = (*Loader)(nil)
)

// ErrUnsupportedFormat is returned when no decoder is registered for a theme
// file's extension.
var ErrUnsupportedFormat = errors.New("unsupported theme file format")

// Loader locates a theme document, decodes it with the decoder registered
// for its extension and resolves it.
type Loader struct {
	locator  jview.ThemeLocator
	decoders map[string]jview.ThemeDecoder
	logger   zerolog.Logger
}

// NewLoader creates a Loader. Decoders are keyed by lower-case file
// extension including the dot, e.g. ".toml".
func NewLoader(locator jview.ThemeLocator, decoders map[string]jview.ThemeDecoder, logger zerolog.Logger) *Loader {
	return &Loader{
		locator:  locator,
		decoders: decoders,
		logger:   logger,
	}
}

// Load returns the resolved theme, or nil without error when there is no
// theme document.
func (l *Loader) Load() (*jview.Theme, error) {
	path, err := l.locator.Locate()
	if err != nil {
		return nil, err
	}
	if path == "" {
		l.logger.Debug().Msg("no theme file found")
		return nil, nil
	}

	src, err := l.Decode(path)
	if err != nil {
		return nil, err
	}

	theme := jview.Resolve(src)
	l.logger.Debug().
		Str("path", path).
		Int("elements", theme.Len()).
		Msg("loaded theme")
	return theme, nil
}

// Decode reads the theme document at path without resolving it.
func (l *Loader) Decode(path string) (jview.ThemeSource, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decoder, ok := l.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
