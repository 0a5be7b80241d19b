// Package mock provides test doubles for jview interfaces.
package mock

import (
	"context"
	"io"

	"github.com/fwojciec/jview"
)

// Compile-time interface verification.
var (
	_ jview.ThemeDecoder     = (*ThemeDecoder)(nil)
	_ jview.ThemeFileDecoder = (*ThemeFileDecoder)(nil)
	_ jview.ThemeEncoder     = (*ThemeEncoder)(nil)
	_ jview.ThemeLocator     = (*ThemeLocator)(nil)
	_ jview.ThemeLoader      = (*ThemeLoader)(nil)
	_ jview.ThemePreviewer   = (*ThemePreviewer)(nil)

	_ jview.DocumentTokenizer = (*DocumentTokenizer)(nil)
	_ jview.LanguageDetector  = (*LanguageDetector)(nil)
)

// ThemeDecoder is a mock implementation of jview.ThemeDecoder.
type ThemeDecoder struct {
	DecodeFn func(r io.Reader) (jview.ThemeSource, error)
}

func (d *ThemeDecoder) Decode(r io.Reader) (jview.ThemeSource, error) {
	return d.DecodeFn(r)
}

// ThemeFileDecoder is a mock implementation of jview.ThemeFileDecoder.
type ThemeFileDecoder struct {
	DecodeFn func(path string) (jview.ThemeSource, error)
}

func (d *ThemeFileDecoder) Decode(path string) (jview.ThemeSource, error) {
	return d.DecodeFn(path)
}

// ThemeEncoder is a mock implementation of jview.ThemeEncoder.
type ThemeEncoder struct {
	EncodeFn func(w io.Writer, theme *jview.Theme) error
}

func (e *ThemeEncoder) Encode(w io.Writer, theme *jview.Theme) error {
	return e.EncodeFn(w, theme)
}

// ThemeLocator is a mock implementation of jview.ThemeLocator.
type ThemeLocator struct {
	LocateFn func() (string, error)
}

func (l *ThemeLocator) Locate() (string, error) {
	return l.LocateFn()
}

// ThemeLoader is a mock implementation of jview.ThemeLoader.
type ThemeLoader struct {
	LoadFn func() (*jview.Theme, error)
}

func (l *ThemeLoader) Load() (*jview.Theme, error) {
	return l.LoadFn()
}

// ThemePreviewer is a mock implementation of jview.ThemePreviewer.
type ThemePreviewer struct {
	PreviewFn func(ctx context.Context, highlighter *jview.Highlighter) error
}

func (p *ThemePreviewer) Preview(ctx context.Context, highlighter *jview.Highlighter) error {
	return p.PreviewFn(ctx, highlighter)
}

// DocumentTokenizer is a mock implementation of jview.DocumentTokenizer.
type DocumentTokenizer struct {
	TokenizeLinesFn func(language, source string) ([]jview.Line, error)
}

func (t *DocumentTokenizer) TokenizeLines(language, source string) ([]jview.Line, error) {
	return t.TokenizeLinesFn(language, source)
}

// LanguageDetector is a mock implementation of jview.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(path string) string
}

func (d *LanguageDetector) Detect(path string) string {
	return d.DetectFn(path)
}
