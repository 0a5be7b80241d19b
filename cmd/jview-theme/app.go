package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fwojciec/jview"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrNoTTY is returned when the preview is started without an interactive
// terminal.
var ErrNoTTY = errors.New("preview requires an interactive terminal")

// ErrInvalidThemes is returned when at least one checked theme document fails
// to decode.
var ErrInvalidThemes = errors.New("invalid theme documents")

// ErrUnknownLanguage is returned when a sample document's language cannot be
// told from its file name.
var ErrUnknownLanguage = errors.New("unknown document language")

// App encapsulates the application logic for testing.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	Loader    jview.ThemeLoader
	Decoder   jview.ThemeFileDecoder
	Encoder   jview.ThemeEncoder
	Previewer jview.ThemePreviewer
	Fallback  jview.Fallback
	Tokenizer jview.DocumentTokenizer
	Detector  jview.LanguageDetector

	// HasTTY reports whether stdin and stdout are terminals. Nil means they
	// are.
	HasTTY func() bool

	// Workers bounds concurrent decodes in Check (default: GOMAXPROCS).
	Workers int

	Logger zerolog.Logger
}

// Highlighter loads the configured theme. A theme that fails to load is
// logged and replaced by the fallback so the viewer stays usable.
func (a *App) Highlighter() *jview.Highlighter {
	theme, err := a.Loader.Load()
	if err != nil {
		a.Logger.Warn().Err(err).Str("fallback", a.Fallback.String()).Msg("theme not loaded")
		theme = nil
	}
	return jview.NewHighlighter(theme, a.Fallback)
}

// Preview shows the sample document with the configured theme.
func (a *App) Preview(ctx context.Context) error {
	if a.HasTTY != nil && !a.HasTTY() {
		return ErrNoTTY
	}
	return a.Previewer.Preview(ctx, a.Highlighter())
}

// SampleLines reads and tokenizes a document to preview in place of the
// built-in sample. The language is detected from the file name.
func (a *App) SampleLines(path string) ([]jview.Line, error) {
	language := a.Detector.Detect(path)
	if language == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownLanguage)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines, err := a.Tokenizer.TokenizeLines(language, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.Logger.Debug().
		Str("path", path).
		Str("language", language).
		Int("lines", len(lines)).
		Msg("loaded sample document")
	return lines, nil
}

// Dump writes the effective theme as a TOML theme document.
func (a *App) Dump() error {
	h := a.Highlighter()
	if !h.Themed() {
		fmt.Fprintln(a.Stderr, "no theme loaded and fallback is none")
		return nil
	}
	return a.Encoder.Encode(a.Stdout, h.Theme())
}

type checkResult struct {
	elements int
	unknown  []string
	err      error
}

// Check decodes and resolves each theme document and reports one line per
// path. Every path is checked even when some fail.
func (a *App) Check(ctx context.Context, paths []string) error {
	results := make([]checkResult, len(paths))
	known := jview.DefaultTheme()

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := a.Decoder.Decode(path)
			if err != nil {
				results[i] = checkResult{err: err}
				return nil
			}
			theme := jview.Resolve(src)
			var unknown []string
			for _, name := range theme.Names() {
				if _, ok := known.Lookup(name); !ok {
					unknown = append(unknown, name)
				}
			}
			results[i] = checkResult{elements: theme.Len(), unknown: unknown}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(a.Stdout, "FAIL\t%s\t%v\n", paths[i], r.err)
			continue
		}
		fmt.Fprintf(a.Stdout, "ok\t%s\t%d elements\n", paths[i], r.elements)
		if len(r.unknown) > 0 {
			a.Logger.Warn().
				Str("path", paths[i]).
				Str("elements", strings.Join(r.unknown, ",")).
				Msg("elements not drawn by the viewer")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidThemes, failed, len(paths))
	}
	return nil
}
