// Package chroma splits structured documents into themed lines using the
// chroma lexers.
package chroma

import (
	"errors"
	"fmt"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/jview"
)

// Compile-time interface verification.
var _ jview.DocumentTokenizer = (*Tokenizer)(nil)

// ErrUnsupportedLanguage is returned when chroma has no lexer for a language.
var ErrUnsupportedLanguage = errors.New("unsupported document language")

const tabWidth = 8

// ElementFunc maps a chroma token to a theme element name. An empty name
// draws the token unstyled.
type ElementFunc func(tt chromalib.TokenType, text string) string

// ElementFor maps the token types the JSON, YAML and TOML lexers emit to the
// viewer's theme elements.
func ElementFor(tt chromalib.TokenType, text string) string {
	switch {
	case tt == chromalib.NameTag || tt == chromalib.NameOther:
		return jview.ElementKey
	case tt == chromalib.KeywordConstant:
		switch text {
		case "null", "Null", "NULL", "~":
			return jview.ElementNull
		}
		return jview.ElementBoolean
	case tt.InSubCategory(chromalib.LiteralNumber):
		return jview.ElementNumber
	case tt.InCategory(chromalib.Literal):
		return jview.ElementString
	case tt == chromalib.Punctuation || tt.InCategory(chromalib.Operator):
		return jview.ElementPunctuation
	default:
		return ""
	}
}

// Tokenizer splits documents into lines of themed segments.
type Tokenizer struct {
	elementFunc ElementFunc
}

// NewTokenizer creates a Tokenizer. If fn is nil, ElementFor is used.
func NewTokenizer(fn ElementFunc) *Tokenizer {
	if fn == nil {
		fn = ElementFor
	}
	return &Tokenizer{elementFunc: fn}
}

// TokenizeLines lexes source with full context, then splits the tokens by
// line so that multi-line tokens keep their element. Tabs are expanded to
// eight-column stops. Empty source yields no lines.
func (t *Tokenizer) TokenizeLines(language, source string) ([]jview.Line, error) {
	if source == "" {
		return []jview.Line{}, nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	// Coalesce merges consecutive tokens of the same type.
	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", language, err)
	}

	var segments []jview.Segment
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		segments = append(segments, jview.Segment{
			Element: t.elementFunc(token.Type, strings.TrimSpace(token.Value)),
			Text:    token.Value,
		})
	}

	return splitLines(segments), nil
}

// splitLines splits a flat list of segments into lines at newline
// boundaries. A trailing newline does not start an extra line.
func splitLines(segments []jview.Segment) []jview.Line {
	lines := []jview.Line{}
	var current []jview.Segment
	col := 0

	for _, s := range segments {
		parts := strings.Split(s.Text, "\n")
		for i, part := range parts {
			if part != "" {
				part = expandTabs(part, col)
				col += len([]rune(part))
				current = append(current, jview.Segment{Element: s.Element, Text: part})
			}
			if i < len(parts)-1 {
				lines = append(lines, jview.Line{Segments: current})
				current = nil
				col = 0
			}
		}
	}

	if len(current) > 0 {
		lines = append(lines, jview.Line{Segments: current})
	}
	return lines
}

// expandTabs converts tabs to spaces using tab stops every tabWidth columns.
// startCol is the column at which s begins.
func expandTabs(s string, startCol int) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r == '\t' {
			next := (col/tabWidth + 1) * tabWidth
			sb.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}
