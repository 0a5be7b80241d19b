package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/jview"
)

// Compile-time interface verification.
var _ jview.LanguageDetector = (*Detector)(nil)

// Detector detects document languages from file names using chroma.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the lexer name for path, or an empty string if no lexer
// matches its file name.
func (d *Detector) Detect(path string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
