package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/jview"
)

// Compile-time interface verification.
var _ jview.ThemeLocator = (*Locator)(nil)

// DefaultThemeNames are the file names searched for in each directory, in
// order.
var DefaultThemeNames = []string{"theme.toml", "theme.yaml", "theme.yml"}

// Locator finds the theme document. An explicit Path wins; otherwise the
// first existing Names entry in Dirs is used.
type Locator struct {
	Path  string
	Dirs  []string
	Names []string
}

// NewLocator creates a Locator for an optional explicit path that otherwise
// searches the default config directory.
func NewLocator(path string) *Locator {
	return &Locator{
		Path:  path,
		Dirs:  []string{DefaultConfigDir()},
		Names: DefaultThemeNames,
	}
}

// Locate returns the theme document path, or an empty string when none of
// the candidates exist.
func (l *Locator) Locate() (string, error) {
	if l.Path != "" {
		if err := checkFile(l.Path); err != nil {
			return "", fmt.Errorf("theme file: %w", err)
		}
		return l.Path, nil
	}

	for _, dir := range l.Dirs {
		for _, name := range l.Names {
			path := filepath.Join(dir, name)
			err := checkFile(path)
			if err == nil {
				return path, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("theme file: %w", err)
			}
		}
	}

	return "", nil
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
