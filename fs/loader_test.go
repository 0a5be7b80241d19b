package fs_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/jview"
	"github.com/fwojciec/jview/fs"
	"github.com/fwojciec/jview/mock"
	"github.com/fwojciec/jview/toml"
	"github.com/fwojciec/jview/yaml"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decoders() map[string]jview.ThemeDecoder {
	return map[string]jview.ThemeDecoder{
		".toml": toml.NewDecoder(),
		".yaml": yaml.NewDecoder(),
		".yml":  yaml.NewDecoder(),
	}
}

func locatorAt(path string) *mock.ThemeLocator {
	return &mock.ThemeLocator{
		LocateFn: func() (string, error) { return path, nil },
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_NoThemeFile(t *testing.T) {
	t.Parallel()

	loader := fs.NewLoader(locatorAt(""), decoders(), zerolog.Nop())

	theme, err := loader.Load()

	require.NoError(t, err)
	assert.Nil(t, theme)
}

func TestLoader_Load_TOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.toml")
	writeFile(t, path, `
[themes]
string = [{ fg = "C16(2)" }, {}, { inverted = true }]
`)
	loader := fs.NewLoader(locatorAt(path), decoders(), zerolog.Nop())

	theme, err := loader.Load()

	require.NoError(t, err)
	require.NotNil(t, theme)
	styles, ok := theme.Lookup("string")
	require.True(t, ok)
	assert.Equal(t, jview.Styles{
		{Fg: jview.IndexedColor(2)},
		{},
		{Inverted: true},
		{},
	}, styles)
}

func TestLoader_Load_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.YML")
	writeFile(t, path, "themes:\n  \"null\":\n    - ~\n    - { bold: true }\n")
	loader := fs.NewLoader(locatorAt(path), decoders(), zerolog.Nop())

	theme, err := loader.Load()

	require.NoError(t, err)
	styles, ok := theme.Lookup("null")
	require.True(t, ok)
	assert.Equal(t, jview.Styles{{}, {Bold: true}}, styles)
}

func TestLoader_Load_BadColorFailsWholeDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeFile(t, path, "themes:\n  string:\n    - fg: C16(2)\n  key:\n    - bg: zzzzzz\n")
	loader := fs.NewLoader(locatorAt(path), decoders(), zerolog.Nop())

	theme, err := loader.Load()

	assert.Nil(t, theme)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	var colorErr jview.ColorError
	require.True(t, errors.As(err, &colorErr))
	assert.Equal(t, jview.ErrInvalidHex, colorErr.Reason)
}

func TestLoader_Load_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.json")
	writeFile(t, path, `{"themes": {}}`)
	loader := fs.NewLoader(locatorAt(path), decoders(), zerolog.Nop())

	_, err := loader.Load()

	assert.True(t, errors.Is(err, fs.ErrUnsupportedFormat))
}

func TestLoader_Load_LocatorError(t *testing.T) {
	t.Parallel()

	locateErr := errors.New("permission denied")
	loader := fs.NewLoader(&mock.ThemeLocator{
		LocateFn: func() (string, error) { return "", locateErr },
	}, decoders(), zerolog.Nop())

	_, err := loader.Load()

	assert.Equal(t, locateErr, err)
}

func TestLoader_Load_DelegatesToDecoderByExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.custom")
	writeFile(t, path, "payload")

	var got string
	loader := fs.NewLoader(locatorAt(path), map[string]jview.ThemeDecoder{
		".custom": &mock.ThemeDecoder{
			DecodeFn: func(r io.Reader) (jview.ThemeSource, error) {
				data, _ := io.ReadAll(r)
				got = string(data)
				return jview.ThemeSource{"key": nil}, nil
			},
		},
	}, zerolog.Nop())

	theme, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "payload", got, "decoder should receive file content")
	assert.Equal(t, []string{"key"}, theme.Names())
}

func TestLoader_Decode_MissingFile(t *testing.T) {
	t.Parallel()

	loader := fs.NewLoader(locatorAt(""), decoders(), zerolog.Nop())

	_, err := loader.Decode(filepath.Join(t.TempDir(), "absent.toml"))

	assert.True(t, errors.Is(err, os.ErrNotExist))
}
