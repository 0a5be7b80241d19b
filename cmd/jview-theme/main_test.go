package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/jview"
	main "github.com/fwojciec/jview/cmd/jview-theme"
	"github.com/fwojciec/jview/mock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func themeWithString(c jview.Color) *jview.Theme {
	return jview.NewTheme(map[string]jview.Styles{
		jview.ElementString: {{Fg: c}},
	})
}

func loaderReturning(theme *jview.Theme, err error) *mock.ThemeLoader {
	return &mock.ThemeLoader{
		LoadFn: func() (*jview.Theme, error) {
			return theme, err
		},
	}
}

func TestApp_Highlighter(t *testing.T) {
	t.Parallel()

	t.Run("uses loaded theme", func(t *testing.T) {
		t.Parallel()

		theme := themeWithString(jview.IndexedColor(2))
		app := &main.App{Loader: loaderReturning(theme, nil), Logger: zerolog.Nop()}

		h := app.Highlighter()

		assert.Same(t, theme, h.Theme())
	})

	t.Run("load error falls back to built-in theme", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		app := &main.App{
			Loader:   loaderReturning(nil, errors.New("invalid hex color: zz")),
			Fallback: jview.FallbackBuiltin,
			Logger:   zerolog.New(&logs),
		}

		h := app.Highlighter()

		assert.Equal(t, jview.DefaultTheme(), h.Theme())
		assert.Contains(t, logs.String(), "invalid hex color")
	})

	t.Run("load error without fallback is unthemed", func(t *testing.T) {
		t.Parallel()

		app := &main.App{
			Loader:   loaderReturning(nil, errors.New("boom")),
			Fallback: jview.FallbackNone,
			Logger:   zerolog.Nop(),
		}

		assert.False(t, app.Highlighter().Themed())
	})
}

func TestApp_Preview(t *testing.T) {
	t.Parallel()

	t.Run("passes highlighter to previewer", func(t *testing.T) {
		t.Parallel()

		theme := themeWithString(jview.RGBColor(0x112233))
		var got *jview.Highlighter
		app := &main.App{
			Loader: loaderReturning(theme, nil),
			Previewer: &mock.ThemePreviewer{
				PreviewFn: func(ctx context.Context, h *jview.Highlighter) error {
					got = h
					return nil
				},
			},
			HasTTY: func() bool { return true },
			Logger: zerolog.Nop(),
		}

		err := app.Preview(context.Background())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, jview.RGBColor(0x112233), got.Style(jview.ElementString, jview.Unfocused).Fg)
	})

	t.Run("requires a terminal", func(t *testing.T) {
		t.Parallel()

		called := false
		app := &main.App{
			Loader: loaderReturning(nil, nil),
			Previewer: &mock.ThemePreviewer{
				PreviewFn: func(ctx context.Context, h *jview.Highlighter) error {
					called = true
					return nil
				},
			},
			HasTTY: func() bool { return false },
			Logger: zerolog.Nop(),
		}

		err := app.Preview(context.Background())

		require.ErrorIs(t, err, main.ErrNoTTY)
		assert.False(t, called, "previewer should not run without a terminal")
	})

	t.Run("returns previewer error", func(t *testing.T) {
		t.Parallel()

		previewErr := errors.New("terminal error")
		app := &main.App{
			Loader: loaderReturning(nil, nil),
			Previewer: &mock.ThemePreviewer{
				PreviewFn: func(ctx context.Context, h *jview.Highlighter) error {
					return previewErr
				},
			},
			Logger: zerolog.Nop(),
		}

		err := app.Preview(context.Background())

		assert.Equal(t, previewErr, err)
	})
}

func TestApp_Dump(t *testing.T) {
	t.Parallel()

	t.Run("encodes effective theme", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		var encoded *jview.Theme
		app := &main.App{
			Stdout:   &stdout,
			Loader:   loaderReturning(nil, nil),
			Fallback: jview.FallbackBuiltin,
			Encoder: &mock.ThemeEncoder{
				EncodeFn: func(w io.Writer, theme *jview.Theme) error {
					encoded = theme
					_, err := io.WriteString(w, "encoded")
					return err
				},
			},
			Logger: zerolog.Nop(),
		}

		err := app.Dump()

		require.NoError(t, err)
		assert.Equal(t, jview.DefaultTheme(), encoded)
		assert.Equal(t, "encoded", stdout.String())
	})

	t.Run("unthemed writes notice only", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		app := &main.App{
			Stdout:   &stdout,
			Stderr:   &stderr,
			Loader:   loaderReturning(nil, nil),
			Fallback: jview.FallbackNone,
			Encoder:  &mock.ThemeEncoder{},
			Logger:   zerolog.Nop(),
		}

		err := app.Dump()

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "fallback is none")
	})
}

func TestApp_Check(t *testing.T) {
	t.Parallel()

	decoder := &mock.ThemeFileDecoder{
		DecodeFn: func(path string) (jview.ThemeSource, error) {
			switch path {
			case "good.toml":
				return jview.ThemeSource{
					jview.ElementString: {{}},
					jview.ElementKey:    {{}},
				}, nil
			case "custom.yaml":
				return jview.ThemeSource{"comment": {{}}}, nil
			default:
				return nil, errors.New("invalid indexed color: C16(x)")
			}
		},
	}

	t.Run("reports each path in order", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		app := &main.App{Stdout: &stdout, Decoder: decoder, Workers: 2, Logger: zerolog.Nop()}

		err := app.Check(context.Background(), []string{"good.toml", "bad.toml", "custom.yaml"})

		require.ErrorIs(t, err, main.ErrInvalidThemes)
		assert.ErrorContains(t, err, "1 of 3")
		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "ok\tgood.toml\t2 elements", lines[0])
		assert.Equal(t, "FAIL\tbad.toml\tinvalid indexed color: C16(x)", lines[1])
		assert.Equal(t, "ok\tcustom.yaml\t1 elements", lines[2])
	})

	t.Run("warns about elements the viewer does not draw", func(t *testing.T) {
		t.Parallel()

		var stdout, logs bytes.Buffer
		app := &main.App{Stdout: &stdout, Decoder: decoder, Logger: zerolog.New(&logs)}

		err := app.Check(context.Background(), []string{"custom.yaml"})

		require.NoError(t, err)
		assert.Contains(t, logs.String(), "comment")
	})

	t.Run("cancelled context stops checking", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		app := &main.App{Stdout: io.Discard, Decoder: decoder, Logger: zerolog.Nop()}

		err := app.Check(ctx, []string{"good.toml"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestApp_SampleLines(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes file in detected language", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0o644))

		want := []jview.Line{{Segments: []jview.Segment{{Element: jview.ElementKey, Text: `"a"`}}}}
		var gotLanguage, gotSource string
		app := &main.App{
			Detector: &mock.LanguageDetector{
				DetectFn: func(string) string { return "JSON" },
			},
			Tokenizer: &mock.DocumentTokenizer{
				TokenizeLinesFn: func(language, source string) ([]jview.Line, error) {
					gotLanguage, gotSource = language, source
					return want, nil
				},
			},
			Logger: zerolog.Nop(),
		}

		lines, err := app.SampleLines(path)

		require.NoError(t, err)
		assert.Equal(t, want, lines)
		assert.Equal(t, "JSON", gotLanguage)
		assert.Equal(t, `{"a": 1}`, gotSource)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		app := &main.App{
			Detector: &mock.LanguageDetector{
				DetectFn: func(string) string { return "" },
			},
			Tokenizer: &mock.DocumentTokenizer{},
			Logger:    zerolog.Nop(),
		}

		_, err := app.SampleLines("notes.xyz")

		assert.ErrorIs(t, err, main.ErrUnknownLanguage)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		app := &main.App{
			Detector: &mock.LanguageDetector{
				DetectFn: func(string) string { return "JSON" },
			},
			Tokenizer: &mock.DocumentTokenizer{},
			Logger:    zerolog.Nop(),
		}

		_, err := app.SampleLines(filepath.Join(t.TempDir(), "missing.json"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

// These tests run the real command tree against files on disk. They change
// the environment and cannot run in parallel.

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := main.NewRootCmd("1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCmd(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out, err := runRoot(t, "version")

		require.NoError(t, err)
		assert.Equal(t, "jview-theme 1.2.3\n", out)
	})

	t.Run("check decodes toml and yaml", func(t *testing.T) {
		good := writeFile(t, "theme.toml", "[themes]\nstring = [{ fg = \"C16(2)\" }]\n")
		bad := writeFile(t, "theme.yaml", "themes:\n  string:\n    - fg: \"#12\"\n")

		out, err := runRoot(t, "check", "--log-level", "disabled", good, bad)

		require.ErrorIs(t, err, main.ErrInvalidThemes)
		assert.Contains(t, out, "ok\t"+good+"\t1 elements")
		assert.Contains(t, out, "FAIL\t"+bad)
		assert.Contains(t, out, "invalid hex color: #12")
	})

	t.Run("check requires a file", func(t *testing.T) {
		_, err := runRoot(t, "check")

		assert.Error(t, err)
	})

	t.Run("dump writes the theme file back as toml", func(t *testing.T) {
		path := writeFile(t, "mine.toml", "[themes]\nnumber = [{ fg = \"#ff8800\", bold = true }]\n")

		out, err := runRoot(t, "dump", "--theme", path)

		require.NoError(t, err)
		assert.Contains(t, out, "themes.number")
		assert.Contains(t, out, `"#ff8800"`)
		assert.NotContains(t, out, "themes.string")
	})

	t.Run("dump without theme file uses the built-in theme", func(t *testing.T) {
		out, err := runRoot(t, "dump")

		require.NoError(t, err)
		assert.Contains(t, out, "themes.string")
		assert.Contains(t, out, "themes.ellipsis")
	})

	t.Run("dump with fallback none prints nothing", func(t *testing.T) {
		out, err := runRoot(t, "dump", "--fallback", "none")

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("invalid flag value fails config validation", func(t *testing.T) {
		_, err := runRoot(t, "dump", "--color-profile", "sepia")

		assert.ErrorContains(t, err, "display.color_profile")
	})
}
