// Package lipgloss renders resolved theme styles using the Lipgloss styling
// library.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/jview"
	"github.com/muesli/termenv"
)

// ProfileAuto selects the color profile detected from the output terminal.
const ProfileAuto = "auto"

// ParseProfile maps a color profile name to a termenv profile. The auto
// result reports that the profile should be detected instead.
func ParseProfile(name string) (profile termenv.Profile, auto bool, err error) {
	switch strings.ToLower(name) {
	case ProfileAuto, "":
		return termenv.TrueColor, true, nil
	case "ascii", "none":
		return termenv.Ascii, false, nil
	case "ansi", "ansi16":
		return termenv.ANSI, false, nil
	case "ansi256", "256":
		return termenv.ANSI256, false, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, false, nil
	default:
		return termenv.Ascii, false, fmt.Errorf("unknown color profile %q", name)
	}
}

// NewRenderer creates a Lipgloss renderer writing to w with the named color
// profile.
func NewRenderer(w io.Writer, profile string) (*lipgloss.Renderer, error) {
	p, auto, err := ParseProfile(profile)
	if err != nil {
		return nil, err
	}
	if auto {
		return lipgloss.NewRenderer(w), nil
	}
	r := lipgloss.NewRenderer(w, termenv.WithProfile(p))
	// The renderer re-detects its profile from the environment unless it is
	// set explicitly.
	r.SetColorProfile(p)
	return r, nil
}

// Color converts a theme color to a Lipgloss terminal color.
func Color(c jview.Color) lipgloss.TerminalColor {
	switch c.Kind {
	case jview.ColorIndexed:
		return lipgloss.ANSIColor(c.Index)
	case jview.ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%06x", c.RGB))
	default:
		return lipgloss.NoColor{}
	}
}

// Painter renders text with the styles a Highlighter resolves.
type Painter struct {
	renderer    *lipgloss.Renderer
	highlighter *jview.Highlighter
}

// NewPainter creates a Painter. If renderer is nil, the default Lipgloss
// renderer is used.
func NewPainter(renderer *lipgloss.Renderer, highlighter *jview.Highlighter) *Painter {
	return &Painter{
		renderer:    renderer,
		highlighter: highlighter,
	}
}

// Themed reports whether the painter draws with a theme.
func (p *Painter) Themed() bool {
	return p.highlighter.Themed()
}

// Style converts a resolved style to a Lipgloss style.
func (p *Painter) Style(s jview.Style) lipgloss.Style {
	var style lipgloss.Style
	if p.renderer != nil {
		style = p.renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	return style.
		Foreground(Color(s.Fg)).
		Background(Color(s.Bg)).
		Reverse(s.Inverted).
		Bold(s.Bold).
		Faint(s.Dimmed)
}

// Element returns the Lipgloss style for an element in a display state.
func (p *Painter) Element(name string, state jview.State) lipgloss.Style {
	return p.Style(p.highlighter.Style(name, state))
}

// Render styles text as the named element in the given display state.
func (p *Painter) Render(name string, state jview.State, text string) string {
	return p.Element(name, state).Render(text)
}

// RenderDefault styles text with the neutral style.
func (p *Painter) RenderDefault(text string) string {
	return p.Style(p.highlighter.DefaultStyle()).Render(text)
}

// RenderDimmed styles text as de-emphasized chrome.
func (p *Painter) RenderDimmed(text string) string {
	return p.Style(p.highlighter.Dimmed()).Render(text)
}

// RenderChrome styles text as the named element when the theme defines it and
// as dimmed chrome otherwise.
func (p *Painter) RenderChrome(name string, state jview.State, text string) string {
	if _, ok := p.highlighter.Theme().Lookup(name); ok {
		return p.Render(name, state, text)
	}
	return p.RenderDimmed(text)
}
