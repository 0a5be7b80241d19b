package jview

import "sort"

// StyleSpec is a partial style as written in a theme document. Every field is
// optional; absent fields take their neutral value during resolution.
type StyleSpec struct {
	Fg       *Color `toml:"fg,omitempty" yaml:"fg,omitempty"`
	Bg       *Color `toml:"bg,omitempty" yaml:"bg,omitempty"`
	Inverted *bool  `toml:"inverted,omitempty" yaml:"inverted,omitempty"`
	Bold     *bool  `toml:"bold,omitempty" yaml:"bold,omitempty"`
	Dimmed   *bool  `toml:"dimmed,omitempty" yaml:"dimmed,omitempty"`
}

// Style converts s to a concrete Style. A nil StyleSpec is neutral.
func (s *StyleSpec) Style() Style {
	if s == nil {
		return Style{}
	}
	return Style{
		Fg:       valueOr(s.Fg, DefaultColor()),
		Bg:       valueOr(s.Bg, DefaultColor()),
		Inverted: valueOr(s.Inverted, false),
		Bold:     valueOr(s.Bold, false),
		Dimmed:   valueOr(s.Dimmed, false),
	}
}

// SpecFor returns a fully populated spec for style.
func SpecFor(style Style) *StyleSpec {
	return &StyleSpec{
		Fg:       &style.Fg,
		Bg:       &style.Bg,
		Inverted: &style.Inverted,
		Bold:     &style.Bold,
		Dimmed:   &style.Dimmed,
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// ThemeSource maps element names to up to four optional partial styles, one
// per display state in State order. Entries past the fourth are ignored and
// nil entries are neutral.
type ThemeSource map[string][]*StyleSpec

// ThemeDocument is the top-level shape of a theme file.
type ThemeDocument struct {
	Themes ThemeSource `toml:"themes" yaml:"themes"`
}

// Theme is a resolved theme: every element has all four states populated.
// A Theme is immutable once built and safe for concurrent reads.
type Theme struct {
	styles map[string]Styles
}

// NewTheme builds a Theme from complete per-element styles. The map is copied.
func NewTheme(styles map[string]Styles) *Theme {
	m := make(map[string]Styles, len(styles))
	for name, s := range styles {
		m[name] = s
	}
	return &Theme{styles: m}
}

// Lookup returns the styles for an element name.
func (t *Theme) Lookup(name string) (Styles, bool) {
	if t == nil {
		return Styles{}, false
	}
	s, ok := t.styles[name]
	return s, ok
}

// Names returns the element names in the theme, sorted.
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of elements in the theme.
func (t *Theme) Len() int {
	if t == nil {
		return 0
	}
	return len(t.styles)
}

// Source returns a ThemeSource that resolves back to t, with every state of
// every element fully specified.
func (t *Theme) Source() ThemeSource {
	src := make(ThemeSource, t.Len())
	for _, name := range t.Names() {
		styles := t.styles[name]
		specs := make([]*StyleSpec, NumStates)
		for _, state := range States {
			specs[state] = SpecFor(styles[state])
		}
		src[name] = specs
	}
	return src
}

// Resolve converts a sparse theme source into a complete Theme. It never
// fails: missing states and fields fall back to the neutral style.
func Resolve(src ThemeSource) *Theme {
	styles := make(map[string]Styles, len(src))
	for name, specs := range src {
		styles[name] = resolveStyles(specs)
	}
	return &Theme{styles: styles}
}

func resolveStyles(specs []*StyleSpec) Styles {
	var s Styles
	for _, state := range States {
		if int(state) >= len(specs) {
			break
		}
		s[state] = specs[state].Style()
	}
	return s
}
