package jview

import "fmt"

// Fallback selects what a Highlighter does when it is given no theme.
type Fallback int

// Fallback policies.
const (
	FallbackBuiltin Fallback = iota // Use DefaultTheme
	FallbackNone                    // Stay unthemed: every lookup is neutral
)

// String returns the configuration name of the policy.
func (f Fallback) String() string {
	switch f {
	case FallbackBuiltin:
		return "builtin"
	case FallbackNone:
		return "none"
	default:
		return fmt.Sprintf("Fallback(%d)", int(f))
	}
}

// ParseFallback parses a policy name as written in configuration.
func ParseFallback(s string) (Fallback, error) {
	switch s {
	case "builtin", "":
		return FallbackBuiltin, nil
	case "none":
		return FallbackNone, nil
	default:
		return 0, fmt.Errorf("unknown theme fallback %q (want builtin or none)", s)
	}
}

// Highlighter answers style queries for element names. It is read-only after
// construction and safe for concurrent use.
type Highlighter struct {
	theme *Theme
}

// NewHighlighter returns a Highlighter over theme. When theme is nil the
// fallback policy decides between the built-in theme and no theming.
func NewHighlighter(theme *Theme, fallback Fallback) *Highlighter {
	if theme == nil && fallback == FallbackBuiltin {
		theme = DefaultTheme()
	}
	return &Highlighter{theme: theme}
}

// Themed reports whether the highlighter holds a theme.
func (h *Highlighter) Themed() bool {
	return h.theme != nil
}

// Theme returns the held theme, or nil when unthemed.
func (h *Highlighter) Theme() *Theme {
	return h.theme
}

// Styles returns the four-state styles for name. Unknown names, and every
// name when unthemed, get neutral styles.
func (h *Highlighter) Styles(name string) Styles {
	s, _ := h.theme.Lookup(name)
	return s
}

// Style returns the style for name in the given display state.
func (h *Highlighter) Style(name string, state State) Style {
	return h.Styles(name).Get(state)
}

// DefaultStyle returns the neutral style used when no element applies.
func (h *Highlighter) DefaultStyle() Style {
	return Style{}
}

// Dimmed returns the neutral style with only the dimmed modifier set, for
// de-emphasized chrome such as truncation markers.
func (h *Highlighter) Dimmed() Style {
	return Style{Dimmed: true}
}
