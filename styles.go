package jview

// Style is a concrete render style. The zero value is the neutral style:
// default colors and no modifiers.
type Style struct {
	Fg       Color // Foreground color
	Bg       Color // Background color
	Inverted bool  // Swap foreground and background
	Bold     bool
	Dimmed   bool
}

// State is the display state of an element: the combination of cursor focus
// and search-match status.
type State int

// Display states, in the order partial specs are assigned to them.
const (
	Unfocused State = iota
	UnfocusedMatched
	Focused
	FocusedMatched
)

// NumStates is the number of display states.
const NumStates = 4

// States lists every display state in order.
var States = [NumStates]State{Unfocused, UnfocusedMatched, Focused, FocusedMatched}

// StateFor returns the display state for the given focus and match flags.
func StateFor(focused, matched bool) State {
	switch {
	case focused && matched:
		return FocusedMatched
	case focused:
		return Focused
	case matched:
		return UnfocusedMatched
	default:
		return Unfocused
	}
}

// String returns the snake_case name of the state.
func (s State) String() string {
	switch s {
	case Unfocused:
		return "unfocused"
	case UnfocusedMatched:
		return "unfocused_matched"
	case Focused:
		return "focused"
	case FocusedMatched:
		return "focused_matched"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four display states.
func (s State) Valid() bool {
	return s >= Unfocused && s <= FocusedMatched
}

// Styles holds one Style per display state, indexed by State.
type Styles [NumStates]Style

// Get returns the style for state. Unknown states get the neutral style.
func (s Styles) Get(state State) Style {
	if !state.Valid() {
		return Style{}
	}
	return s[state]
}
