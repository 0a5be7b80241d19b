package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview's bindings. The cursor moves over document lines
// so every focused state can be inspected.
type KeyMap struct {
	PrevLine  key.Binding
	NextLine  key.Binding
	HalfUp    key.Binding
	HalfDown  key.Binding
	FirstLine key.Binding
	LastLine  key.Binding
	// ToggleMatch switches the matched states on and off.
	ToggleMatch key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the preview bindings, with vim and arrow keys for
// cursor movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevLine: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "focus previous line"),
		),
		NextLine: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "focus next line"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "jump half a screen back"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "jump half a screen ahead"),
		),
		FirstLine: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/home", "focus first line"),
		),
		LastLine: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G/end", "focus last line"),
		),
		ToggleMatch: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "show or hide matched styles"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "close preview"),
		),
	}
}

