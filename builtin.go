package jview

// Element names understood by the built-in theme.
const (
	ElementObjectLabel = "object_label" // "{...}" summary of a collapsed object
	ElementArrayLabel  = "array_label"  // "[...]" summary of a collapsed array
	ElementKey         = "key"
	ElementString      = "string"
	ElementNumber      = "number"
	ElementBoolean     = "boolean"
	ElementNull        = "null"
	ElementPunctuation = "punctuation" // Brackets, braces, colons and commas
	ElementPreview     = "preview"     // Inline preview of collapsed containers
	ElementEllipsis    = "ellipsis"
)

// Palette slots used by the built-in theme. Sticking to the 16 standard
// colors lets the theme follow the user's terminal palette.
const (
	paletteBlack        = 0
	paletteRed          = 1
	paletteGreen        = 2
	paletteYellow       = 3
	paletteBlue         = 4
	paletteMagenta      = 5
	paletteCyan         = 6
	paletteBrightYellow = 11
)

// DefaultTheme returns the built-in theme, used when no theme file is
// configured and the fallback policy allows it.
func DefaultTheme() *Theme {
	return &Theme{styles: map[string]Styles{
		ElementObjectLabel: builtinStyles(IndexedColor(paletteBlue), true),
		ElementArrayLabel:  builtinStyles(IndexedColor(paletteMagenta), true),
		ElementKey:         builtinStyles(IndexedColor(paletteCyan), false),
		ElementString:      builtinStyles(IndexedColor(paletteGreen), false),
		ElementNumber:      builtinStyles(IndexedColor(paletteYellow), false),
		ElementBoolean:     builtinStyles(IndexedColor(paletteRed), false),
		ElementNull:        builtinStyles(IndexedColor(paletteRed), false),
		ElementPunctuation: builtinStyles(DefaultColor(), false),
		ElementPreview: {
			{Dimmed: true},
			{Fg: IndexedColor(paletteBlack), Bg: IndexedColor(paletteYellow)},
			{Inverted: true},
			{Fg: IndexedColor(paletteBlack), Bg: IndexedColor(paletteBrightYellow)},
		},
		ElementEllipsis: {{Dimmed: true}, {Dimmed: true}, {Dimmed: true}, {Dimmed: true}},
	}}
}

// builtinStyles derives the four states from a base color: matches get a
// yellow background, focus inverts.
func builtinStyles(fg Color, bold bool) Styles {
	return Styles{
		Unfocused:        {Fg: fg, Bold: bold},
		UnfocusedMatched: {Fg: IndexedColor(paletteBlack), Bg: IndexedColor(paletteYellow), Bold: bold},
		Focused:          {Fg: fg, Bold: bold, Inverted: true},
		FocusedMatched:   {Fg: IndexedColor(paletteBlack), Bg: IndexedColor(paletteBrightYellow), Bold: true},
	}
}
