package jview

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorKind identifies which variant a Color holds.
type ColorKind uint8

// Color kinds.
const (
	ColorDefault ColorKind = iota // Inherit the terminal's native color
	ColorIndexed                  // Terminal palette slot (0-255)
	ColorRGB                      // 24-bit truecolor
)

// Color is a terminal color. The zero value is the terminal default color.
type Color struct {
	Kind  ColorKind
	Index uint8  // Palette slot, set when Kind is ColorIndexed
	RGB   uint32 // 0xRRGGBB, set when Kind is ColorRGB
}

// DefaultColor returns the color that inherits the terminal's native color.
func DefaultColor() Color {
	return Color{}
}

// IndexedColor returns a palette color.
func IndexedColor(n uint8) Color {
	return Color{Kind: ColorIndexed, Index: n}
}

// RGBColor returns a truecolor value. Bits above 0xFFFFFF are discarded.
func RGBColor(v uint32) Color {
	return Color{Kind: ColorRGB, RGB: v & 0xffffff}
}

// String returns the canonical token for c, accepted by ParseColor.
func (c Color) String() string {
	switch c.Kind {
	case ColorIndexed:
		return fmt.Sprintf("C16(%d)", c.Index)
	case ColorRGB:
		return fmt.Sprintf("#%06x", c.RGB)
	default:
		return "default"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorErrorReason identifies why a color token was rejected.
type ColorErrorReason string

// Color error reasons.
const (
	ErrInvalidIndexed ColorErrorReason = "invalid_indexed"
	ErrInvalidHex     ColorErrorReason = "invalid_hex"
	ErrUnknownFormat  ColorErrorReason = "unknown_format"
)

// ColorError describes a color token that could not be parsed.
type ColorError struct {
	Token  string
	Reason ColorErrorReason
}

// Error implements the error interface.
func (e ColorError) Error() string {
	switch e.Reason {
	case ErrInvalidIndexed:
		return fmt.Sprintf("invalid indexed color: %s", e.Token)
	case ErrInvalidHex:
		return fmt.Sprintf("invalid hex color: %s", e.Token)
	default:
		return fmt.Sprintf("unknown color format: %s", e.Token)
	}
}

const indexedPrefix = "C16("

// ParseColor converts a color token into a Color.
//
// Accepted forms are "default", "C16(n)" with n in 0-255, "#RRGGBB" and bare
// "RRGGBB". Any token of exactly six bytes is treated as bare hex, so a
// six-character word such as "yellow" fails with ErrInvalidHex rather than
// ErrUnknownFormat.
func ParseColor(token string) (Color, error) {
	switch {
	case token == "default":
		return DefaultColor(), nil
	case strings.HasPrefix(token, indexedPrefix):
		return parseIndexed(token)
	case strings.HasPrefix(token, "#") || len(token) == 6:
		return parseHex(token)
	default:
		return Color{}, ColorError{Token: token, Reason: ErrUnknownFormat}
	}
}

func parseIndexed(token string) (Color, error) {
	payload, ok := strings.CutSuffix(strings.TrimPrefix(token, indexedPrefix), ")")
	if !ok || !isDigits(payload) {
		return Color{}, ColorError{Token: token, Reason: ErrInvalidIndexed}
	}
	n, err := strconv.ParseUint(payload, 10, 8)
	if err != nil {
		return Color{}, ColorError{Token: token, Reason: ErrInvalidIndexed}
	}
	return IndexedColor(uint8(n)), nil
}

func parseHex(token string) (Color, error) {
	digits := strings.TrimPrefix(token, "#")
	if len(digits) != 6 {
		return Color{}, ColorError{Token: token, Reason: ErrInvalidHex}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, ColorError{Token: token, Reason: ErrInvalidHex}
	}
	return RGBColor(uint32(v)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
