// Package colorparse turns user-entered colour text into colours.
package colorparse

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrFormat reports text that is neither hex nor three decimal components.
	ErrFormat = errors.New("invalid color format")
	// ErrRange reports a decimal component outside 0..255.
	ErrRange = errors.New("color component out of range")
)

// Error describes a rejected colour entry. Message is suitable for showing
// to the user as-is.
type Error struct {
	Input   string
	Message string
	Err     error
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %q", e.Message, e.Input) }

func (e *Error) Unwrap() error { return e.Err }

// Parse accepts "#RRGGBB", "RRGGBB" (case-insensitive) or three decimal
// integers in [0,255] separated by commas and/or whitespace. The result is
// always opaque.
func Parse(s string) (color.RGBA, error) {
	spec := strings.TrimSpace(s)
	if spec == "" {
		return color.RGBA{}, &Error{Input: s, Message: "enter #RRGGBB or R,G,B", Err: ErrFormat}
	}
	hex := strings.TrimPrefix(spec, "#")
	if len(hex) == 6 && isHex(hex) {
		return hexRGB(hex), nil
	}
	if strings.HasPrefix(spec, "#") {
		return color.RGBA{}, &Error{Input: s, Message: "hex colors need six digits", Err: ErrFormat}
	}

	parts := strings.FieldsFunc(spec, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(parts) != 3 {
		return color.RGBA{}, &Error{Input: s, Message: "enter #RRGGBB or R,G,B", Err: ErrFormat}
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return color.RGBA{}, &Error{Input: s, Message: "values must be between 0 and 255", Err: ErrRange}
			}
			return color.RGBA{}, &Error{Input: s, Message: "enter #RRGGBB or R,G,B", Err: ErrFormat}
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, &Error{Input: s, Message: "values must be between 0 and 255", Err: ErrRange}
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

// ParseRGBA parses "#RRGGBB" or "#RRGGBBAA" as used by theme and config files.
func ParseRGBA(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("color must start with #")
	}
	hex := strings.TrimPrefix(s, "#")
	if !isHex(hex) {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}
	switch len(hex) {
	case 6:
		return hexRGB(hex), nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{
			R: uint8(val >> 24),
			G: uint8((val >> 16) & 0xFF),
			B: uint8((val >> 8) & 0xFF),
			A: uint8(val & 0xFF),
		}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex length")
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func hexRGB(hex string) color.RGBA {
	val, _ := strconv.ParseUint(hex, 16, 32)
	return color.RGBA{
		R: uint8(val >> 16),
		G: uint8((val >> 8) & 0xFF),
		B: uint8(val & 0xFF),
		A: 255,
	}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
