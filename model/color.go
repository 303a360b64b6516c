package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-colorlife/rules"
)

// RGB stores explicit 8-bit color channels
type RGB struct {
	R, G, B uint8
}

// DefaultColor is the color every cell starts with
var DefaultColor = RGB{0, 0, 0}

// ParseHex parses a "#rrggbb" (or "rrggbb") color
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, errors.Wrapf(ErrInvalidArgument, "[ParseHex] color must have 6 hex digits: %+v", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(ErrInvalidArgument, "[ParseHex] malformed color %+v: %v", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParsePalette parses every entry of a hex palette
func ParsePalette(entries []string) ([]RGB, error) {
	palette := make([]RGB, 0, len(entries))
	for _, e := range entries {
		c, err := ParseHex(e)
		if err != nil {
			return nil, errors.Wrap(err, "[ParsePalette] failed to parse palette")
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// Hex returns the "#rrggbb" form of the color
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Shade scales every channel by factor, clamped to [0, 1]
func (c RGB) Shade(factor float64) RGB {
	factor = max(0, min(1, factor))
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

/*
InheritColor builds a newborn's color from its parents in clockwise scan order.

The first parent gives red, the second green and the third blue. Births only
happen with exactly three living neighbors, so any other count is a bug in the
caller and is reported as ErrInvariantViolation.
*/
func InheritColor(parents []RGB) (RGB, error) {
	if len(parents) != rules.BirthNeighbors {
		return RGB{}, errors.Wrapf(ErrInvariantViolation,
			"[InheritColor] birth requires %d parents, got %d", rules.BirthNeighbors, len(parents))
	}
	return RGB{R: parents[0].R, G: parents[1].G, B: parents[2].B}, nil
}
