package lolrgb

import (
	"image/color"
	"time"
)

// Palette is a color specification: a single entry paints everything in that
// color, multiple entries form a cycle that advances at the configured
// Boundary.
type Palette []color.RGBA

// Boundary selects when a color cycle advances to its next entry.
type Boundary int

const (
	// CharBoundary advances the cycle on every character, spaces included.
	CharBoundary Boundary = iota
	// WordBoundary advances the cycle once at each space to non-space edge,
	// so every character of a word shares one color and a run of spaces
	// consumes a single step.
	WordBoundary
)

// Predefined colors. Channel values are 1, not 255: these pixels are BRIGHT.
var (
	Red     = color.RGBA{R: 1, A: 0xFF}
	Yellow  = color.RGBA{R: 1, G: 1, A: 0xFF}
	Green   = color.RGBA{G: 1, A: 0xFF}
	Cyan    = color.RGBA{G: 1, B: 1, A: 0xFF}
	Blue    = color.RGBA{B: 1, A: 0xFF}
	Magenta = color.RGBA{R: 1, B: 1, A: 0xFF}
	Black   = color.RGBA{A: 0xFF}
)

// Predefined cycles.
var (
	RGB     = Palette{Red, Green, Blue}
	Rainbow = Palette{Red, Yellow, Green, Cyan, Blue, Magenta}
)

// Pause tiers for the delay between scroll steps.
const (
	NoPause     time.Duration = 0
	ShortPause                = 20 * time.Millisecond
	MediumPause               = 50 * time.Millisecond
	LongPause                 = 100 * time.Millisecond
)

// resolveColors assigns one color per code. A single-entry palette paints
// everything; longer palettes cycle per the boundary mode.
func resolveColors(codes []rune, pal Palette, b Boundary) ([]color.RGBA, error) {
	if len(pal) == 0 {
		if len(codes) == 0 {
			return nil, nil
		}
		return nil, ErrEmptyCycle
	}

	out := make([]color.RGBA, len(codes))
	if len(pal) == 1 {
		for i := range out {
			out[i] = pal[0]
		}
		return out, nil
	}

	switch b {
	case WordBoundary:
		// Spaces keep the preceding word's color; the cycle steps once at
		// each space to non-space edge no matter how long the space run is.
		word := 0
		inSpace := false
		for i, r := range codes {
			if r == ' ' {
				inSpace = true
			} else if inSpace {
				word++
				inSpace = false
			}
			out[i] = pal[word%len(pal)]
		}
	default:
		for i := range out {
			out[i] = pal[i%len(pal)]
		}
	}
	return out, nil
}
