package lolrgb

import (
	"fmt"
	"image/color"
	"time"

	"github.com/flavioheleno/lolrgb/font"
)

// strip is the composed scroll content: one bit column per pixel column at
// font.Advance pitch, each column carrying its character's resolved color.
type strip struct {
	w      int
	bits   []uint8 // bit y set means row y of the column is lit
	colors []color.RGBA
}

// newStrip concatenates the glyphs for codes into one wide strip, pairing
// every column with its character's color. Tracking columns stay dark.
func newStrip(codes []rune, colors []color.RGBA) *strip {
	st := &strip{
		w:      len(codes) * font.Advance,
		bits:   make([]uint8, len(codes)*font.Advance),
		colors: make([]color.RGBA, len(codes)*font.Advance),
	}
	for i, r := range codes {
		g := font.Lookup(r)
		base := i * font.Advance
		for x := 0; x < font.Width; x++ {
			st.bits[base+x] = g.Cols[x]
			st.colors[base+x] = colors[i]
		}
	}
	return st
}

// scroll walks the strip across the display, one column per frame. The strip
// enters from off-screen right and leaves off-screen left, so the frame count
// is the display width plus the strip width.
//
// Each frame stages only the lit pixels of the visible window, flushes, then
// pauses. A sink fault aborts the scroll immediately; lit pixels are left as
// they are.
func (d *Dev) scroll(st *strip, delay time.Duration) error {
	w := d.rect.Dx()
	h := d.rect.Dy()
	if h > font.Height {
		h = font.Height
	}

	frames := w + st.w
	for frame := 0; frame < frames; frame++ {
		// cursor is the display column holding strip column 0. It starts one
		// past the right edge and moves left each frame.
		cursor := w - frame

		from := max(cursor, 0)
		to := min(w, cursor+st.w)
		for x := from; x < to; x++ {
			bits := st.bits[x-cursor]
			if bits == 0 {
				continue
			}
			c := st.colors[x-cursor]
			for y := 0; y < h; y++ {
				if bits>>uint(y)&1 == 0 {
					continue
				}
				if err := d.s.SetPixel(x, y, c); err != nil {
					return fmt.Errorf("%w: %v", ErrSink, err)
				}
			}
		}

		if err := d.s.Flush(); err != nil {
			return fmt.Errorf("%w: %v", ErrSink, err)
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}
