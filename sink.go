package lolrgb

import (
	"errors"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
)

// Sink is the hardware behind a Dev. SetPixel stages one pixel for the next
// frame; Flush pushes the staged frame to the device and resets the stage to
// black, so callers only ever stage lit pixels.
type Sink interface {
	SetPixel(x, y int, c color.RGBA) error
	Flush() error
}

// drawerSink adapts a display.Drawer to the Sink contract. Frames are staged
// in an NRGBA image shaped to the drawer's bounds; matrix coordinates land on
// the drawer row-major, which matches how the LOL RGB shield chains its
// pixels (x + w*y along the chain).
type drawerSink struct {
	d     display.Drawer
	stage *image.NRGBA
	w, h  int
}

// NewDrawerSink wraps a periph.io display.Drawer as a Sink for a w x h
// matrix. The drawer must expose at least w*h pixels; a 1 x w*h LED chain
// such as nrzled works as well as a true two-dimensional drawer.
func NewDrawerSink(d display.Drawer, w, h int) (Sink, error) {
	b := d.Bounds()
	if w <= 0 || h <= 0 {
		return nil, errors.New("lolrgb: matrix dimensions must be positive")
	}
	if b.Dx()*b.Dy() < w*h {
		return nil, errors.New("lolrgb: drawer too small for matrix")
	}
	return &drawerSink{d: d, stage: image.NewNRGBA(b), w: w, h: h}, nil
}

func (s *drawerSink) SetPixel(x, y int, c color.RGBA) error {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return errors.New("lolrgb: pixel out of bounds")
	}
	i := x + s.w*y
	b := s.stage.Rect
	s.stage.SetNRGBA(b.Min.X+i%b.Dx(), b.Min.Y+i/b.Dx(), color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	return nil
}

func (s *drawerSink) Flush() error {
	if err := s.d.Draw(s.d.Bounds(), s.stage, image.Point{}); err != nil {
		return err
	}
	clear(s.stage.Pix)
	return nil
}
