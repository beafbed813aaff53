// Package lolrgb scrolls text across the TinyPICO LOL RGB shield, a 14x5
// matrix of WS2812 pixels driven over a single data line.
//
// See the examples for how to use this package.
package lolrgb

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/nrzled"
)

// Opts is the configuration for the pixel matrix.
type Opts struct {
	W int // Width in pixels (default: 14)
	H int // Height in pixels (default: 5)
}

const (
	defaultWidth  = 14
	defaultHeight = 5

	// Refresh latency grows linearly with chain length; past this the scroll
	// pacing falls apart.
	maxPixels = 1024
)

// geometry applies defaults and validates opts.
func geometry(opts *Opts) (w, h int, err error) {
	if opts == nil {
		return defaultWidth, defaultHeight, nil
	}
	if opts.W <= 0 || opts.H <= 0 {
		return 0, 0, errors.New("lolrgb: width and height must be positive")
	}
	if opts.W*opts.H > maxPixels {
		return 0, 0, errors.New("lolrgb: too many pixels for one chain")
	}
	return opts.W, opts.H, nil
}

// Dev is the device handle for the pixel matrix.
//
// A Dev owns the default write settings (color, delay, boundary). The
// mutators are safe to call from multiple goroutines, but Write blocks for
// the whole scroll and concurrent Write calls are not supported: the
// physical display has exactly one scroll position at a time.
type Dev struct {
	s    Sink
	rect image.Rectangle

	// Default settings, read by Write when a call supplies no override.
	mu       sync.Mutex
	colors   Palette
	delay    time.Duration
	boundary Boundary

	// State
	halted bool
}

// New creates a device around an existing Sink.
//
// opts can be nil to use defaults (the 14x5 shield).
func New(s Sink, opts *Opts) (*Dev, error) {
	w, h, err := geometry(opts)
	if err != nil {
		return nil, err
	}
	return &Dev{
		s:        s,
		rect:     image.Rect(0, 0, w, h),
		colors:   Palette{Red},
		delay:    MediumPause,
		boundary: CharBoundary,
	}, nil
}

// NewSPI creates a device driving a WS2812 chain wired as a w x h matrix,
// chained row-major, with its data line on the SPI MOSI pin.
//
// The port is run at 2.5MHz so each NRZ bit maps onto three SPI bits.
//
// opts can be nil to use defaults (the 14x5 shield).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	w, h, err := geometry(opts)
	if err != nil {
		return nil, err
	}

	chain, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: w * h,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		return nil, err
	}

	s, err := NewDrawerSink(chain, w, h)
	if err != nil {
		return nil, err
	}
	return New(s, &Opts{W: w, H: h})
}

// SetColor sets the default color for subsequent Write calls: one color
// paints everything, several form a cycle. An empty call is accepted but a
// later Write with nothing else to go on fails with ErrEmptyCycle.
func (d *Dev) SetColor(colors ...color.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.colors = append(Palette(nil), colors...)
}

// SetDelay sets the default pause between scroll steps. Zero (or less) means
// no pause: the scroll runs as fast as the sink can flush.
func (d *Dev) SetDelay(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
}

// SetBoundary sets the default color cycling boundary.
func (d *Dev) SetBoundary(b Boundary) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.boundary = b
}

// Color returns the current default color or cycle.
func (d *Dev) Color() Palette {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append(Palette(nil), d.colors...)
}

// Delay returns the current default pause between scroll steps.
func (d *Dev) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// Boundary returns the current default color cycling boundary.
func (d *Dev) Boundary() Boundary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.boundary
}

// snapshot captures the current defaults for one Write call.
func (d *Dev) snapshot() writeCfg {
	d.mu.Lock()
	defer d.mu.Unlock()
	return writeCfg{colors: d.colors, delay: d.delay, boundary: d.boundary}
}

// Bounds returns the matrix bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("lolrgb.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// Clear blanks the display.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("lolrgb: halted")
	}
	if err := d.s.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}
	return nil
}

// Halt blanks the display and rejects further writes.
// After calling Halt the device must be re-created to be used again.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	if err := d.s.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrSink, err)
	}
	return nil
}
