package lolrgb

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"time"
)

// Errors surfaced by Write. All of them are terminal for the call: nothing is
// retried, and on ErrSink whatever pixels are already lit stay lit.
var (
	// ErrInvalidInput is returned when a value has no text form.
	ErrInvalidInput = errors.New("lolrgb: cannot render value as text")
	// ErrEmptyCycle is returned when the effective color cycle is empty.
	ErrEmptyCycle = errors.New("lolrgb: empty color cycle")
	// ErrSink wraps a hardware fault reported by the Sink.
	ErrSink = errors.New("lolrgb: display sink failure")
)

// writeCfg is the effective settings of one Write call: the device defaults
// with any per-call overrides applied on top.
type writeCfg struct {
	colors   Palette
	delay    time.Duration
	boundary Boundary
}

// WriteOption overrides one device default for a single Write call.
// Overrides never persist.
type WriteOption func(*writeCfg)

// WithColor overrides the color for one Write call: one color paints
// everything, several form a cycle.
func WithColor(colors ...color.RGBA) WriteOption {
	return func(c *writeCfg) {
		c.colors = Palette(colors)
	}
}

// WithDelay overrides the pause between scroll steps for one Write call.
func WithDelay(delay time.Duration) WriteOption {
	return func(c *writeCfg) {
		c.delay = delay
	}
}

// WithBoundary overrides the color cycling boundary for one Write call.
func WithBoundary(b Boundary) WriteOption {
	return func(c *writeCfg) {
		c.boundary = b
	}
}

// normalize turns a value into the character codes to render. Strings map
// rune by rune, byte slices byte by byte with no decoding, and numbers
// through their canonical decimal form. Codes outside the font table are kept
// as-is; the font resolves them to its sentinel glyphs.
func normalize(v any) ([]rune, error) {
	switch v := v.(type) {
	case string:
		return []rune(v), nil
	case []byte:
		codes := make([]rune, len(v))
		for i, b := range v {
			codes[i] = rune(b)
		}
		return codes, nil
	case int:
		return []rune(strconv.Itoa(v)), nil
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return []rune(fmt.Sprint(v)), nil
	case float32:
		return []rune(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return []rune(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInput, v)
	}
}

// Write scrolls v across the display, blocking until the text has fully
// scrolled off or the sink reports a fault.
//
// v may be a string, a byte slice, or any integer or float. Options override
// the device defaults for this call only.
func (d *Dev) Write(v any, opts ...WriteOption) error {
	if d.halted {
		return errors.New("lolrgb: halted")
	}

	codes, err := normalize(v)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return nil
	}

	cfg := d.snapshot()
	for _, o := range opts {
		o(&cfg)
	}

	colors, err := resolveColors(codes, cfg.colors, cfg.boundary)
	if err != nil {
		return err
	}

	return d.scroll(newStrip(codes, colors), cfg.delay)
}
