package lolrgb

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

// pixel is one recorded SetPixel call.
type pixel struct {
	x, y int
	c    color.RGBA
}

// fakeSink records every Sink call and can fail on the nth flush.
type fakeSink struct {
	sets    []pixel
	flushes int

	failFlushAt int // 1-based flush index that fails, 0 disables
	failed      bool
	afterFail   int // calls received after the injected failure
}

func (s *fakeSink) SetPixel(x, y int, c color.RGBA) error {
	if s.failed {
		s.afterFail++
	}
	s.sets = append(s.sets, pixel{x: x, y: y, c: c})
	return nil
}

func (s *fakeSink) Flush() error {
	if s.failed {
		s.afterFail++
	}
	s.flushes++
	if s.failFlushAt != 0 && s.flushes == s.failFlushAt {
		s.failed = true
		return errors.New("spi: chain unplugged")
	}
	return nil
}

func newTestDev(t *testing.T) (*Dev, *fakeSink) {
	t.Helper()
	fs := &fakeSink{}
	d, err := New(fs, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d, fs
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    *Opts
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, 14, 5, false},
		{"valid 14x5", &Opts{W: 14, H: 5}, 14, 5, false},
		{"valid 8x8", &Opts{W: 8, H: 8}, 8, 8, false},
		{"width zero", &Opts{W: 0, H: 5}, 0, 0, true},
		{"height zero", &Opts{W: 14, H: 0}, 0, 0, true},
		{"negative width", &Opts{W: -1, H: 5}, 0, 0, true},
		{"too many pixels", &Opts{W: 64, H: 64}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(&fakeSink{}, tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but didn't get one")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			want := image.Rect(0, 0, tt.wantW, tt.wantH)
			if got := d.Bounds(); got != want {
				t.Errorf("Bounds() = %v, want %v", got, want)
			}
		})
	}
}

func TestDevString(t *testing.T) {
	d, _ := newTestDev(t)
	want := "lolrgb.Dev{14x5}"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDevDefaults(t *testing.T) {
	d, _ := newTestDev(t)

	if got := d.Color(); len(got) != 1 || got[0] != Red {
		t.Errorf("Color() = %v, want [Red]", got)
	}
	if got := d.Delay(); got != MediumPause {
		t.Errorf("Delay() = %v, want %v", got, MediumPause)
	}
	if got := d.Boundary(); got != CharBoundary {
		t.Errorf("Boundary() = %v, want CharBoundary", got)
	}
}

func TestDevSetters(t *testing.T) {
	d, _ := newTestDev(t)

	d.SetColor(RGB...)
	d.SetDelay(NoPause)
	d.SetBoundary(WordBoundary)

	if got := d.Color(); len(got) != 3 || got[0] != Red || got[1] != Green || got[2] != Blue {
		t.Errorf("Color() = %v, want RGB cycle", got)
	}
	if got := d.Delay(); got != NoPause {
		t.Errorf("Delay() = %v, want NoPause", got)
	}
	if got := d.Boundary(); got != WordBoundary {
		t.Errorf("Boundary() = %v, want WordBoundary", got)
	}
}

func TestSetColorCopiesInput(t *testing.T) {
	d, _ := newTestDev(t)

	colors := []color.RGBA{cA, cB}
	d.SetColor(colors...)
	colors[0] = cB

	if got := d.Color(); got[0] != cA {
		t.Errorf("Color()[0] = %v, stored palette aliases caller slice", got[0])
	}
}

func TestClear(t *testing.T) {
	d, fs := newTestDev(t)

	if err := d.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if fs.flushes != 1 {
		t.Errorf("flushes = %d, want 1", fs.flushes)
	}
	if len(fs.sets) != 0 {
		t.Errorf("Clear staged %d pixels, want 0", len(fs.sets))
	}
}

func TestHalt(t *testing.T) {
	d, fs := newTestDev(t)

	if err := d.Halt(); err != nil {
		t.Fatalf("Halt() error = %v", err)
	}
	if fs.flushes != 1 {
		t.Errorf("flushes = %d, want 1 (blanking frame)", fs.flushes)
	}

	// Halt is idempotent and everything else is rejected afterwards.
	if err := d.Halt(); err != nil {
		t.Errorf("second Halt() error = %v", err)
	}
	if fs.flushes != 1 {
		t.Errorf("second Halt flushed again, flushes = %d", fs.flushes)
	}
	if err := d.Write("x"); err == nil {
		t.Error("Write should fail when halted")
	}
	if err := d.Clear(); err == nil {
		t.Error("Clear should fail when halted")
	}
}

func TestWriteDoesNotPersistOverrides(t *testing.T) {
	d, fs := newTestDev(t)
	d.SetDelay(NoPause)

	err := d.Write("a",
		WithColor(cB),
		WithDelay(time.Nanosecond),
		WithBoundary(WordBoundary))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	for i, p := range fs.sets {
		if p.c != cB {
			t.Fatalf("set %d color = %v, want override %v", i, p.c, cB)
		}
	}
	if got := d.Color(); len(got) != 1 || got[0] != Red {
		t.Errorf("Color() = %v after override, want [Red]", got)
	}
	if got := d.Delay(); got != NoPause {
		t.Errorf("Delay() = %v after override, want NoPause", got)
	}
	if got := d.Boundary(); got != CharBoundary {
		t.Errorf("Boundary() = %v after override, want CharBoundary", got)
	}
}
