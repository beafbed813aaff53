// Package lolrgb scrolls text across the TinyPICO LOL RGB shield.
//
// The shield is a 14x5 matrix of WS2812 ("NeoPixel") RGB pixels chained
// row-major behind a single data line. This driver renders strings, byte
// slices, and numbers with a 3x5 bitmap font and scrolls them across the
// matrix one pixel column at a time.
//
// # Hardware Connection
//
//	Shield Pin → System Pin
//	GND        → GND
//	5V         → 5V
//	DATA       → SPI MOSI
//
// The WS2812 data line carries an 800kHz NRZ stream. The driver generates it
// through an SPI port run at 2.5MHz (three SPI bits per NRZ bit), so no GPIO
// bit-banging and no real-time scheduling is needed.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/lolrgb"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		// Open SPI bus
//		p, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		// Create device (nil opts = the 14x5 shield)
//		dev, err := lolrgb.NewSPI(p, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Scroll a message
//		if err := dev.Write("Hello world"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Write blocks until the text has fully scrolled off the matrix. It accepts
// strings, byte slices, and any integer or float value; numbers are rendered
// through their decimal form.
//
// # Colors
//
// A single color paints the whole message; a list of colors forms a cycle:
//
//	dev.SetColor(lolrgb.Green)               // everything green
//	dev.SetColor(lolrgb.RGB...)              // red, green, blue, red, ...
//	dev.Write("hi", lolrgb.WithColor(lolrgb.Rainbow...))
//
// The cycle advances per character (CharBoundary, the default) or per word
// (WordBoundary, where a word boundary is the space character):
//
//	dev.SetBoundary(lolrgb.WordBoundary)
//
// The predefined colors use channel value 1 out of 255. The shield's pixels
// are extremely bright and unpleasant to look at beyond that; pass your own
// color.RGBA values if you want more.
//
// # Scroll Pace
//
// The pause between scroll steps is configurable, with named tiers from
// NoPause to LongPause:
//
//	dev.SetDelay(lolrgb.ShortPause)
//	dev.Write(1234, lolrgb.WithDelay(lolrgb.NoPause))
//
// With NoPause the scroll rate is bounded only by the sink's flush latency.
//
// # Font
//
// Rendering uses the 3x5 Tom Thumb font covering ASCII 32-127. Codes below
// the table render as a hollow rectangle, codes above it as a filled
// rectangle; nothing is rejected.
//
// # Other Hardware
//
// NewSPI targets the shield's WS2812 chain, but the scrolling engine only
// needs a Sink (stage a pixel, flush a frame). NewDrawerSink adapts any
// periph.io display.Drawer with enough pixels, and a custom Sink does the
// rest.
package lolrgb
