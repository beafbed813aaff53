// Package font provides the 3x5 Tom Thumb bitmap font for the lolrgb driver.
//
// Glyphs are 3 columns wide and 5 rows tall, stored column-wise: bit y of
// column x is set when pixel (x, y) is lit, row 0 at the top.
//
// The packed table holds ASCII 32-127 (96 glyphs in 180 bytes). Glyphs are
// grouped 16 to a page; each page stores 5 rows of 48 column bits, so one row
// of a page occupies 6 bytes:
//
//	page 0, row 0:  columns 0-47 of glyphs 32-47
//	page 0, row 1:  columns 0-47 of glyphs 32-47
//	...
//	page 1, row 0:  columns 0-47 of glyphs 48-63
//
// Lookup never fails. Codes below the table (control characters) return the
// Hollow sentinel, codes above it (anything past DEL, including non-ASCII
// runes) return the Filled sentinel:
//
//	g := font.Lookup('H')
//	for y := 0; y < font.Height; y++ {
//		for x := 0; x < font.Width; x++ {
//			if g.At(x, y) {
//				// pixel (x, y) is lit
//			}
//		}
//	}
package font
