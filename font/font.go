// Package font holds the 3x5 Tom Thumb bitmap font used by the lolrgb driver.
//
// The table covers ASCII 32-127. Lookup is total: codes below the table map
// to a hollow rectangle, codes above it to a filled rectangle.
package font

// Font geometry in pixels.
const (
	Width    = 3                // columns per glyph
	Height   = 5                // rows per glyph
	Tracking = 1                // dark columns between glyphs
	Advance  = Width + Tracking // column pitch from one glyph to the next
)

// Glyph is a Width x Height character bitmap. Bit y of Cols[x] is set when
// pixel (x, y) is lit, with row 0 at the top.
type Glyph struct {
	Cols [Width]uint8
}

// At reports whether pixel (x, y) of the glyph is lit.
// Coordinates outside the glyph are unlit.
func (g Glyph) At(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g.Cols[x]>>uint(y)&1 == 1
}

const (
	firstCode = 0x20 // space, first glyph in the table
	lastCode  = 0x7F // DEL, last glyph in the table

	glyphsPerRow = 16 // table glyphs per packed row
	bytesPerRow  = 6  // 16 glyphs x 3 columns == 48 bits per row
)

// tomThumb packs 96 glyphs into 180 bytes. Each group of 16 glyphs forms a
// page of 5 rows, one row of 48 column bits (6 bytes) at a time.
var tomThumb = [...]byte{
	// codes 32-47
	0x0A, 0xD7, 0x12, 0x32, 0x80, 0x00,
	0x0A, 0xFC, 0x6A, 0x49, 0x20, 0x01,
	0x08, 0x56, 0x90, 0x4B, 0xF1, 0xC2,
	0x00, 0x7D, 0x28, 0x49, 0x24, 0x14,
	0x08, 0x54, 0x58, 0x32, 0x88, 0x10,
	// codes 48-63
	0xEB, 0xFB, 0xFF, 0xFC, 0x02, 0x27,
	0xA8, 0x9B, 0x21, 0xB5, 0x25, 0xD1,
	0xAB, 0xBF, 0xF9, 0xFC, 0x08, 0x0A,
	0xAA, 0x12, 0x69, 0xA5, 0x25, 0xD0,
	0xEB, 0xF3, 0xF9, 0xFC, 0x42, 0x22,
	// codes 64-79
	0x4B, 0x3D, 0xFB, 0xBC, 0xD9, 0x6A,
	0xB6, 0xCB, 0x24, 0xA8, 0xD9, 0xFD,
	0xFF, 0x4B, 0xFF, 0xE8, 0xE9, 0xFD,
	0x96, 0xCB, 0x25, 0xAA, 0xD9, 0x7D,
	0x77, 0x3D, 0xE3, 0xBD, 0x5F, 0x6A,
	// codes 80-95
	0xCB, 0x3F, 0x6D, 0xB7, 0xF1, 0xD0,
	0xB6, 0xC5, 0x6D, 0xB4, 0xC8, 0x68,
	0xD7, 0xA5, 0x6F, 0x49, 0x44, 0x40,
	0x9F, 0x15, 0x57, 0xAA, 0x42, 0x40,
	0x8E, 0xE4, 0xD5, 0xAB, 0xF1, 0xC7,
	// codes 96-111
	0x82, 0x02, 0x08, 0x88, 0x8C, 0x00,
	0x42, 0x02, 0xD3, 0x80, 0x44, 0x00,
	0x0F, 0x37, 0x7F, 0xC8, 0xD5, 0xF2,
	0x16, 0xCB, 0x91, 0xA8, 0xE5, 0xED,
	0x1F, 0x36, 0xD6, 0xAB, 0x5F, 0x6A,
	// codes 112-127
	0x00, 0x04, 0x00, 0x00, 0x35, 0x9F,
	0x4A, 0x3E, 0x00, 0x17, 0xA4, 0xB7,
	0xB7, 0xE5, 0x6D, 0xAD, 0xC0, 0x47,
	0xCE, 0x35, 0x7F, 0x47, 0x24, 0x87,
	0x86, 0x64, 0xD7, 0xBB, 0xB5, 0x87,
}

// glyphs is the unpacked table, built once at init.
var glyphs [lastCode - firstCode + 1]Glyph

// Sentinel glyphs for codes outside the table.
var (
	Hollow Glyph // hollow rectangle, returned for codes below 32
	Filled Glyph // filled rectangle, returned for codes above 127
)

func init() {
	for i := range glyphs {
		glyphs[i] = decode(rune(firstCode + i))
	}
	Hollow = glyphs['0'-firstCode]
	Filled = glyphs[lastCode-firstCode]
}

// Lookup returns the glyph for r. It is total over all runes: codes below
// the table yield Hollow, codes above it yield Filled.
func Lookup(r rune) Glyph {
	switch {
	case r < firstCode:
		return Hollow
	case r > lastCode:
		return Filled
	}
	return glyphs[r-firstCode]
}

// decode unpacks one glyph from the packed table.
func decode(r rune) Glyph {
	pos := int(r) - firstCode
	page := pos / glyphsPerRow
	var g Glyph
	for x := 0; x < Width; x++ {
		col := pos*Width + x
		// col/8 advances one row of bytes per page, but a page holds
		// Height rows, so skip the rows the column index does not cover.
		base := col/8 + page*(Height-1)*bytesPerRow
		shift := uint(7 - col%8)
		for y := 0; y < Height; y++ {
			if tomThumb[base+y*bytesPerRow]>>shift&1 == 1 {
				g.Cols[x] |= 1 << uint(y)
			}
		}
	}
	return g
}
