package render

import (
	"unicode"
	"unicode/utf8"
)

// GlyphSize is the width and height of a glyph in font pixels.
const GlyphSize = 5

// glyphAdvance is the horizontal distance between glyph origins, in font
// pixels: the glyph plus one column of spacing.
const glyphAdvance = GlyphSize + 1

// glyphs is a 5x5 bitmap font. '#' marks a lit font pixel.
var glyphs = map[rune][GlyphSize]string{
	'A': {" ### ", "#   #", "#####", "#   #", "#   #"},
	'B': {"#### ", "#   #", "#### ", "#   #", "#### "},
	'C': {" ####", "#    ", "#    ", "#    ", " ####"},
	'D': {"#### ", "#   #", "#   #", "#   #", "#### "},
	'E': {"#####", "#    ", "#### ", "#    ", "#####"},
	'F': {"#####", "#    ", "#### ", "#    ", "#    "},
	'G': {" ####", "#    ", "#  ##", "#   #", " ### "},
	'H': {"#   #", "#   #", "#####", "#   #", "#   #"},
	'I': {"#####", "  #  ", "  #  ", "  #  ", "#####"},
	'J': {"  ###", "   # ", "   # ", "#  # ", " ##  "},
	'K': {"#   #", "#  # ", "###  ", "#  # ", "#   #"},
	'L': {"#    ", "#    ", "#    ", "#    ", "#####"},
	'M': {"#   #", "## ##", "# # #", "#   #", "#   #"},
	'N': {"#   #", "##  #", "# # #", "#  ##", "#   #"},
	'O': {" ### ", "#   #", "#   #", "#   #", " ### "},
	'P': {"#### ", "#   #", "#### ", "#    ", "#    "},
	'Q': {" ### ", "#   #", "# # #", "#  # ", " ## #"},
	'R': {"#### ", "#   #", "#### ", "#  # ", "#   #"},
	'S': {" ####", "#    ", " ### ", "    #", "#### "},
	'T': {"#####", "  #  ", "  #  ", "  #  ", "  #  "},
	'U': {"#   #", "#   #", "#   #", "#   #", " ### "},
	'V': {"#   #", "#   #", "#   #", " # # ", "  #  "},
	'W': {"#   #", "#   #", "# # #", "## ##", "#   #"},
	'X': {"#   #", " # # ", "  #  ", " # # ", "#   #"},
	'Y': {"#   #", " # # ", "  #  ", "  #  ", "  #  "},
	'Z': {"#####", "   # ", "  #  ", " #   ", "#####"},
	'0': {" ### ", "#  ##", "# # #", "##  #", " ### "},
	'1': {"  #  ", " ##  ", "  #  ", "  #  ", " ### "},
	'2': {" ### ", "#   #", "  ## ", " #   ", "#####"},
	'3': {"#### ", "    #", " ### ", "    #", "#### "},
	'4': {"#   #", "#   #", "#####", "    #", "    #"},
	'5': {"#####", "#    ", "#### ", "    #", "#### "},
	'6': {" ### ", "#    ", "#### ", "#   #", " ### "},
	'7': {"#####", "    #", "   # ", "  #  ", "  #  "},
	'8': {" ### ", "#   #", " ### ", "#   #", " ### "},
	'9': {" ### ", "#   #", " ####", "    #", " ### "},
	' ': {"     ", "     ", "     ", "     ", "     "},
	'!': {"  #  ", "  #  ", "  #  ", "     ", "  #  "},
	'?': {" ### ", "#   #", "  ## ", "     ", "  #  "},
	'.': {"     ", "     ", "     ", "     ", "  #  "},
	',': {"     ", "     ", "     ", "  #  ", " #   "},
	':': {"     ", "  #  ", "     ", "  #  ", "     "},
	'-': {"     ", "     ", "#####", "     ", "     "},
}

// unknownGlyph stands in for runes the font does not cover.
var unknownGlyph = [GlyphSize]string{"#####", "#   #", "#   #", "#   #", "#####"}

func glyphFor(r rune) [GlyphSize]string {
	if g, ok := glyphs[unicode.ToUpper(r)]; ok {
		return g
	}
	return unknownGlyph
}

// DrawGlyph draws r with its top-left corner at (x, y). Each font pixel
// becomes a scale x scale block. Pixels outside fb are clipped.
func (fb *Framebuffer) DrawGlyph(r rune, x, y, scale int, c Color) {
	if scale < 1 {
		return
	}
	for gy, row := range glyphFor(r) {
		for gx := 0; gx < len(row); gx++ {
			if row[gx] == '#' {
				fb.DrawRect(x+gx*scale, y+gy*scale, scale, scale, c)
			}
		}
	}
}

// DrawText draws text left to right starting at (x, y).
func (fb *Framebuffer) DrawText(text string, x, y, scale int, c Color) {
	advance := glyphAdvance * scale
	for _, r := range text {
		// skip glyphs that start past the right edge
		if x >= fb.Width {
			return
		}
		if x+advance > 0 {
			fb.DrawGlyph(r, x, y, scale, c)
		}
		x += advance
	}
}

// TextWidth returns the width in pixels DrawText uses for text at scale.
func TextWidth(text string, scale int) int {
	return utf8.RuneCountInString(text) * glyphAdvance * max(scale, 0)
}
