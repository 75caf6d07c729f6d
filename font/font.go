// Package font provides fixed-size 5x7 bitmap glyphs for the text blitter.
//
// Glyph tables are read-only after package initialization and may be shared
// freely. Renderers consume them through the [Source] interface.
package font

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Glyph metrics, in unscaled pixels.
const (
	Width   = 5
	Height  = 7
	Spacing = 1
	Advance = Width + Spacing
)

// Glyph is one character cell: Height rows of Width bits each. Bit Width-1 is
// the leftmost column.
type Glyph [Height]uint8

// Set reports whether the pixel at (col, row) is painted.
func (g Glyph) Set(col, row int) bool {
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return false
	}
	return (g[row]>>(Width-1-col))&1 == 1
}

// Source maps a character to its glyph.
type Source interface {
	// Lookup returns the glyph for r, or false if the face has none.
	Lookup(r rune) (Glyph, bool)
}

// Map is a Source backed by a glyph table.
type Map map[rune]Glyph

func (m Map) Lookup(r rune) (Glyph, bool) {
	g, ok := m[r]
	return g, ok
}

// Font5x7 covers A-Z, 0-9, space and the printable ASCII punctuation.
var Font5x7 Source = Map(font5x7)

type folded struct {
	Source
}

// Folded returns a Source that retries unknown characters in upper case, so
// lower case text renders with an upper case only face such as [Font5x7].
func Folded(src Source) Source {
	return folded{src}
}

func (f folded) Lookup(r rune) (Glyph, bool) {
	if g, ok := f.Source.Lookup(r); ok {
		return g, true
	}
	// Casers keep state and are not shared between lookups.
	upper := cases.Upper(language.Und).String(string(r))
	u, size := utf8.DecodeRuneInString(upper)
	if size != len(upper) || u == r {
		return Glyph{}, false
	}
	return f.Source.Lookup(u)
}
