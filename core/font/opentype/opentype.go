/*
Package opentype handles OpenType fonts.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package opentype

import (
	"github.com/npillmayer/fontcase/core/dimen"
	"golang.org/x/image/font/sfnt"
)

// --- Font and glyph metrics ------------------------------------------------

// FontMetricsInfo contains selected metric information for a font.
type FontMetricsInfo struct {
	UnitsPerEm      sfnt.Units // ad-hoc units per em
	Ascent, Descent sfnt.Units // ascender and descender
	MaxAdvance      sfnt.Units // maximum advance width value in 'hmtx' table
	LineGap         sfnt.Units // typographic line gap
}

// Height is the vertical extent of a line of this font, in font units.
// The descender is counted as negative, per OpenType convention.
func (fm FontMetricsInfo) Height() sfnt.Units {
	return fm.Ascent - fm.Descent + fm.LineGap
}

// GlyphMetricsInfo contains all the metric information for a glyph.
type GlyphMetricsInfo struct {
	Advance  sfnt.Units  // advance width
	LSB, RSB sfnt.Units  // side bearings
	BBox     BoundingBox // bounding box
}

// BoundingBox describes the bounding box of a glyph.
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// Empty is a predicate: has this box a zero area?
func (bbox BoundingBox) Empty() bool {
	return bbox.MaxX-bbox.MinX == 0 || bbox.MaxY-bbox.MinY == 0
}

// Dx is the horizontal extent of this box.
func (bbox BoundingBox) Dx() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Dy is the vertical extent of this box.
func (bbox BoundingBox) Dy() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

// --- Scaling ---------------------------------------------------------------

// Scale converts a font-unit value to a dimension, given a font size in
// (big) points and the font's units-per-em.
func Scale(u sfnt.Units, size float32, unitsPerEm sfnt.Units) dimen.DU {
	if unitsPerEm == 0 {
		return 0
	}
	return dimen.DU(float64(u) * float64(size) / float64(unitsPerEm) * float64(dimen.BP))
}
