package otquery

import (
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/fontcase/core/font/collection"
	"github.com/npillmayer/fontcase/core/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// --- Font Information -------------------------------------------------

// FontMetrics retrieves selected metrics of a font.
func FontMetrics(s *collection.FileStream) (opentype.FontMetricsInfo, error) {
	metrics := opentype.FontMetricsInfo{}
	hhea, _, err := locateTable(s, font.T("hhea"))
	if err != nil {
		return metrics, err
	}
	b, err := s.ReadFragment(hhea, 12)
	if err != nil {
		return metrics, err
	}
	metrics.Ascent = sfnt.Units(i16(b[4:]))
	metrics.Descent = sfnt.Units(i16(b[6:]))
	metrics.LineGap = sfnt.Units(i16(b[8:]))
	metrics.MaxAdvance = sfnt.Units(u16(b[10:]))
	if metrics.Ascent == 0 && metrics.Descent == 0 {
		if os2, _, err := locateTable(s, font.T("OS/2")); err == nil {
			tracer().Debugf("OS/2")
			if b, err := s.ReadFragment(os2, 72); err == nil {
				if a := sfnt.Units(i16(b[68:])); a > metrics.Ascent {
					tracer().Debugf("override of ascent: %d -> %d", metrics.Ascent, a)
					metrics.Ascent = a
				}
				if d := sfnt.Units(i16(b[70:])); d < metrics.Descent {
					tracer().Debugf("override of descent: %d -> %d", metrics.Descent, d)
					metrics.Descent = d
				}
			}
		}
	}
	head, _, err := locateTable(s, font.T("head")) // head is a required table
	if err != nil {
		return metrics, err
	}
	b, err = s.ReadFragment(head, 20)
	if err != nil {
		return metrics, err
	}
	metrics.UnitsPerEm = sfnt.Units(u16(b[18:]))
	return metrics, nil
}

// --- Glyph Routines --------------------------------------------------------

// GlyphMetrics retrieves metrics for a given glyph.
func GlyphMetrics(s *collection.FileStream, gid font.GlyphIndex) (opentype.GlyphMetricsInfo, error) {
	metrics := opentype.GlyphMetricsInfo{}
	//
	// table hmtx: advance width and left side bearing
	hmtx, _, err := locateTable(s, font.T("hmtx")) // required table in OpenType
	if err != nil {
		return metrics, err
	}
	hhea, _, err := locateTable(s, font.T("hhea")) // required table in OpenType
	if err != nil {
		return metrics, err
	}
	b, err := s.ReadFragment(hhea+34, 2) // hhea.numberOfHMetrics
	if err != nil {
		return metrics, err
	}
	mtxcnt := int64(u16(b))
	if int64(gid) < mtxcnt {
		entry, err := s.ReadFragment(hmtx+int64(gid)*4, 4)
		if err != nil {
			return metrics, err
		}
		metrics.Advance = sfnt.Units(u16(entry))
		metrics.LSB = sfnt.Units(i16(entry[2:]))
	} else { // advance is a repetition of the last advance in hmtx
		lastEntry, err := s.ReadFragment(hmtx+(mtxcnt-1)*4, 4)
		if err != nil {
			return metrics, err
		}
		metrics.Advance = sfnt.Units(u16(lastEntry))
		entry, err := s.ReadFragment(hmtx+mtxcnt*4+(int64(gid)-mtxcnt)*2, 2)
		if err != nil {
			return metrics, err
		}
		metrics.LSB = sfnt.Units(i16(entry))
	}
	//
	// table glyf: bounding box
	if glyf, _, err := locateTable(s, font.T("glyf")); err == nil {
		if bbox, ok := glyphBBox(s, glyf, gid); ok {
			metrics.BBox = bbox
		}
	}
	// RSB calculation: rsb = aw - (lsb + xMax - xMin)
	// From the OpenType spec:
	// If a glyph has no contours, xMax/xMin are not defined. The left side bearing indicated
	// in the 'hmtx' table for such glyphs should be zero.
	if !metrics.BBox.Empty() { // leave RSB for empty bboxes
		metrics.RSB = metrics.Advance - (metrics.LSB + metrics.BBox.Dx())
	}
	return metrics, nil
}

// glyphBBox reads the bounding box from a glyph's header in table glyf.
// Glyphs without contours have no entry in glyf and no bounding box.
func glyphBBox(s *collection.FileStream, glyf int64, gid font.GlyphIndex) (opentype.BoundingBox, bool) {
	loca, _, err := locateTable(s, font.T("loca"))
	if err != nil {
		return opentype.BoundingBox{}, false
	}
	head, _, err := locateTable(s, font.T("head"))
	if err != nil {
		return opentype.BoundingBox{}, false
	}
	b, err := s.ReadFragment(head+50, 2) // head.indexToLocFormat
	if err != nil {
		return opentype.BoundingBox{}, false
	}
	var loc, next int64
	if i16(b) == 1 { // long format: loca holds 32-bit offsets
		if b, err = s.ReadFragment(loca+int64(gid)*4, 8); err != nil {
			return opentype.BoundingBox{}, false
		}
		loc, next = int64(u32(b)), int64(u32(b[4:]))
	} else { // short format: loca holds 16-bit offsets, divided by 2
		if b, err = s.ReadFragment(loca+int64(gid)*2, 4); err != nil {
			return opentype.BoundingBox{}, false
		}
		loc, next = int64(u16(b))*2, int64(u16(b[2:]))*2
	}
	if next <= loc { // empty glyph, e.g. space
		return opentype.BoundingBox{}, false
	}
	if b, err = s.ReadFragment(glyf+loc, 10); err != nil {
		return opentype.BoundingBox{}, false
	}
	return opentype.BoundingBox{
		MinX: sfnt.Units(i16(b[2:])),
		MinY: sfnt.Units(i16(b[4:])),
		MaxX: sfnt.Units(i16(b[6:])),
		MaxY: sfnt.Units(i16(b[8:])),
	}, true
}
