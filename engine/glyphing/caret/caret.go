/*
Package caret maps positions within shaped text to caret positions.

Interactive text needs to translate mouse positions to text positions and
vice versa. The unit of caret movement is the grapheme cluster, not the
code-point, so the mapping is done on grapheme boundaries: each boundary
spans the glyphs of one grapheme cluster and knows its leading and trailing
x-edge within the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package caret

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontcase/core/dimen"
	"github.com/npillmayer/fontcase/engine/glyphing"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// tracer traces with key 'fontcase.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("fontcase.glyphs")
}

// Boundary describes the extent of a single grapheme cluster within a line
// of shaped text. Start and End are rune positions; Start addresses the
// first rune of the cluster, End the first rune of the cluster following
// it. Leading and Trailing are the x-edges of the cluster's glyphs,
// relative to the line's origin. Trailing is in fact the leading edge of
// the next cluster.
type Boundary struct {
	Start, End        int
	Leading, Trailing dimen.DU
}

// Hit is the result of mapping a point to a text position. Pos is the rune
// position of the nearest caret position. Inside reports whether the point
// fell within the extent of the text.
type Hit struct {
	Pos    int
	Inside bool
}

// Boundaries computes the grapheme cluster boundaries for a line of shaped
// text. seq must be the result of shaping text; the glyphs' cluster IDs
// relate the x-edges back to rune positions of the input.
func Boundaries(text string, seq glyphing.GlyphSequence) []Boundary {
	n := utf8.RuneCountInString(text)
	adv := make([]dimen.DU, n)
	for _, g := range seq.Glyphs {
		if g.ClusterID >= 0 && g.ClusterID < n {
			adv[g.ClusterID] += g.XAdvance
		}
	}
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	splitter.Init(strings.NewReader(text))
	bounds := make([]Boundary, 0, n)
	x := dimen.DU(0)
	pos := 0
	for splitter.Next() {
		l := utf8.RuneCount(splitter.Bytes())
		b := Boundary{Start: pos, Leading: x}
		for i := pos; i < pos+l && i < n; i++ {
			x += adv[i]
		}
		pos += l
		b.End = pos
		b.Trailing = x
		bounds = append(bounds, b)
	}
	tracer().Debugf("text of %d runes has %d grapheme boundaries", n, len(bounds))
	return bounds
}

// PointInGrapheme checks if an x-position falls within a grapheme boundary.
// If it does, the returned hit carries the rune position of the boundary
// edge the point is closest to; points on the midpoint round up.
func PointInGrapheme(x dimen.DU, b Boundary) (Hit, bool) {
	if x < b.Leading || x > b.Trailing {
		return Hit{}, false
	}
	midpoint := b.Leading + (b.Trailing-b.Leading)/2
	if x >= midpoint {
		return Hit{Pos: b.End, Inside: true}, true
	}
	return Hit{Pos: b.Start, Inside: true}, true
}

// HitTestPoint maps an x-position to the nearest caret position within a
// line's grapheme boundaries. Points left of the line hit the line's first
// position, points right of it the position after the last cluster; in
// both cases the hit is reported as not inside.
func HitTestPoint(x dimen.DU, bounds []Boundary) Hit {
	if len(bounds) == 0 {
		return Hit{}
	}
	if x < bounds[0].Leading {
		return Hit{Pos: bounds[0].Start}
	}
	for _, b := range bounds {
		if hit, ok := PointInGrapheme(x, b); ok {
			return hit
		}
	}
	return Hit{Pos: bounds[len(bounds)-1].End}
}
