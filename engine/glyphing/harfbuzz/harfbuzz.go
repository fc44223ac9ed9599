/*
Package harfbuzz shapes text with the HarfBuzz shaping engine.

Fonts are handed to the shaper through the font collection protocol: a shaper
is created for a font file enumerated from a collection store and reads the
font's binary data through a file stream.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package harfbuzz

import (
	"bytes"
	"encoding/binary"
	"io"
	"unicode"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/fontcase/core/font/collection"
	"github.com/npillmayer/fontcase/core/font/opentype"
	"github.com/npillmayer/fontcase/engine/glyphing"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
)

// tracer traces with key 'fontcase.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("fontcase.glyphs")
}

// --- Type conversion -------------------------------------------------------

// Lang4HB returns a language tag as a HarfBuzz language.
func Lang4HB(l language.Tag) hblang.Language {
	return hblang.NewLanguage(l.String())
}

// Script4HB returns a script as a HarfBuzz script.
func Script4HB(s language.Script) hblang.Script {
	b := []byte(s.String())
	b[0] = byte(unicode.ToLower(rune(b[0])))
	h := binary.BigEndian.Uint32(b)
	return hblang.Script(h)
}

// Direction4HB translates a direction to a HarfBuzz direction.
func Direction4HB(d glyphing.Direction) hb.Direction {
	switch d {
	case glyphing.LeftToRight:
		return hb.LeftToRight
	case glyphing.RightToLeft:
		return hb.RightToLeft
	case glyphing.TopToBottom:
		return hb.TopToBottom
	case glyphing.BottomToTop:
		return hb.BottomToTop
	}
	return hb.LeftToRight
}

// Feature4HB makes a typecast from an OpenType feature tag to a HarfBuzz truetype tag.
func Feature4HB(t font.Tag) hbtt.Tag {
	return hbtt.Tag(t)
}

// FeatureRange4HB converts a feature range struct to a HarbBuzz Feature switch.
func FeatureRange4HB(frng glyphing.FeatureRange) hb.Feature {
	f := hb.Feature{
		Tag:   Feature4HB(frng.Feature),
		Start: frng.Start,
		End:   frng.End,
	}
	if frng.On {
		if frng.Arg > 0 {
			f.Value = uint32(frng.Arg)
		} else {
			f.Value = 1
		}
	}
	return f
}

// --- Shaper ----------------------------------------------------------------

// Shaper shapes text with a single font face, employing the HarfBuzz shaping
// engine. A Shaper is not safe for concurrent use.
type Shaper struct {
	font *hb.Font
	otf  *sfnt.Font
}

// NewShaper creates a shaper for a font face held by a collection store.
// The font's binary data is read in one piece through the file's stream.
func NewShaper(file *collection.FontFile) (*Shaper, error) {
	if file == nil {
		return nil, core.Error(core.EINVALID, "no font file given to shape with")
	}
	stream, err := file.Loader().OpenStream(file.ReferenceKey())
	if err != nil {
		return nil, err
	}
	data, err := stream.ReadFragment(0, stream.FileSize())
	if err != nil {
		return nil, err
	}
	face, err := hbtt.Parse(bytes.NewReader(data), true)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font is not usable for shaping")
	}
	sh := &Shaper{font: hb.NewFont(face)}
	if sh.otf, err = sfnt.Parse(data); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font is not usable for shaping")
	}
	return sh, nil
}

// Shape shapes a sequence of code-points (runes), turning its Unicode characters
// into positioned glyphs. It will select a shape plan based on params and the
// properties of the input text.
//
// If params.Features is not empty, it will be used to control the
// features applied during shaping. If two features have the same tag but
// overlapping ranges the value of the feature with the higher index takes
// precedence.
//
// params.Font must be set, otherwise no output is created. Its point-size
// scales the resulting glyph positions.
//
// Clients may provide buf to avoid allocating memory by Shape. Shape will wrap it
// into the GlyphSequence returned.
func (sh *Shaper) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, context [][]rune, params glyphing.Params) (glyphing.GlyphSequence, error) {
	if text == nil || params.Font == nil {
		return glyphing.GlyphSequence{}, nil
	}
	sh.font.Ptem = params.Font.PtSize()
	// Prepare shaping parameters
	var props hb.SegmentProperties
	convertParams(&props, params)
	features := make([]hb.Feature, 0, len(params.Features))
	for _, feat := range params.Features {
		features = append(features, FeatureRange4HB(feat))
	}
	// Prepare HarfBuzz buffer
	hbuf := hb.NewBuffer()
	hbuf.Props = props
	bytesBuf, offset, length := bufferText(text, context)
	runes := bytes.Runes(bytesBuf.Bytes())
	hbuf.AddRunes(runes, offset, length)
	hbuf.Shape(sh.font, features)
	// Prepare shaped output
	if buf == nil || len(buf) < len(hbuf.Info) {
		buf = make([]glyphing.ShapedGlyph, len(hbuf.Info))
	}
	seq := glyphing.GlyphSequence{
		Glyphs: buf[:len(hbuf.Info)],
	}
	// move HarfBuzz output to glyph sequence output
	upem := sfnt.Units(sh.otf.UnitsPerEm())
	size := params.Font.PtSize()
	ppem := fixed.I(int(upem))
	var sfntBuf sfnt.Buffer
	for i, ginfo := range hbuf.Info {
		gpos := &hbuf.Pos[i]
		tracer().Debugf("[%3d] %q", i, ginfo.String())
		g := &seq.Glyphs[i]
		g.ClusterID = ginfo.Cluster
		g.GID = font.GlyphIndex(ginfo.Glyph)
		g.XAdvance = opentype.Scale(sfnt.Units(gpos.XAdvance), size, upem)
		g.YAdvance = opentype.Scale(sfnt.Units(gpos.YAdvance), size, upem)
		g.XOffset = opentype.Scale(sfnt.Units(gpos.XOffset), size, upem)
		g.YOffset = opentype.Scale(sfnt.Units(gpos.YOffset), size, upem)
		g.CodePoint = runes[g.ClusterID]
		bounds, adv, err := sh.otf.GlyphBounds(&sfntBuf, sfnt.GlyphIndex(g.GID), ppem, xfont.HintingNone)
		if err == nil {
			g.RawMetrics.Advance = sfnt.Units(adv >> 6)
			g.RawMetrics.BBox.MinX = sfnt.Units(bounds.Min.X >> 6)
			g.RawMetrics.BBox.MaxX = sfnt.Units(bounds.Max.X >> 6)
			g.RawMetrics.BBox.MinY = sfnt.Units(-(bounds.Max.Y >> 6)) // sfnt's y axis grows downwards
			g.RawMetrics.BBox.MaxY = sfnt.Units(-(bounds.Min.Y >> 6))
			g.RawMetrics.LSB = g.RawMetrics.BBox.MinX
			g.RawMetrics.RSB = g.RawMetrics.Advance - g.RawMetrics.BBox.MaxX
		}
		seq.W += g.XAdvance
		if h := opentype.Scale(g.RawMetrics.BBox.MaxY, size, upem); h > seq.H {
			seq.H = h
		}
		if d := opentype.Scale(-g.RawMetrics.BBox.MinY, size, upem); d > seq.D {
			seq.D = d
		}
	}
	return seq, nil
}

// convertParams is a helper function to convert glyphing parameters to
// HarfBuzz's format.
func convertParams(props *hb.SegmentProperties, params glyphing.Params) {
	if params.Language != language.Und {
		props.Language = Lang4HB(params.Language)
	}
	var none language.Script
	if params.Script != none {
		props.Script = Script4HB(params.Script)
	}
	props.Direction = Direction4HB(params.Direction)
}

// bufferText buffers the input text of a call to Shape(…) as a bytes.Buffer.
// To conform to HarfBuzz's API, context is pre-/appended to the input runes.
//
// bufferText returns the start position of the input within the returned buffer,
// together with the input's length (= rune count).
func bufferText(text io.RuneReader, context [][]rune) (buf bytes.Buffer, off int, length int) {
	if len(context) > 0 {
		for _, r := range context[0] {
			buf.WriteRune(r)
		}
		off = len(context[0])
	}
	for {
		r, sz, err := text.ReadRune()
		if sz == 0 || err != nil {
			break
		}
		length++
		buf.WriteRune(r)
	}
	if len(context) > 1 {
		for _, r := range context[1] {
			buf.WriteRune(r)
		}
	}
	return buf, off, length
}
