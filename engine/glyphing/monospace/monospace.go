package monospace

import (
	"io"
	"unicode/utf8"

	"github.com/npillmayer/fontcase/core/dimen"
	"github.com/npillmayer/fontcase/engine/glyphing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/language"
)

type msshape struct {
	em               dimen.DU
	dir              glyphing.Direction
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// Shaper creates a shaper for monospace typesetting.
// An em-dimension may be given which will then be used for shaping text.
// If it is zero, it will be set to 10pt.
func Shaper(em dimen.DU, context *uax11.Context) glyphing.Shaper {
	if em == 0 {
		em = 10 * dimen.PT
	}
	if context == nil {
		context = uax11.LatinContext
	}
	sh := &msshape{
		em:      em,
		dir:     glyphing.LeftToRight,
		context: context,
	}
	onGraphemes := grapheme.NewBreaker(1)
	sh.graphemeSplitter = segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	return sh
}

// Shape creates a glyph sequence from a text.
func (ms msshape) Shape(text io.RuneReader, buf []glyphing.ShapedGlyph, ctx [][]rune, p glyphing.Params) (glyphing.GlyphSequence, error) {
	if text == nil {
		return glyphing.GlyphSequence{}, nil
	}
	seq := glyphing.GlyphSequence{}
	if buf == nil {
		seq.Glyphs = make([]glyphing.ShapedGlyph, 0, 256)
	} else {
		seq.Glyphs = buf[:0]
	}
	ms.graphemeSplitter.Init(text)
	pos := 0 // clusters address the rune position of a grapheme's start
	for ms.graphemeSplitter.Next() {
		grphm := ms.graphemeSplitter.Bytes()
		w := uax11.Width(grphm, ms.context)
		codepoint, _ := utf8.DecodeRune(grphm)
		g := glyphing.ShapedGlyph{
			XAdvance:  dimen.DU(w) * ms.em,
			ClusterID: pos,
			CodePoint: codepoint,
		}
		seq.Glyphs = append(seq.Glyphs, g)
		seq.W += g.XAdvance
		pos += utf8.RuneCount(grphm)
	}
	seq.H = ms.em * 3 / 5
	seq.D = ms.em * 2 / 5
	return seq, nil
}

// SetScript does not do anything for monospace shapers.
func (ms msshape) SetScript(scr language.Script) {
	//
}

// SetDirection sets the text direction.
func (ms *msshape) SetDirection(dir glyphing.Direction) {
	ms.dir = dir
}

// SetLanguage does not do anything for monospace shapers.
func (ms msshape) SetLanguage(language.Tag) {}
