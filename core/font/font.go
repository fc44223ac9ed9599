/*
Package font is for typeface and font handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".
This corresponds to a TrueType "collection" (*.ttc).

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font in a certain size for
a certain script and language. The name is reminiscend on the wooden
boxes of typesetters in the aera of metal type.
An example is "Helvetica regular 11pt, Latin, en_US".

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Font data is held in immutable in-memory buffers (type Buffer), which carry
a process-unique identity. Sub-package collection exposes buffers to text
engines through an enumeration and streaming protocol.

TODO: font collections (*.ttc), e.g., /System/Library/Fonts/Helvetica.ttc

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontcase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontcase.fonts")
}

// ScalableFont is a font variant, i.e. a font face with a certain style and
// weight, not yet scaled to a size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, empty for fonts not originating from a file
	Buffer   *Buffer    // raw font data
	SFNT     *sfnt.Font // the font's container
}

// Binary returns the raw data of the font. The returned slice is a view into
// the font's buffer and should be treated as read-only by clients.
func (sf *ScalableFont) Binary() []byte {
	if sf == nil || sf.Buffer == nil {
		return nil
	}
	return sf.Buffer.Bytes()
}

// TypeCase is a font scaled to a point-size, ready for use by a shaper or
// rasterizer.
type TypeCase struct {
	scalableFontParent *ScalableFont
	font               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float32
	// script
	// language
}

// NullTypeCase returns an empty typecase at a default size.
func NullTypeCase() *TypeCase {
	return &TypeCase{
		font: nil,
		size: 10,
	}
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont interprets raw font data as an OpenType font (TTF or OTF).
// The bytes are copied into a fresh, immutable buffer.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Buffer: NewBuffer(fbytes)}
	f.SFNT, err = sfnt.Parse(f.Buffer.Bytes())
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase scales a font to a given point-size.
//
// TODO: check if language fits to script
// TODO: check if font supports script
func (sf *ScalableFont) PrepareCase(fontsize float32) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Errorf("font size must be 5pt < size < 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: float64(fontsize),
		DPI:  600,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.font = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the unscaled font this typecase has been derived
// from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the point-size of the typecase.
func (tc *TypeCase) PtSize() float32 {
	return tc.size
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Buffer:   NewBuffer(goregular.TTF),
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Buffer.Bytes())
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}
