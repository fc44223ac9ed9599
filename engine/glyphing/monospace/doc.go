/*
Package monospace implements a simple shaper for monospace output.

Glyphs are not taken from a font; instead, every grapheme cluster of the
input is set on a fixed-width cell, with East Asian wide characters
occupying two cells (see UAX#11).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontcase.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("fontcase.glyphs")
}
