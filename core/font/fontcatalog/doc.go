/*
Package fontcatalog manages a catalog of loaded fonts.

Fonts are filed under normalized names (see font.NormalizeFontname) and
handed out as typecases, i.e. fonts at a concrete point size. The catalog
keeps the binary buffers of all of its fonts registered with a
collection store, thus a text engine holding a loader over this store
will see every font the catalog knows about.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontcatalog

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontcase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontcase.fonts")
}
