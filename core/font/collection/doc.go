/*
Package collection provides in-memory font collections for text engines.

Text engines usually pull their fonts from the installed system fonts.
Applications which carry their own fonts (embedded, downloaded, generated)
instead hand the engine raw font data in memory. Engines drive a small
protocol for this, made of loader, enumerator, font file and stream objects,
which this package implements:

▪︎ A Store holds registered font data buffers (see package font), ordered
by registration.

▪︎ A Loader answers an engine's request for a collection with an Enumerator
over a point-in-time snapshot of the store.

▪︎ The Enumerator yields FontFile objects, which an engine analyzes and
reads through a FileLoader/FileStream pair.

The engine is the caller for all of these; the application merely registers
buffers and hands the loader over. Data flowing through the protocol is
untrusted: analysis and streaming are defensive, with malformed input
degrading to an unsupported classification or a range error, never to a
fault.

# Status

Each registered buffer is treated as a single font face. Font collection
files (*.ttc) and the collection-key mechanism for multiple logical
collections per loader are not supported yet.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package collection

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontcase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("fontcase.fonts")
}
