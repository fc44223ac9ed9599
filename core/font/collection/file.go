package collection

import (
	"github.com/npillmayer/fontcase/core/font"
)

// FontFile is a single font of a collection, as handed to a text engine by
// an enumerator. It wraps one immutable buffer and stays usable for as long
// as the client holds it, even if the collection has been replaced in the
// meantime.
type FontFile struct {
	buf *font.Buffer
}

// ReferenceKey returns the identity key of the font's buffer. The key is
// stable and unique for the buffer's lifetime, making it suitable as a
// cache key on the engine side. ReferenceKey always succeeds.
func (f *FontFile) ReferenceKey() font.RefKey {
	return f.buf.Key()
}

// Loader returns a file loader for this font file. The loader opens streams
// over the same buffer the font file wraps.
func (f *FontFile) Loader() *FileLoader {
	return &FileLoader{buf: f.buf}
}

// Analyze classifies the font file's data format. The data is untrusted;
// analysis inspects the leading version tag and reports arbitrary or
// truncated bytes as unsupported rather than failing. See font.SniffFormat
// for the recognized formats.
func (f *FontFile) Analyze() font.Format {
	format := font.SniffFormat(f.buf.Bytes())
	tracer().Debugf("font file %v analyzed as %v", f.buf.Key(), format)
	return format
}
