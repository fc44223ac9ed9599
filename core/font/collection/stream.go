package collection

import (
	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/font"
)

// FileLoader opens streams over a single font buffer. Engines receive a
// file loader from a FontFile, together with the font's reference key, and
// are expected to pass that key back in when opening a stream.
type FileLoader struct {
	buf *font.Buffer
}

// OpenStream materializes a read-only stream over the buffer named by key.
//
// Validation is a length check only: key.Size must equal the size of the
// loader's buffer. The identity part of the key is not inspected, trusting
// the engine to hand keys back to the loader they came from. This is a
// plausibility heuristic, not a tamper-proof check. A mismatch returns an
// error with code core.EINVALID.
func (l *FileLoader) OpenStream(key font.RefKey) (*FileStream, error) {
	if key.Size != l.buf.Size() {
		return nil, core.Error(core.EINVALID,
			"reference key names a buffer of %d bytes, loader holds %d bytes", key.Size, l.buf.Size())
	}
	return &FileStream{buf: l.buf}, nil
}

// FileStream gives random access reads into a font buffer. A stream has no
// cursor: every read names its own range and reads are idempotent. The
// underlying buffer is immutable, so fragments handed out stay valid for
// the buffer's lifetime.
type FileStream struct {
	buf *font.Buffer
}

// ReadFragment returns a view of length bytes of font data, starting at
// offset. The fragment borrows the stream's underlying storage; no bytes
// are copied. Callers should treat fragments as read-only and pair each
// successful read with a call to ReleaseFragment.
//
// A request not fully inside [0, FileSize()] returns an error with code
// core.ERANGE. The bounds check is arranged so that hostile offset/length
// combinations cannot wrap around.
func (s *FileStream) ReadFragment(offset, length int64) ([]byte, error) {
	if offset < 0 || length < 0 || length > s.buf.Size()-offset {
		return nil, core.Error(core.ERANGE,
			"fragment %d+%d not within buffer of %d bytes", offset, length, s.buf.Size())
	}
	return s.buf.Bytes()[offset : offset+length], nil
}

// ReleaseFragment releases a fragment obtained from ReadFragment. Fragment
// lifetime is tied to the garbage-collected buffer, so there is nothing to
// unpin; the operation exists for symmetry with engine protocols that pair
// every read with a release. Safe to call with any argument, any number of
// times.
func (s *FileStream) ReleaseFragment(frag []byte) {
	// no-op
}

// FileSize returns the exact byte length of the underlying buffer,
// which may be zero.
func (s *FileStream) FileSize() int64 {
	return s.buf.Size()
}

// LastWriteTime returns a fixed, non-zero timestamp. In-memory fonts carry
// no file system metadata; engines fold the value into cache keys, for
// which any stable constant serves.
func (s *FileStream) LastWriteTime() uint64 {
	return lastWriteTimestamp
}

const lastWriteTimestamp uint64 = 10
