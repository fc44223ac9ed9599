package font

import (
	"fmt"
	"sync/atomic"
)

// A Buffer holds raw font data in memory. Buffers are immutable: the bytes
// are copied once at creation and never modified afterwards. Buffers are
// shared by reference and stay alive as long as any client holds on to them,
// independently of any registry they may have been removed from in the
// meantime.
//
// A buffer carries a process-unique identity. Two buffers created from equal
// bytes are distinct nevertheless. Font providers hand out this identity,
// not the content, as a reference key (see RefKey).
type Buffer struct {
	id   uint64
	data []byte
}

// monotone source of buffer identities
var bufferSerial uint64

// NewBuffer creates a buffer from raw font data, copying b.
// A nil or empty argument yields a valid empty buffer.
func NewBuffer(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)
	return &Buffer{
		id:   atomic.AddUint64(&bufferSerial, 1),
		data: data,
	}
}

// Bytes returns the buffer's font data. The returned slice is a view into
// the buffer, not a copy, and should be treated as read-only by clients.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Size returns the byte length of the buffer.
func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

// Key returns the reference key identifying this buffer.
func (b *Buffer) Key() RefKey {
	return RefKey{ID: b.id, Size: b.Size()}
}

// RefKey identifies a font data buffer within a running process. ID is
// unique per buffer allocation, Size is the buffer's exact byte length.
// A key is stable for the lifetime of the buffer it names.
//
// Keys reflect identity, not content: equal bytes registered twice yield
// two buffers with two different keys. Clients may use keys to recognize
// a buffer they have seen before, e.g. as cache keys.
type RefKey struct {
	ID   uint64
	Size int64
}

func (k RefKey) String() string {
	return fmt.Sprintf("buf#%d:%d", k.ID, k.Size)
}
