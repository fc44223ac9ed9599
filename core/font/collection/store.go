package collection

import (
	"sync"

	"github.com/npillmayer/fontcase/core/font"
)

// Store is an ordered sequence of font data buffers, the backing storage of
// a font collection. Buffers are appended by Register and replaced in bulk
// by ReplaceAll; single entries are never removed or mutated in place.
//
// A store is safe for concurrent use. Reads go through snapshots, which are
// cheap and immutable, so mutations never disturb readers mid-enumeration.
type Store struct {
	sync.Mutex
	bufs []*font.Buffer
}

// NewStore creates an empty font buffer store.
func NewStore() *Store {
	return &Store{}
}

// Register copies data into a fresh immutable buffer and appends it to the
// store. Registration keeps insertion order and cannot fail; even empty data
// yields a valid (zero length) buffer. The new buffer is returned, e.g. for
// clients wanting to remember its reference key.
func (s *Store) Register(data []byte) *font.Buffer {
	buf := font.NewBuffer(data)
	s.Lock()
	defer s.Unlock()
	s.bufs = append(s.bufs, buf)
	tracer().Debugf("font store registered buffer %v", buf.Key())
	return buf
}

// ReplaceAll atomically replaces the store's whole buffer sequence. Clients
// use this to rebuild a collection, e.g. after assembling a new font set.
// Snapshots taken before the call keep the sequence they saw; buffers only
// referenced by such snapshots stay alive with them.
func (s *Store) ReplaceAll(bufs []*font.Buffer) {
	next := make([]*font.Buffer, len(bufs))
	copy(next, bufs)
	s.Lock()
	defer s.Unlock()
	s.bufs = next
	tracer().Debugf("font store now holds %d buffer(s)", len(next))
}

// Snapshot returns a point-in-time view of the store's buffer sequence.
// Taking a snapshot is O(1) and copies no font data; the view shares the
// store's backing storage but will never observe later mutations.
func (s *Store) Snapshot() Snapshot {
	s.Lock()
	defer s.Unlock()
	return Snapshot(s.bufs)
}

// Len returns the current number of registered buffers.
func (s *Store) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.bufs)
}

// Snapshot is an immutable view of a store's buffer sequence, in
// registration order.
type Snapshot []*font.Buffer
