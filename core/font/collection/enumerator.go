package collection

import (
	"github.com/npillmayer/fontcase/core"
)

// Loader is the entry point for a text engine into a font collection: the
// engine asks it for an enumerator and walks the collection's font files
// from there. One loader serves one logical collection, backed by a store.
type Loader struct {
	store *Store
}

// NewLoader creates a collection loader on top of a buffer store.
func NewLoader(store *Store) *Loader {
	return &Loader{store: store}
}

// CreateEnumerator returns an enumerator over a point-in-time snapshot of
// the collection. Fonts registered after this call will not be seen by the
// returned enumerator, even if queried later.
//
// Engines pass an opaque collection key; since a loader serves exactly one
// collection, the key is accepted but ignored. Clients registering one
// loader under several keys will receive the same collection for each of
// them. CreateEnumerator never fails, the error return exists for protocol
// shape only.
func (l *Loader) CreateEnumerator(key []byte) (*Enumerator, error) {
	if len(key) > 0 {
		tracer().Debugf("collection key of %d bytes ignored, loader serves a single collection", len(key))
	}
	return &Enumerator{snapshot: l.store.Snapshot(), pos: -1}, nil
}

// Enumerator is a forward-only cursor over the font files of a collection
// snapshot. The zero position is before the first entry; MoveNext advances,
// Current reads. An enumerator is meant for a single caller and is not
// safe for concurrent use; the snapshot behind it is immutable, so any
// number of enumerators may walk the same collection independently.
type Enumerator struct {
	snapshot Snapshot
	pos      int
}

// MoveNext advances the cursor to the next font file and reports whether
// the new position holds one. The first call moves onto the first entry.
// After the cursor has moved past the last entry, MoveNext keeps returning
// false; the cursor never moves backwards and never revisits an entry.
func (e *Enumerator) MoveNext() bool {
	if e.pos < len(e.snapshot) {
		e.pos++
	}
	return e.pos < len(e.snapshot)
}

// Current returns the font file at the cursor. It is valid only after a
// MoveNext call that returned true; before the first MoveNext and after
// exhaustion it returns an error with code core.ESTATE.
//
// Each call creates a fresh wrapper object. Wrappers obtained for the same
// position share the underlying buffer and therefore its reference key.
func (e *Enumerator) Current() (*FontFile, error) {
	if e.pos < 0 {
		return nil, core.Error(core.ESTATE, "enumerator not started, call MoveNext first")
	}
	if e.pos >= len(e.snapshot) {
		return nil, core.Error(core.ESTATE, "enumerator is exhausted")
	}
	return &FontFile{buf: e.snapshot[e.pos]}, nil
}
