package collection

import (
	"testing"

	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStoreRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	store := NewStore()
	if store.Len() != 0 {
		t.Errorf("expected fresh store to be empty, has %d", store.Len())
	}
	store.Register([]byte("font 1"))
	store.Register([]byte("font 2"))
	store.Register(nil) // empty data is a legal buffer
	if store.Len() != 3 {
		t.Errorf("expected store to hold 3 buffers, has %d", store.Len())
	}
	snap := store.Snapshot()
	if len(snap) != 3 {
		t.Errorf("expected snapshot of length 3, is %d", len(snap))
	}
	if snap[2].Size() != 0 {
		t.Errorf("expected third buffer to be empty, has size %d", snap[2].Size())
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	store := NewStore()
	store.Register([]byte("font 1"))
	snap := store.Snapshot()
	store.Register([]byte("font 2"))
	if len(snap) != 1 {
		t.Errorf("expected snapshot to keep length 1 after register, is %d", len(snap))
	}
	if len(store.Snapshot()) != 2 {
		t.Errorf("expected fresh snapshot to have length 2, is %d", len(store.Snapshot()))
	}
}

func TestStoreReplaceAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	store := NewStore()
	store.Register([]byte("old font"))
	snap := store.Snapshot()
	oldKey := snap[0].Key()
	//
	a := font.NewBuffer([]byte("new font A"))
	b := font.NewBuffer([]byte("new font B"))
	next := []*font.Buffer{a, b}
	store.ReplaceAll(next)
	if store.Len() != 2 {
		t.Errorf("expected store to hold 2 buffers after replace, has %d", store.Len())
	}
	if len(snap) != 1 || snap[0].Key() != oldKey {
		t.Errorf("expected old snapshot to survive replace unchanged")
	}
	// the store copies the slice: mutating the caller's slice is not seen
	next[0] = font.NewBuffer([]byte("sneaky"))
	if store.Snapshot()[0].Key() != a.Key() {
		t.Errorf("expected store to be isolated from caller slice mutation")
	}
	store.ReplaceAll(nil)
	if store.Len() != 0 {
		t.Errorf("expected store to be empty after replace with nil, has %d", store.Len())
	}
}
