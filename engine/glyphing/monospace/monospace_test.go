package monospace_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/fontcase/core/dimen"
	"github.com/npillmayer/fontcase/engine/glyphing"
	"github.com/npillmayer/fontcase/engine/glyphing/monospace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMonospaceShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.glyphs")
	defer teardown()
	//
	shaper := monospace.Shaper(10*dimen.PT, nil)
	seq, err := shaper.Shape(strings.NewReader("Hello"), nil, nil, glyphing.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(seq.Glyphs) != 5 {
		t.Errorf("expected 5 glyphs, have %d", len(seq.Glyphs))
	}
	if seq.W != 50*dimen.PT {
		t.Errorf("expected width of 50pt, is %s", seq.W)
	}
	if seq.H <= 0 || seq.D <= 0 {
		t.Errorf("expected sequence to have height and depth, is H=%s, D=%s", seq.H, seq.D)
	}
}

func TestMonospaceWideChars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.glyphs")
	defer teardown()
	//
	em := dimen.DU(12 * dimen.PT)
	shaper := monospace.Shaper(em, nil)
	seq, err := shaper.Shape(strings.NewReader("世界"), nil, nil, glyphing.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(seq.Glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, have %d", len(seq.Glyphs))
	}
	if seq.W != 4*em {
		t.Errorf("expected double-width glyphs, total width is %s", seq.W)
	}
}

func TestMonospaceClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.glyphs")
	defer teardown()
	//
	shaper := monospace.Shaper(0, nil)
	seq, err := shaper.Shape(strings.NewReader("áb"), nil, nil, glyphing.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(seq.Glyphs) != 2 {
		t.Fatalf("expected combining accent to fold into 2 glyphs, have %d", len(seq.Glyphs))
	}
	if seq.Glyphs[1].ClusterID != 2 {
		t.Errorf("expected second glyph to start at rune 2, is at %d", seq.Glyphs[1].ClusterID)
	}
}
