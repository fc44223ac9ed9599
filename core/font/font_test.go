package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

type sw struct {
	s Style
	w Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {StyleNormal, WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {StyleItalic, WeightBold},
		"Cambria Math.ttf":                       {StyleNormal, WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	if !Matches("fonts/Clarendon-bold.ttf",
		"clarendon", StyleNormal, WeightBold) {
		t.Errorf("expected match for Clarendon, haven't")
	}
	if !Matches("Microsoft/Gill Sans MT Bold Italic.ttf",
		"gill sans", StyleItalic, WeightBold) {
		t.Errorf("expected match for Gill, haven't")
	}
	if !Matches("Cambria Math.ttf",
		"cambria", StyleNormal, WeightNormal) {
		t.Errorf("expected match for Cambria Math, haven't")
	}
}

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	n := NormalizeFontname("Clarendon", StyleItalic, WeightBold)
	if n != "clarendon-italic-bold" {
		t.Errorf("expected different normalized name for clarendon")
	}
}

func TestClosestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	descs := []Descriptor{
		{Family: "Gentium Plus", Variants: []string{"regular", "italic"}},
		{Family: "Clarendon", Variants: []string{"700"}},
	}
	desc, variant, conf := ClosestMatch(descs, "clarendon", StyleNormal, WeightBold)
	if conf == NoConfidence {
		t.Fatalf("expected to match Clarendon bold, haven't")
	}
	if desc.Family != "Clarendon" || variant != "700" {
		t.Errorf("expected Clarendon|700, is %s|%s", desc.Family, variant)
	}
}

func TestOpenTypeCaseCreation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	tc, err := f.PrepareCase(12.0)
	if err != nil {
		t.Logf("cannot create OT face for [%s]", f.Fontname)
		t.Fatal(err)
	}
	metrics := tc.font.Metrics()
	t.Logf("interline spacing for [%s]@%.1fpt is %s", f.Fontname, tc.size, metrics.Height)
}

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil || f.SFNT == nil {
		t.Fatalf("expected fallback font to be present, isn't")
	}
	if f.Buffer.Size() == 0 {
		t.Errorf("expected fallback font data to be non-empty, is empty")
	}
}
