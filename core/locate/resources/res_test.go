package resources

import (
	"testing"

	"github.com/npillmayer/fontcase/core/font/fontcatalog"
	"github.com/npillmayer/schuko/gtrace"
	tconf "github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

func TestResolveBuiltinFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	conf := tconf.Conf{}
	loader := ResolveTypeCase(conf, "Go", xfont.StyleNormal, xfont.WeightNormal, 11.0)
	typecase, err := loader.TypeCase()
	if err != nil {
		t.Error(err)
	}
	if typecase == nil {
		t.Fatalf("typecase is nil, should not be")
	}
	t.Logf("pt-size of typecase = %f", typecase.PtSize())
	t.Logf("name of typecase = %s", typecase.ScalableFontParent().Fontname)
	if typecase.PtSize() != 11.0 {
		t.Errorf("expected typecase of builtin font at size 11, is %.2f", typecase.PtSize())
	}
	if fontcatalog.GlobalCatalog().Store().Len() == 0 {
		t.Errorf("expected resolved font to be part of the catalog's collection")
	}
}

func TestResolveFromCatalog(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	conf := tconf.Conf{}
	loader := ResolveTypeCase(conf, "Go", xfont.StyleNormal, xfont.WeightBold, 10.0)
	first, err := loader.TypeCase()
	if err != nil {
		t.Fatal(err)
	}
	loader = ResolveTypeCase(conf, "Go", xfont.StyleNormal, xfont.WeightBold, 10.0)
	second, err := loader.TypeCase()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("expected second resolve to be served from the catalog, wasn't")
	}
}

func TestResolveUnknownFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	conf := tconf.Conf{}
	loader := ResolveTypeCase(conf, "no-such-font-anywhere", xfont.StyleNormal, xfont.WeightNormal, 10.0)
	typecase, err := loader.TypeCase()
	if err == nil {
		t.Error("expected resolving of unknown font to fail, did not")
	}
	if typecase != nil {
		t.Errorf("expected no typecase for unknown font, got one")
	}
}
