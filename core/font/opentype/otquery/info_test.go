package otquery

import (
	"testing"

	"github.com/npillmayer/fontcase/core/font/collection"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// --- Test Suite Preparation ------------------------------------------------

type InfoTestEnviron struct {
	suite.Suite
	stream *collection.FileStream
}

// listen for 'go test' command --> run test methods
func TestInfoFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	suite.Run(t, new(InfoTestEnviron))
}

// run once, before test suite methods
func (env *InfoTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("fontcase.fonts").SetTraceLevel(tracing.LevelError)
	env.stream = streamTestFont(env.T(), goregular.TTF)
	tracing.Select("fontcase.fonts").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *InfoTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *InfoTestEnviron) TestFontTypeInfo() {
	fti := FontType(env.stream)
	env.Equal("TrueType", fti, "expected font type of test font to be TrueType")
}

func (env *InfoTestEnviron) TestGeneralInfo() {
	info := NameInfo(env.stream, language.Und)
	env.T().Logf("info = %v", info)
	fam, ok := info["family"]
	env.Require().True(ok, "font family identifier not found in font info")
	env.Equal("Go", fam, "expected font family name 'Go'")
}

func (env *InfoTestEnviron) TestTableTags() {
	tags, err := TableTags(env.stream)
	env.Require().NoError(err, "cannot read table directory of test font")
	taglist := make([]string, len(tags))
	for i, tag := range tags {
		taglist[i] = tag.String()
	}
	required := []string{"cmap", "head", "hhea", "hmtx", "name"}
	for _, reqt := range required {
		env.Contains(taglist, reqt, "expected test font to contain required table %s", reqt)
	}
}

func (env *InfoTestEnviron) TestLayoutInfo() {
	layouts := LayoutTables(env.stream)
	env.T().Logf("test font layout tables: %v", layouts)
	for _, l := range layouts {
		env.Contains([]string{"GSUB", "GPOS", "BASE", "JSTF", "GDEF"}, l,
			"expected only layout tables to be listed, got %s", l)
	}
}

// --- Helpers ----------------------------------------------------------

// streamTestFont registers a font blob with a fresh collection store and
// walks the enumeration protocol to obtain a read stream over it.
func streamTestFont(t *testing.T, data []byte) *collection.FileStream {
	store := collection.NewStore()
	store.Register(data)
	enum, err := collection.NewLoader(store).CreateEnumerator(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !enum.MoveNext() {
		t.Fatal("collection holding the test font is empty")
	}
	file, err := enum.Current()
	if err != nil {
		t.Fatal(err)
	}
	stream, err := file.Loader().OpenStream(file.ReferenceKey())
	if err != nil {
		t.Fatal(err)
	}
	return stream
}
