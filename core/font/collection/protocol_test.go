package collection

import (
	"bytes"
	"testing"

	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

// ProtocolTestEnviron walks the enumeration and streaming protocol the way a
// text engine does: create enumerator, advance, analyze, open stream, read.
type ProtocolTestEnviron struct {
	suite.Suite
	store  *Store
	loader *Loader
}

// listen for 'go test' command --> run test methods
func TestProtocolFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	suite.Run(t, new(ProtocolTestEnviron))
}

// run before each test method
func (env *ProtocolTestEnviron) SetupTest() {
	env.store = NewStore()
	env.store.Register(goregular.TTF)             // a real TrueType font
	env.store.Register([]byte("OTTO then junk"))  // CFF by version tag only
	env.store.Register([]byte{0xde, 0xad, 0xbe})  // not a font, too short even
	env.loader = NewLoader(env.store)
}

// --- Tests -----------------------------------------------------------------

func (env *ProtocolTestEnviron) TestEnumeratorWalk() {
	enum, err := env.loader.CreateEnumerator(nil)
	env.Require().NoError(err, "expected enumerator creation to always succeed")
	count := 0
	for enum.MoveNext() {
		count++
	}
	env.Equal(3, count, "expected to enumerate 3 font files")
	env.False(enum.MoveNext(), "expected exhausted enumerator to stay exhausted")
	env.False(enum.MoveNext(), "expected exhausted enumerator to stay exhausted")
}

func (env *ProtocolTestEnviron) TestCurrentNeedsMoveNext() {
	enum, _ := env.loader.CreateEnumerator(nil)
	_, err := enum.Current()
	env.Require().Error(err, "expected Current before MoveNext to fail")
	env.Equal(core.ESTATE, core.Code(err), "expected error code ESTATE")
	//
	for enum.MoveNext() {
	}
	_, err = enum.Current()
	env.Require().Error(err, "expected Current after exhaustion to fail")
	env.Equal(core.ESTATE, core.Code(err), "expected error code ESTATE")
}

func (env *ProtocolTestEnviron) TestAnalyzeFlavors() {
	enum, _ := env.loader.CreateEnumerator(nil)
	var formats []font.Format
	for enum.MoveNext() {
		file, err := enum.Current()
		env.Require().NoError(err)
		formats = append(formats, file.Analyze())
	}
	env.Require().Len(formats, 3)
	env.True(formats[0].Supported, "expected Go Regular to be supported")
	env.Equal(font.TrueTypeFile, formats[0].File, "expected Go Regular to be TrueType")
	env.Equal(1, formats[0].Faces, "expected a single face")
	env.True(formats[1].Supported, "expected OTTO prefix to classify as supported CFF")
	env.Equal(font.CFFFile, formats[1].File, "expected OTTO prefix to be CFF")
	env.False(formats[2].Supported, "expected junk bytes to be unsupported")
	env.Equal(0, formats[2].Faces, "expected no faces for junk bytes")
}

func (env *ProtocolTestEnviron) TestSnapshotIsolation() {
	enum, _ := env.loader.CreateEnumerator(nil)
	env.store.Register([]byte("late font")) // after the enumerator snapshot
	count := 0
	for enum.MoveNext() {
		count++
	}
	env.Equal(3, count, "expected snapshot not to see late registration")
	//
	fresh, _ := env.loader.CreateEnumerator(nil)
	count = 0
	for fresh.MoveNext() {
		count++
	}
	env.Equal(4, count, "expected fresh enumerator to see 4 font files")
}

func (env *ProtocolTestEnviron) TestCollectionKeyIgnored() {
	withKey, err := env.loader.CreateEnumerator([]byte("my collection"))
	env.Require().NoError(err)
	withoutKey, err := env.loader.CreateEnumerator(nil)
	env.Require().NoError(err)
	env.Equal(len(withoutKey.snapshot), len(withKey.snapshot),
		"expected identical collections for any key")
}

func (env *ProtocolTestEnviron) TestWrapperIdentity() {
	enum, _ := env.loader.CreateEnumerator(nil)
	env.Require().True(enum.MoveNext())
	file1, err := enum.Current()
	env.Require().NoError(err)
	file2, err := enum.Current()
	env.Require().NoError(err)
	env.False(file1 == file2, "expected Current to create fresh wrappers")
	env.Equal(file1.ReferenceKey(), file2.ReferenceKey(),
		"expected wrappers of one buffer to share the reference key")
}

func (env *ProtocolTestEnviron) TestEndToEndRoundTrip() {
	enum, _ := env.loader.CreateEnumerator(nil)
	env.Require().True(enum.MoveNext(), "expected at least one font file")
	file, err := enum.Current()
	env.Require().NoError(err)
	format := file.Analyze()
	env.Require().True(format.Supported, "expected first font to be supported")
	//
	key := file.ReferenceKey()
	stream, err := file.Loader().OpenStream(key)
	env.Require().NoError(err, "expected stream to open with the file's own key")
	env.Equal(int64(len(goregular.TTF)), stream.FileSize(), "expected exact font size")
	//
	frag, err := stream.ReadFragment(0, stream.FileSize())
	env.Require().NoError(err)
	env.True(bytes.Equal(goregular.TTF, frag), "expected streamed bytes to equal registered bytes")
	stream.ReleaseFragment(frag)
	env.NotZero(stream.LastWriteTime(), "expected a non-zero last-write timestamp")
}
