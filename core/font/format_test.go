package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/goregular"
)

func TestTagStringLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	tag := T("OTTO")
	if tag != VersionCFF {
		t.Errorf("expected tag OTTO to equal CFF version tag, is %x", uint32(tag))
	}
	if tag.String() != "OTTO" {
		t.Errorf("expected tag to round-trip to 'OTTO', is %q", tag.String())
	}
	if MakeTag([]byte("true")) != VersionAppleTT {
		t.Errorf("expected tag 'true' to equal Apple TrueType version tag")
	}
}

func TestSniffFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	cases := []struct {
		name      string
		data      []byte
		supported bool
		file      FileType
		faces     int
	}{
		{"sfnt v1.0", []byte{0, 1, 0, 0, 'x', 'x'}, true, TrueTypeFile, 1},
		{"Apple 'true'", []byte("true"), true, TrueTypeFile, 1},
		{"'OTTO'", []byte("OTTOxxxx"), true, CFFFile, 1},
		{"junk", []byte{0xde, 0xad, 0xbe, 0xef}, false, UnknownFileType, 0},
		{"too short", []byte{0, 1}, false, UnknownFileType, 0},
		{"empty", nil, false, UnknownFileType, 0},
	}
	for _, c := range cases {
		format := SniffFormat(c.data)
		if format.Supported != c.supported {
			t.Errorf("%s: expected supported=%v, is %v", c.name, c.supported, format.Supported)
		}
		if format.File != c.file {
			t.Errorf("%s: expected file type %v, is %v", c.name, c.file, format.File)
		}
		if format.Faces != c.faces {
			t.Errorf("%s: expected %d face(s), is %d", c.name, c.faces, format.Faces)
		}
	}
}

func TestSniffLittleEndianRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	// version 1.0 in little-endian byte order is not a valid font prefix
	format := SniffFormat([]byte{0, 0, 1, 0})
	if format.Supported {
		t.Errorf("expected little-endian version tag to be unsupported, isn't")
	}
}

func TestSniffRealFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontcase.fonts")
	defer teardown()
	//
	format := SniffFormat(goregular.TTF)
	if !format.Supported {
		t.Fatalf("expected Go Regular to be a supported font, isn't")
	}
	if format.File != TrueTypeFile || format.Face != TrueTypeFace {
		t.Errorf("expected Go Regular to classify as TrueType, is %v", format)
	}
}
