package font

import (
	"encoding/binary"
	"fmt"
)

// GlyphIndex is a glyph index in a font.
type GlyphIndex uint16

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("cmap"))
//
// If b is shorter or longer, it will be silently extended or cut as appropriate.
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(binary.BigEndian.Uint32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(binary.BigEndian.Uint32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Format sniffing -------------------------------------------------------

// OpenType font files start with a 4-byte version tag.
//
// OpenType fonts that contain TrueType outlines should use the value of
// 0x00010000, OpenType fonts containing CFF data should use 0x4F54544F
// ('OTTO', when re-interpreted as a Tag). The Apple specification for
// TrueType fonts additionally allows for 'true'.
const (
	VersionTrueType Tag = 0x00010000 // sfnt version 1.0, TrueType outlines
	VersionAppleTT  Tag = 0x74727565 // 'true', Apple legacy TrueType
	VersionCFF      Tag = 0x4f54544f // 'OTTO', CFF outlines
)

// FileType classifies the container format of raw font data.
type FileType int

// Container formats recognized by SniffFormat.
const (
	UnknownFileType FileType = iota
	TrueTypeFile
	CFFFile
)

func (ft FileType) String() string {
	switch ft {
	case TrueTypeFile:
		return "TrueType"
	case CFFFile:
		return "CFF"
	}
	return "<unknown>"
}

// FaceType classifies the outline format of a font face.
type FaceType int

// Outline formats recognized by SniffFormat.
const (
	UnknownFaceType FaceType = iota
	TrueTypeFace
	CFFFace
)

func (ft FaceType) String() string {
	switch ft {
	case TrueTypeFace:
		return "TrueType outlines"
	case CFFFace:
		return "CFF outlines"
	}
	return "<unknown>"
}

// Format is the outcome of classifying raw font data: container format,
// outline format, a supported-flag and the number of font faces the data
// holds. Unrecognized data is a regular outcome, not an error, and yields
// the zero Format.
type Format struct {
	Supported bool
	File      FileType
	Face      FaceType
	Faces     int
}

func (f Format) String() string {
	if !f.Supported {
		return "<unsupported font format>"
	}
	return fmt.Sprintf("%v, %d face(s)", f.File, f.Faces)
}

// SniffFormat classifies raw font data by inspecting its leading version tag.
// The data is untrusted and may be arbitrary bytes; sniffing never fails.
// Data shorter than the 4-byte tag, or carrying an unrecognized tag,
// classifies as unsupported.
//
// The version tag is read in big-endian byte order, as the OpenType spec
// mandates for all data in font files.
//
// A recognized font counts as exactly one face. Font collections (*.ttc)
// are not supported and classify as unknown.
func SniffFormat(data []byte) Format {
	if len(data) < 4 {
		return Format{}
	}
	switch Tag(binary.BigEndian.Uint32(data)) {
	case VersionTrueType, VersionAppleTT:
		return Format{Supported: true, File: TrueTypeFile, Face: TrueTypeFace, Faces: 1}
	case VersionCFF:
		return Format{Supported: true, File: CFFFile, Face: CFFFace, Faces: 1}
	}
	return Format{}
}
