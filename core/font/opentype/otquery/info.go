package otquery

import (
	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/fontcase/core/font/collection"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// FontType returns the font type, encoded in the font header, as a string.
func FontType(s *collection.FileStream) string {
	version, err := s.ReadFragment(0, 4)
	if err != nil {
		return "<empty>"
	}
	switch font.Tag(u32(version)) {
	case font.VersionCFF: // OTTO
		return "OpenType (outlines)"
	case font.VersionTrueType:
		return "TrueType"
	case font.VersionAppleTT: // true
		return "TrueType (Mac legacy)"
	}
	return "<unknown>"
}

// TableTags returns the tags of all the tables a font includes, in the order
// of the font's table directory.
func TableTags(s *collection.FileStream) ([]font.Tag, error) {
	recs, err := tableDirectory(s)
	if err != nil {
		return nil, err
	}
	tags := make([]font.Tag, len(recs))
	for i, rec := range recs {
		tags[i] = rec.tag
	}
	return tags, nil
}

// LayoutTables returns a list of tag strings, one for each layout-table a font includes.
//
// From the OpenType spec:
// OpenType Layout makes use of five tables: GSUB, GPOS, BASE, JSTF, and GDEF.
func LayoutTables(s *collection.FileStream) []string {
	var lt []string
	tags, err := TableTags(s)
	if err != nil {
		return lt
	}
	for _, tag := range tags {
		switch tag.String() {
		case "GSUB", "GPOS", "BASE", "JSTF", "GDEF":
			lt = append(lt, tag.String())
		}
	}
	return lt
}

// NameInfo returns a map with selected fields from OpenType table `name`.
// Will include (if available in the font) "family", "subfamily", "version".
//
// Parameter `lang` is currently unused.
func NameInfo(s *collection.FileStream, lang language.Tag) map[string]string {
	names := make(map[string]string)
	offset, _, err := locateTable(s, font.T("name"))
	if err != nil {
		tracer().Debugf("no name table found in font")
		return names
	}
	header, err := s.ReadFragment(offset, 6)
	if err != nil {
		return names
	}
	count := int64(u16(header[2:]))
	strOffset := offset + int64(u16(header[4:]))
	records, err := s.ReadFragment(offset+6, count*12)
	if err != nil {
		return names
	}
	keys := []struct {
		field  string
		nameID uint16
	}{
		{"family", 1},
		{"subfamily", 2},
		{"version", 5},
	}
	for _, k := range keys {
		// prefer Windows platform/BMP encoding over Mac platform/Roman
		if v := lookupName(s, records, strOffset, 3, 1, k.nameID); v != "" {
			names[k.field] = v
		} else if v := lookupName(s, records, strOffset, 1, 0, k.nameID); v != "" {
			names[k.field] = v
		}
	}
	return names
}

// lookupName scans the records of a name table for a (platform, encoding,
// name-ID) combination and reads the corresponding string from the stream.
func lookupName(s *collection.FileStream, records []byte, strOffset int64,
	platform, encoding, nameID uint16) string {
	//
	for i := 0; i+12 <= len(records); i += 12 {
		b := records[i:]
		if u16(b) != platform || u16(b[2:]) != encoding || u16(b[6:]) != nameID {
			continue
		}
		length := int64(u16(b[8:]))
		off := int64(u16(b[10:]))
		str, err := s.ReadFragment(strOffset+off, length)
		if err != nil {
			tracer().Debugf("name record points outside of name table")
			return ""
		}
		if platform == 3 { // strings of the Windows platform are UTF-16 encoded
			name, err := decodeUtf16(str)
			if err != nil {
				return ""
			}
			return name
		}
		return string(str)
	}
	return ""
}

func decodeUtf16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoder := enc.NewDecoder()
	s, err := decoder.Bytes(str)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "decoding UTF-16 error")
	}
	return string(s), nil
}

// --- Table directory -------------------------------------------------------

// tableRecord describes one entry of a font's table directory.
type tableRecord struct {
	tag    font.Tag
	offset uint32
	length uint32
}

// tableDirectory reads a font's table directory through the stream.
func tableDirectory(s *collection.FileStream) ([]tableRecord, error) {
	header, err := s.ReadFragment(0, 12)
	if err != nil {
		return nil, err
	}
	n := int64(u16(header[4:]))
	dir, err := s.ReadFragment(12, n*16)
	if err != nil {
		return nil, err
	}
	recs := make([]tableRecord, n)
	for i := range recs {
		b := dir[i*16:]
		recs[i] = tableRecord{
			tag:    font.Tag(u32(b)),
			offset: u32(b[8:]),
			length: u32(b[12:]),
		}
	}
	return recs, nil
}

// locateTable finds the extent of a table within the stream.
func locateTable(s *collection.FileStream, tag font.Tag) (offset int64, length int64, err error) {
	recs, err := tableDirectory(s)
	if err != nil {
		return 0, 0, err
	}
	for _, rec := range recs {
		if rec.tag == tag {
			return int64(rec.offset), int64(rec.length), nil
		}
	}
	return 0, 0, core.Error(core.EMISSING, "font has no table %s", tag)
}

// --- Helpers ---------------------------------------------------------------

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func i16(b []byte) int16 {
	return int16(b[0])<<8 | int16(b[1])<<0
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}
