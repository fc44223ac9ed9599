package font

import (
	"path"
	"regexp"
	"strconv"
	"strings"

	xfont "golang.org/x/image/font"
)

// Style and Weight describe the variant of a typeface. We re-use the
// x/image/font types for them.
type Style = xfont.Style

// Weight is a font weight, aliasing x/image/font.Weight.
type Weight = xfont.Weight

// Font styles.
const (
	StyleNormal  = xfont.StyleNormal
	StyleItalic  = xfont.StyleItalic
	StyleOblique = xfont.StyleOblique
)

// Font weights (CSS scale 100–900, with 400 = normal).
const (
	WeightThin       = xfont.WeightThin
	WeightExtraLight = xfont.WeightExtraLight
	WeightLight      = xfont.WeightLight
	WeightNormal     = xfont.WeightNormal
	WeightMedium     = xfont.WeightMedium
	WeightSemiBold   = xfont.WeightSemiBold
	WeightBold       = xfont.WeightBold
	WeightExtraBold  = xfont.WeightExtraBold
	WeightBlack      = xfont.WeightBlack
)

// Descriptor describes a font variant as listed by some font locating
// mechanism (system directory, fontconfig, remote font service), without the
// font data being loaded.
type Descriptor struct {
	Family   string   // font family name, e.g. "Helvetica"
	Path     string   // file system path of the font's binary, if applicable
	Variants []string // variant names, e.g. "regular", "italic", "700"
}

// NormalizeFontname returns a canonical lowercase name for a font of a given
// style and weight, e.g.
//
//	NormalizeFontname("Helvetica.ttf", StyleItalic, WeightBold) = "helvetica-italic-bold"
//
// Normalized names are the keys under which catalogs file fonts.
func NormalizeFontname(fname string, style Style, weight Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case StyleItalic, StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case WeightLight, WeightExtraLight:
		fname += "-light"
	case WeightBold, WeightExtraBold, WeightSemiBold:
		fname += "-bold"
	}
	return fname
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (Style, Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return StyleNormal, WeightLight
		case "normal", "medium", "regular", "r":
			return StyleNormal, WeightNormal
		case "bold", "b":
			return StyleNormal, WeightBold
		case "xbold", "black":
			return StyleNormal, WeightExtraBold
		}
	}
	style, weight := StyleNormal, WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight.
func Matches(fontfilename, pattern string, style Style, weight Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	tracer().Debugf("basename of font = %s", basename)
	if !strings.Contains(basename, strings.ToLower(pattern)) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	if s == style && w == weight {
		return true
	}
	return false
}

// MatchConfidence is a type for expressing the confidence level of font matching.
type MatchConfidence int

// Confidence levels, from no match to exact match.
const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font descriptors and returns the closest match
// for a given set of parameters.
// If no variant matches, returns `NoConfidence`.
func ClosestMatch(fdescs []Descriptor, pattern string, style Style,
	weight Weight) (match Descriptor, variant string, confidence MatchConfidence) {
	//
	r, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		tracer().Errorf("invalid font name pattern")
		return
	}
	for _, fdesc := range fdescs {
		if !r.MatchString(strings.ToLower(fdesc.Family)) {
			continue
		}
		for _, v := range fdesc.Variants {
			s := MatchStyle(v, style)
			w := MatchWeight(v, weight)
			if (s+w)/2 > confidence {
				confidence = (s + w) / 2
				variant = v
				match = fdesc
			}
		}
	}
	return
}

// ---------------------------------------------------------------------------

// MatchStyle trys to match a font-variant to a given style.
func MatchStyle(variantName string, style Style) MatchConfidence {
	variantName = strings.ToLower(variantName)
	switch style {
	case StyleNormal:
		// variants without a slant indicator are upright, whatever their weight
		if strings.Contains(variantName, "italic") || strings.Contains(variantName, "obliq") {
			return NoConfidence
		}
		switch variantName {
		case "regular", "400":
			return PerfectConfidence
		}
		return HighConfidence
	case StyleItalic:
		if strings.Contains(variantName, "italic") {
			return PerfectConfidence
		}
		if strings.Contains(variantName, "obliq") {
			return HighConfidence
		}
		return NoConfidence
	case StyleOblique:
		if strings.Contains(variantName, "obliq") {
			return PerfectConfidence
		}
		if strings.Contains(variantName, "italic") {
			return HighConfidence
		}
		return NoConfidence
	}
	return NoConfidence
}

// MatchWeight trys to match a font-variant to a given weight.
func MatchWeight(variantName string, weight Weight) MatchConfidence {
	/* from https://pkg.go.dev/golang.org/x/image/font
	WeightThin       Weight = -3 // CSS font-weight value 100.
	WeightExtraLight Weight = -2 // CSS font-weight value 200.
	WeightLight      Weight = -1 // CSS font-weight value 300.
	WeightNormal     Weight = +0 // CSS font-weight value 400.
	WeightMedium     Weight = +1 // CSS font-weight value 500.
	WeightSemiBold   Weight = +2 // CSS font-weight value 600.
	WeightBold       Weight = +3 // CSS font-weight value 700.
	WeightExtraBold  Weight = +4 // CSS font-weight value 800.
	WeightBlack      Weight = +5 // CSS font-weight value 900.
	*/
	variantName = strings.ToLower(variantName)
	// variant names may combine weight and slant, e.g. "700italic"
	if strings.HasSuffix(variantName, "italic") && variantName != "italic" {
		variantName = strings.TrimSuffix(variantName, "italic")
	}
	if strconv.Itoa((int(weight)+4)*100) == variantName {
		return PerfectConfidence
	}
	switch variantName {
	case "regular", "400", "italic", "oblique", "normal", "text":
		switch weight {
		case WeightNormal, WeightMedium:
			return PerfectConfidence
		case WeightThin, WeightExtraLight, WeightLight:
			return LowConfidence
		}
		return NoConfidence
	case "100", "200", "300":
		switch weight {
		case WeightThin, WeightExtraLight, WeightLight:
			return PerfectConfidence
		case WeightNormal, WeightMedium:
			return LowConfidence
		}
		return NoConfidence
	case "500":
		switch weight {
		case WeightMedium:
			return PerfectConfidence
		case WeightSemiBold:
			return HighConfidence
		case WeightNormal, WeightBold:
			return LowConfidence
		}
		return NoConfidence
	case "bold", "700":
		switch weight {
		case WeightBold:
			return PerfectConfidence
		case WeightSemiBold, WeightExtraBold:
			return HighConfidence
		}
		return NoConfidence
	case "extrabold", "600", "800", "900":
		switch weight {
		case WeightSemiBold:
			return LowConfidence
		case WeightBold:
			return HighConfidence
		}
		return NoConfidence
	}
	return NoConfidence
}
