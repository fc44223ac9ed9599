package resources

import (
	"context"
	"fmt"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/fontcase/core/font/fontcatalog"
	"github.com/npillmayer/schuko"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// --- Fonts -----------------------------------------------------------------

// builtinFonts are the Go fonts compiled into the module. They serve as
// always-available stand-ins for the most common font requests and are keyed
// by the normalized names requests for them will produce.
var builtinFonts = map[string][]byte{
	"go":        goregular.TTF,
	"goregular": goregular.TTF,
	"go-bold":   gobold.TTF,
	"gobold":    gobold.TTF,
	"go-italic": goitalic.TTF,
	"goitalic":  goitalic.TTF,
	"go_mono":   gomono.TTF,
	"gomono":    gomono.TTF,
}

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is the await-side of ResolveTypeCase.
type TypeCasePromise interface {
	TypeCase() (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

// ResolveTypeCase resolves a font typecase with a given size, trying the
// following sources in order:
//
// ▪︎ fonts already present in the global font catalog
//
// ▪︎ the builtin Go fonts
//
// ▪︎ fonts installed on the system, located by go-findfont or fontconfig
//
// ▪︎ the Google webfont service (downloads are cached locally)
//
// A font from any source but the catalog itself will be stored into the
// global catalog, making it part of the catalog's font collection.
func ResolveTypeCase(conf schuko.Configuration, pattern string, style xfont.Style,
	weight xfont.Weight, size float32) TypeCasePromise {
	//
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		catalog := fontcatalog.GlobalCatalog()
		normalized := font.NormalizeFontname(pattern, style, weight)
		if t, err := catalog.TypeCase(normalized, size); err == nil {
			result.font = t
			ch <- result
			close(ch)
			return
		}
		var f *font.ScalableFont
		if data, ok := builtinFonts[normalized]; ok {
			tracer().Debugf("%s is a builtin Go font", normalized)
			f, result.err = font.ParseOpenTypeFont(data)
		}
		if f == nil {
			fpath, err := findfont.Find(pattern) // try to find as system font
			if err == nil && fpath != "" {
				tracer().Debugf("%s is a system font", pattern)
				f, result.err = font.LoadOpenTypeFont(fpath)
			}
		}
		if f == nil {
			if desc, variant := findFontConfigFont(conf, pattern, style, weight); desc.Path != "" {
				tracer().Debugf("%s located by fontconfig, variant %s", desc.Family, variant)
				f, result.err = font.LoadOpenTypeFont(desc.Path)
			}
		}
		if f == nil {
			var fiList []GoogleFontInfo
			if fiList, result.err = FindGoogleFont(pattern, style, weight); result.err == nil {
				fi := fiList[0]
				variant := bestVariant(fi, style, weight)
				var fpath string
				if fpath, result.err = CacheGoogleFont(fi, variant); result.err == nil {
					f, result.err = font.LoadOpenTypeFont(fpath)
				}
			}
		}
		if f != nil && result.err == nil {
			f.Fontname = pattern
			catalog.StoreFont(normalized, f)
			result.font, result.err = catalog.TypeCase(normalized, size)
		} else if result.err == nil {
			result.err = NotFound(pattern, fontResourceType)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}
