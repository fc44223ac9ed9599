package fontcatalog

import (
	"fmt"
	"sync"

	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/dimen"
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/fontcase/core/font/collection"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// Catalog is a type for holding information about loaded fonts for a
// typesetter. It is backed by a collection store which text engines may
// enumerate through a collection.Loader.
type Catalog struct {
	sync.Mutex
	store     *collection.Store
	bufs      []*font.Buffer
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

var globalFontCatalog *Catalog

var globalCatalogCreation sync.Once

// GlobalCatalog is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalCatalog() *Catalog {
	globalCatalogCreation.Do(func() {
		globalFontCatalog = NewCatalog()
	})
	return globalFontCatalog
}

func NewCatalog() *Catalog {
	fc := &Catalog{
		store:     collection.NewStore(),
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fc
}

// Store returns the collection store backing this catalog.
func (fc *Catalog) Store() *collection.Store {
	return fc.store
}

// StoreFont pushes a font into the catalog if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
// Storing a new font appends the font's buffer to the backing collection
// store, so enumerators created afterwards will see it.
func (fc *Catalog) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil || f.Buffer == nil {
		tracer().Errorf("catalog cannot store null font")
		return
	}
	fc.Lock()
	defer fc.Unlock()
	if _, ok := fc.fonts[normalizedName]; !ok {
		tracer().Debugf("catalog stores font %s as %s", f.Fontname, normalizedName)
		fc.fonts[normalizedName] = f
		fc.bufs = append(fc.bufs, f.Buffer)
		fc.store.ReplaceAll(fc.bufs)
	}
}

// TypeCase returns a concrete typecase with a given font, style, weight and size.
// A size of 0 selects the configured default size (see DefaultSize).
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a suitable font has previously been stored under key
// `normalizedName`, a typecase will be derived from this font.
//
// If no typecase can be produced, TypeCase will derive one from a system-wide
// fallback font and return it, together with an error message.
func (fc *Catalog) TypeCase(normalizedName string, size float32) (*font.TypeCase, error) {
	//
	if size <= 0 {
		size = DefaultSize()
	}
	tracer().Debugf("catalog searches for font %s at %.2f", normalizedName, size)
	tname := appendSize(normalizedName, size)
	fc.Lock()
	defer fc.Unlock()
	if t, ok := fc.typecases[tname]; ok {
		tracer().Infof("catalog found font %s", tname)
		return t, nil
	}
	if f, ok := fc.fonts[normalizedName]; ok {
		t, err := f.PrepareCase(size)
		tracer().Infof("font catalog has font %s, caches at %.2f", normalizedName, size)
		fc.typecases[tname] = t
		return t, err
	}
	tracer().Infof("catalog does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in catalog", normalizedName)
	//
	// store typecase from fallback font, if not present yet, and return it
	fname := "fallback"
	tname = appendSize(fname, size)
	if t, ok := fc.typecases[tname]; ok {
		return t, err
	}
	f := font.FallbackFont()
	t, _ := f.PrepareCase(size)
	tracer().Infof("font catalog caches fallback font %s at %.2f", fname, size)
	if _, ok := fc.fonts[fname]; !ok {
		fc.fonts[fname] = f
		fc.bufs = append(fc.bufs, f.Buffer)
		fc.store.ReplaceAll(fc.bufs)
	}
	fc.typecases[tname] = t
	return t, err
}

// DefaultSize returns the default font size in (big) points. Applications
// may configure it with key 'font-size', given as a CSS-style dimension
// (e.g., "11pt"). Without configuration the default size is 10.
func DefaultSize() float32 {
	if s := gconf.GetString("font-size"); s != "" {
		if size, ok := parseSize(s); ok {
			return size
		}
		tracer().Errorf("configured font-size not understood: %q", s)
	}
	return 10
}

// parseSize interprets a configured font size. Relative (percentage) sizes
// make no sense for a catalog-wide default and are rejected.
func parseSize(s string) (float32, bool) {
	d, rel, err := dimen.ParseDimen(s)
	if err != nil || rel || d <= 0 {
		return 0, false
	}
	return float32(d.Points()), true
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a catalog to the trace-file (log-level Info).
func (fc *Catalog) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- catalog fonts ---")
	fc.Lock()
	defer fc.Unlock()
	for k, v := range fc.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fc.typecases {
		tracer().Infof("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Infof("---------------------")
	tracer().SetTraceLevel(level)
}

func appendSize(fname string, size float32) string {
	fname = fmt.Sprintf("%s-%.2f", fname, size)
	return fname
}
