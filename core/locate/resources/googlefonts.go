package resources

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/npillmayer/fontcase/core"
	"github.com/npillmayer/fontcase/core/font"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// GoogleFontInfo describes a font entry of the Google webfont service.
type GoogleFontInfo struct {
	Family   string            `json:"family"`
	Version  string            `json:"version"`
	Variants []string          `json:"variants"`
	Subsets  []string          `json:"subsets"`
	Files    map[string]string `json:"files"`
}

type googleFontsList struct {
	Items []GoogleFontInfo `json:"items"`
}

var loadGoogleFontsDir sync.Once
var googleFontsDirectory googleFontsList
var googleFontsLoadError error
var googleFontsAPI string = `https://www.googleapis.com/webfonts/v1/webfonts?`

func setupGoogleFontsDirectory() error {
	loadGoogleFontsDir.Do(func() {
		apikey := gconf.GetString("google-api-key")
		if apikey == "" {
			apikey = os.Getenv("GOOGLE_API_KEY")
		}
		if apikey == "" {
			err := errors.New("Google API key not set")
			tracer().Errorf(err.Error())
			googleFontsLoadError = core.WrapError(err, core.EMISSING,
				`Google Fonts API-key must be set in global configuration or as GOOGLE_API_KEY in environment;
      please refer to https://developers.google.com/fonts/docs/developer_api`)
			return
		}
		values := url.Values{
			"sort": []string{"alpha"},
			"key":  []string{apikey},
		}
		resp, err := http.Get(googleFontsAPI + values.Encode())
		if err != nil {
			tracer().Errorf("Google Fonts API request not OK: %s", err.Error())
			googleFontsLoadError = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			tracer().Errorf("Google Fonts API request not OK: %v", resp.Status)
			err := core.Error(resp.StatusCode, "response: %v", resp.Status)
			googleFontsLoadError = core.WrapError(err, core.ECONNECTION,
				"could not get fonts-directory from Google font service")
			return
		}
		dec := json.NewDecoder(resp.Body)
		err = dec.Decode(&googleFontsDirectory)
		if err != nil {
			googleFontsLoadError = core.WrapError(err, core.EINVALID,
				"could not decode fonts-list from Google font service")
		}
	})
	return googleFontsLoadError
}

// FindGoogleFont searches the Google webfont service for fonts with a family
// name matching a given pattern, having a variant suitable for a given style
// and weight.
//
// If not already done, the font directory will be downloaded from Google.
// This requires a Google API key to be configured (key 'google-api-key' in
// the global configuration, or environment variable GOOGLE_API_KEY).
func FindGoogleFont(pattern string, style xfont.Style, weight xfont.Weight) ([]GoogleFontInfo, error) {
	var fonts []GoogleFontInfo
	if err := setupGoogleFontsDirectory(); err != nil {
		return fonts, err
	}
	r, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		return fonts, core.WrapError(err, core.EINVALID, "invalid font name pattern: %s", pattern)
	}
	for _, finfo := range googleFontsDirectory.Items {
		if !r.MatchString(strings.ToLower(finfo.Family)) {
			continue
		}
		for _, v := range finfo.Variants {
			s := font.MatchStyle(v, style)
			w := font.MatchWeight(v, weight)
			if (s+w)/2 > font.LowConfidence {
				fonts = append(fonts, finfo)
				break
			}
		}
	}
	if len(fonts) == 0 {
		return fonts, NotFound(pattern, fontResourceType)
	}
	tracer().Debugf("%d font(s) found in Google font service for %s", len(fonts), pattern)
	return fonts, nil
}

// bestVariant picks the variant of a Google font that most closely matches a
// given style and weight.
func bestVariant(fi GoogleFontInfo, style xfont.Style, weight xfont.Weight) string {
	best, confidence := "regular", font.NoConfidence
	for _, v := range fi.Variants {
		if c := (font.MatchStyle(v, style) + font.MatchWeight(v, weight)) / 2; c > confidence {
			confidence = c
			best = v
		}
	}
	return best
}

// CacheGoogleFont downloads a font variant from the Google webfont service,
// unless it is already present in the user's font cache, and returns the path
// of the cached font file.
func CacheGoogleFont(fi GoogleFontInfo, variant string) (string, error) {
	fileurl, ok := fi.Files[variant]
	if !ok {
		return "", core.Error(core.EMISSING, "font %s has no variant %s", fi.Family, variant)
	}
	cachedir, err := CacheDirPath("fonts")
	if err != nil {
		return "", err
	}
	basename := strings.ReplaceAll(fi.Family, " ", "_") + "-" + variant + path.Ext(fileurl)
	filename := filepath.Join(cachedir, basename)
	if _, err := os.Stat(filename); err == nil {
		tracer().Infof("font %s already cached", basename)
		return filename, nil
	}
	tracer().Infof("downloading font %s to %s", fi.Family, filename)
	if err = DownloadCachedFile(filename, fileurl); err != nil {
		return "", core.WrapError(err, core.ECONNECTION, "cannot download font %s", fi.Family)
	}
	return filename, nil
}

// ---------------------------------------------------------------------------

// ListGoogleFonts produces a listing of available fonts from the Google
// webfont service, with font-family names matching a given pattern.
//
// If not already done, the list of fonts will be downloaded from Google.
func ListGoogleFonts(pattern string) {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	if err := setupGoogleFontsDirectory(); err != nil {
		tracer().Errorf(core.UserMessage(err))
	} else {
		listGoogleFonts(googleFontsDirectory, pattern)
	}
	tracer().SetTraceLevel(level)
}

func listGoogleFonts(list googleFontsList, pattern string) {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("cannot list Google fonts: invalid pattern: %v", err)
		return
	}
	tracer().Infof("%d fonts in list", len(list.Items))
	tracer().Infof("======================================")
	for i, finfo := range list.Items {
		if r.MatchString(finfo.Family) {
			tracer().Infof("[%4d] %-20s: %s", i, finfo.Family, finfo.Version)
			tracer().Infof("       subsets: %v", finfo.Subsets)
			for k, v := range finfo.Files {
				tracer().Infof("       - %-18s: %s", k, v[len(v)-4:])
			}
		}
	}
}
