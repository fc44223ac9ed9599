package resources

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestCacheDirPath(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"app-key": "fontcase-test",
	})
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cachedir, err := CacheDirPath("fonts")
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(cachedir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("expected cache path to be a directory: %s", cachedir)
	}
}

func TestCacheDownload(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"app-key": "fontcase-test",
	})
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cached file payload"))
	}))
	defer srv.Close()
	cachedir, err := CacheDirPath("fonts")
	if err != nil {
		t.Fatal(err)
	}
	target := path.Join(cachedir, "download-test.bin")
	defer os.Remove(target)
	if err = DownloadCachedFile(target, srv.URL); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "cached file payload" {
		t.Errorf("expected downloaded file to contain test payload, has %q", data)
	}
}
