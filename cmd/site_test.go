package cmd

import (
	"path/filepath"
	"testing"

	"github.com/seanyu/seanyu-space/config"
	"github.com/spf13/afero"
)

// The bundled sample site is what `build` runs against by default; every
// file its manifest points at has to be there.
func TestSampleSiteReferencesExist(t *testing.T) {
	dir, err := filepath.Abs(filepath.Join("..", "site"))
	if err != nil {
		t.Fatal(err)
	}
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	manifest, err := config.Load(fs, config.DefaultManifest)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	files := []string{manifest.SiteMetadata.Author.Photo}
	for _, route := range manifest.Routes {
		files = append(files, route.Source)
	}
	for _, target := range manifest.JavascriptTargets {
		files = append(files, target.Source)
	}
	for _, tr := range manifest.Translations {
		files = append(files, tr.Source)
	}

	for _, name := range files {
		if ok, _ := afero.Exists(fs, name); !ok {
			t.Errorf("manifest references missing file %s", name)
		}
	}
}
