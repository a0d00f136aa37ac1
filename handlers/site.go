package handlers

import (
	"embed"
	"sort"

	"github.com/bep/overlayfs"
	"github.com/pkg/errors"
	"github.com/seanyu/seanyu-space/config"
	"github.com/seanyu/seanyu-space/content"
	"github.com/spf13/afero"
)

const (
	baseLayoutPath   = "templates/layouts/base.plush.html"
	notFoundPagePath = "templates/404.plush.html"
)

//go:embed templates
var theme embed.FS

// Site is everything needed to serve the blog: the source tree, its manifest
// and the posts loaded from it. It is read-only once built.
type Site struct {
	Fs       afero.Fs
	Manifest *config.SiteManifest
	Posts    []content.Post

	// source is Fs layered over the embedded default theme.
	source       afero.Fs
	assets       afero.Fs
	scripts      map[string]string
	translations map[string]map[string]string
	lang         string

	registeredRoutes []string
}

type Option func(*Site)

// WithScripts sets the compiled javascript bundles, target name -> public path.
func WithScripts(scripts map[string]string) Option {
	return func(s *Site) {
		s.scripts = scripts
	}
}

// WithAssets layers generated files (e.g. in-memory JS bundles) over the
// site's own tree when serving /static/.
func WithAssets(generated afero.Fs) Option {
	return func(s *Site) {
		s.assets = overlayfs.New(overlayfs.Options{Fss: []afero.Fs{generated, s.Fs}})
	}
}

func NewSite(fs afero.Fs, manifest *config.SiteManifest, opts ...Option) (*Site, error) {
	s := &Site{
		Fs:       fs,
		Manifest: manifest,
		assets:   fs,
		lang:     "en",
		source: overlayfs.New(overlayfs.Options{
			Fss: []afero.Fs{fs, afero.FromIOFS{FS: theme}},
		}),
	}

	exists, err := afero.DirExists(fs, manifest.PostsDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		s.Posts, err = content.LoadPosts(fs, manifest.PostsDir)
		if err != nil {
			return nil, errors.Wrap(err, "error loading posts")
		}
	}

	s.translations, err = config.LoadTranslations(fs, manifest.Translations)
	if err != nil {
		return nil, errors.Wrap(err, "error loading translations")
	}
	if len(manifest.Translations) > 0 {
		s.lang = manifest.Translations[0].Code
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Routes lists every concrete route registered by the last SetupRouter call.
func (s *Site) Routes() []string {
	return append([]string(nil), s.registeredRoutes...)
}

// scriptsFor resolves javascript target names to bundle paths. With no names
// every bundle is included.
func (s *Site) scriptsFor(deps []string) []string {
	if len(deps) == 0 {
		names := make([]string, 0, len(s.scripts))
		for name := range s.scripts {
			names = append(names, name)
		}
		sort.Strings(names)
		deps = names
	}

	var out []string
	for _, name := range deps {
		if p, ok := s.scripts[name]; ok {
			out = append(out, p)
		}
	}
	return out
}
