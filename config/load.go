package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

const (
	DefaultManifest     = "manifest.yaml"
	DefaultPostsDir     = "pages/blog"
	DefaultPostsPerPage = 4
)

// Load reads the site manifest from fs. Files ending in .toml are decoded as
// TOML, everything else as YAML. APP_ORIGIN, when set, replaces the site URL.
func Load(fs afero.Fs, filename string) (*SiteManifest, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", filename)
	}

	var manifest SiteManifest
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = toml.Unmarshal(data, &manifest)
	default:
		err = yaml.Unmarshal(data, &manifest)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding manifest %s", filename)
	}

	if origin := os.Getenv("APP_ORIGIN"); origin != "" {
		manifest.SiteMetadata.URL = origin
	}
	manifest.setDefaults()

	return &manifest, nil
}

func (m *SiteManifest) setDefaults() {
	if m.SiteMetadata.PostsPerPage <= 0 {
		m.SiteMetadata.PostsPerPage = DefaultPostsPerPage
	}
	m.SiteMetadata.URL = strings.TrimSuffix(m.SiteMetadata.URL, "/")
	if m.PostsDir == "" {
		m.PostsDir = DefaultPostsDir
	}
	for i, r := range m.Routes {
		if r.TemplateType == "" {
			m.Routes[i].TemplateType = TemplateTypePlush
		}
	}
}

// LoadTranslations reads every translation file listed in the manifest into a
// language code -> key -> text table.
func LoadTranslations(fs afero.Fs, translations []Translation) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(translations))

	for _, t := range translations {
		data, err := afero.ReadFile(fs, t.Source)
		if err != nil {
			return nil, errors.Wrapf(err, "reading translation %s", t.Code)
		}

		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, errors.Wrapf(err, "decoding translation %s", t.Code)
		}

		out[t.Code] = table
	}

	return out, nil
}

var contactPrefixes = map[string]string{
	"twitter":    "https://www.twitter.com/",
	"github":     "https://github.com/",
	"gitlab":     "https://www.gitlab.com/",
	"telegram":   "https://t.me/",
	"email":      "mailto:",
	"linkedin":   "https://www.linkedin.com/in/",
	"instagram":  "https://www.instagram.com/",
	"medium":     "https://medium.com/",
	"codepen":    "https://www.codepen.io/",
	"youtube":    "https://www.youtube.com/channel/",
	"soundcloud": "https://soundcloud.com/",
}

// ContactURL turns a contact handle into a link. Unknown kinds (rss included)
// already carry a usable URL and are returned unchanged.
func ContactURL(kind, handle string) string {
	if prefix, ok := contactPrefixes[strings.ToLower(kind)]; ok {
		return prefix + handle
	}
	return handle
}
