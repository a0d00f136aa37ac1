package config

// config/yaml.go

const (
	TemplateTypePlush    = "PLUSH"
	TemplateTypeMarkdown = "MARKDOWN"
)

type JavascriptTarget struct {
	Source string `yaml:"source" toml:"source"`
	OutDir string `yaml:"out_dir" toml:"out_dir"`
}

// SiteManifest is the whole site description, usually read from manifest.yaml.
type SiteManifest struct {
	SiteMetadata       SiteMetadata                `yaml:"site_metadata" toml:"site_metadata"`
	Routes             []Route                     `yaml:"routes" toml:"routes"`
	JavascriptTargets  map[string]JavascriptTarget `yaml:"javascript" toml:"javascript"`
	Translations       []Translation               `yaml:"translations" toml:"translations"`
	NotFoundPageSource string                      `yaml:"not_found_page_source" toml:"not_found_page_source"`
	PostsDir           string                      `yaml:"posts_dir" toml:"posts_dir"`
	SitemapExclude     []string                    `yaml:"sitemap_exclude" toml:"sitemap_exclude"`
}

// SiteMetadata describes the blog itself: where it lives, who writes it and
// how it is navigated.
type SiteMetadata struct {
	URL          string      `yaml:"url" toml:"url"`
	Title        string      `yaml:"title" toml:"title"`
	Subtitle     string      `yaml:"subtitle" toml:"subtitle"`
	Copyright    string      `yaml:"copyright" toml:"copyright"`
	PostsPerPage int         `yaml:"posts_per_page" toml:"posts_per_page"`
	Author       Author      `yaml:"author" toml:"author"`
	Menu         []MenuEntry `yaml:"menu" toml:"menu"`
}

type Author struct {
	Name     string    `yaml:"name" toml:"name"`
	Bio      string    `yaml:"bio" toml:"bio"`
	Photo    string    `yaml:"photo" toml:"photo"`
	Contacts []Contact `yaml:"contacts" toml:"contacts"`
}

// Contact is one of the author's profiles, e.g. {Kind: "github", Handle: "seanyu"}.
type Contact struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Handle string `yaml:"handle" toml:"handle"`
}

type MenuEntry struct {
	Label string `yaml:"label" toml:"label"`
	Path  string `yaml:"path" toml:"path"`
}

type Route struct {
	Path           string   `yaml:"path" toml:"path"`
	Source         string   `yaml:"source" toml:"source"`
	TemplateType   string   `yaml:"template_type" toml:"template_type"`
	JavascriptDeps []string `yaml:"javascript_deps" toml:"javascript_deps"`
}

type Translation struct {
	Code   string `yaml:"code" toml:"code"`
	Source string `yaml:"source" toml:"source"`
}
