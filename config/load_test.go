package config

import (
	"testing"

	"github.com/spf13/afero"
)

const yamlManifest = `
site_metadata:
  url: https://seanyu.space/
  title: Sean Yu
  copyright: All rights reserved.
  posts_per_page: 6
  author:
    name: Sean Yu
    bio: Engineer
    photo: /photo.jpg
    contacts:
      - kind: github
        handle: seanyu
  menu:
    - label: Articles
      path: /
    - label: About Me
      path: /pages/about
routes:
  - path: /pages/about
    source: pages/about.md
    template_type: MARKDOWN
  - path: /pages/contacts
    source: pages/contacts.plush.html
javascript:
  main:
    source: js/main.js
    out_dir: static/js
translations:
  - code: en
    source: translations/en.yaml
`

const tomlManifest = `
posts_dir = "content/posts"

[site_metadata]
url = "https://seanyu.space"
title = "Sean Yu"

[site_metadata.author]
name = "Sean Yu"
photo = "/photo.jpg"

[[site_metadata.menu]]
label = "Articles"
path = "/"
`

func TestLoadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "manifest.yaml", []byte(yamlManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(fs, "manifest.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	meta := m.SiteMetadata
	if meta.URL != "https://seanyu.space" {
		t.Errorf("expected trailing slash trimmed, got %q", meta.URL)
	}
	if meta.PostsPerPage != 6 {
		t.Errorf("expected 6 posts per page, got %d", meta.PostsPerPage)
	}
	if meta.Author.Name != "Sean Yu" || len(meta.Author.Contacts) != 1 {
		t.Errorf("unexpected author: %+v", meta.Author)
	}
	if len(meta.Menu) != 2 || meta.Menu[1].Path != "/pages/about" {
		t.Errorf("unexpected menu: %+v", meta.Menu)
	}
	if m.Routes[1].TemplateType != TemplateTypePlush {
		t.Errorf("expected default template type PLUSH, got %q", m.Routes[1].TemplateType)
	}
	if m.JavascriptTargets["main"].OutDir != "static/js" {
		t.Errorf("unexpected javascript targets: %+v", m.JavascriptTargets)
	}
	if m.PostsDir != DefaultPostsDir {
		t.Errorf("expected default posts dir, got %q", m.PostsDir)
	}
}

func TestLoadTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "site.toml", []byte(tomlManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(fs, "site.toml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if m.SiteMetadata.Title != "Sean Yu" {
		t.Errorf("unexpected title %q", m.SiteMetadata.Title)
	}
	if m.SiteMetadata.PostsPerPage != DefaultPostsPerPage {
		t.Errorf("expected default posts per page, got %d", m.SiteMetadata.PostsPerPage)
	}
	if m.PostsDir != "content/posts" {
		t.Errorf("unexpected posts dir %q", m.PostsDir)
	}
	if len(m.SiteMetadata.Menu) != 1 {
		t.Errorf("unexpected menu: %+v", m.SiteMetadata.Menu)
	}
}

func TestLoadOriginOverride(t *testing.T) {
	t.Setenv("APP_ORIGIN", "http://localhost:9010")

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "manifest.yaml", []byte(yamlManifest), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(fs, "manifest.yaml")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.SiteMetadata.URL != "http://localhost:9010" {
		t.Errorf("expected APP_ORIGIN to win, got %q", m.SiteMetadata.URL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(afero.NewMemMapFs(), "manifest.yaml"); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestLoadTranslations(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "translations/en.yaml", []byte("read_more: Read\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTranslations(fs, []Translation{{Code: "en", Source: "translations/en.yaml"}})
	if err != nil {
		t.Fatalf("LoadTranslations() error: %v", err)
	}
	if tables["en"]["read_more"] != "Read" {
		t.Errorf("unexpected translations: %+v", tables)
	}
}

func TestContactURL(t *testing.T) {
	tests := []struct {
		kind, handle, want string
	}{
		{"github", "seanyu", "https://github.com/seanyu"},
		{"email", "me@seanyu.space", "mailto:me@seanyu.space"},
		{"LinkedIn", "seanyu", "https://www.linkedin.com/in/seanyu"},
		{"rss", "/rss.xml", "/rss.xml"},
	}

	for _, tt := range tests {
		if got := ContactURL(tt.kind, tt.handle); got != tt.want {
			t.Errorf("ContactURL(%q, %q) = %q, want %q", tt.kind, tt.handle, got, tt.want)
		}
	}
}
