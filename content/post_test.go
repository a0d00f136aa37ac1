package content

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

const samplePost = `---
title: Learning in public
date: 2021-03-14
description: Notes on writing things down.
category: Career
tags:
  - Writing
  - Software Engineering
---
# Hello

Some *text*.
`

func TestParsePost(t *testing.T) {
	post, err := ParsePost("learning-in-public", []byte(samplePost))
	if err != nil {
		t.Fatalf("ParsePost() error: %v", err)
	}

	if post.Title != "Learning in public" {
		t.Errorf("unexpected title %q", post.Title)
	}
	if !post.Date.Equal(time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", post.Date)
	}
	if len(post.Tags) != 2 || post.Tags[1] != "Software Engineering" {
		t.Errorf("unexpected tags %v", post.Tags)
	}
	if post.Path() != "/posts/learning-in-public" {
		t.Errorf("unexpected path %q", post.Path())
	}
	if post.CategoryPath() != "/category/career" {
		t.Errorf("unexpected category path %q", post.CategoryPath())
	}
	if got := post.TagPaths(); got[1] != "/tag/software-engineering" {
		t.Errorf("unexpected tag paths %v", got)
	}
	if !strings.Contains(string(post.Content), `<h1 id="hello">Hello</h1>`) {
		t.Errorf("expected rendered heading, got %s", post.Content)
	}
	if !strings.Contains(string(post.Content), "<em>text</em>") {
		t.Errorf("expected rendered emphasis, got %s", post.Content)
	}
}

func TestParsePostWithoutLeadingSeparator(t *testing.T) {
	post, err := ParsePost("plain", []byte("title: Plain\nslug: /custom-slug/\n---\nbody\n"))
	if err != nil {
		t.Fatalf("ParsePost() error: %v", err)
	}
	if post.Slug != "custom-slug" {
		t.Errorf("expected frontmatter slug to win, got %q", post.Slug)
	}
	if !post.Date.IsZero() {
		t.Errorf("expected zero date, got %v", post.Date)
	}
}

func TestParsePostInvalid(t *testing.T) {
	if _, err := ParsePost("broken", []byte("# no frontmatter here\n")); err == nil {
		t.Fatal("expected error for missing frontmatter separator")
	}
	if _, err := ParsePost("bad-date", []byte("date: not a date\n---\nbody\n")); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestLoadPosts(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"pages/blog/older.md":         "title: Older\ndate: 2020-01-01\n---\nold\n",
		"pages/blog/newer/index.md":   "title: Newer\ndate: 2022-01-01\n---\nnew\n",
		"pages/blog/draft.md":         "title: Draft\ndate: 2023-01-01\ndraft: true\n---\nwip\n",
		"pages/blog/notes.txt":        "ignored",
		"pages/blog/empty/readme.txt": "ignored",
	}
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}

	posts, err := LoadPosts(fs, "pages/blog")
	if err != nil {
		t.Fatalf("LoadPosts() error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}
	if posts[0].Slug != "newer" || posts[1].Slug != "older" {
		t.Errorf("expected newest first, got %s, %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestTaxonomies(t *testing.T) {
	posts := []Post{
		{Slug: "a", Category: "Career", Tags: []string{"Go", "Writing"}},
		{Slug: "b", Category: "Engineering", Tags: []string{"go"}},
		{Slug: "c"},
	}

	if got := ByTag(posts, "Go"); len(got) != 2 {
		t.Errorf("expected 2 posts tagged go, got %d", len(got))
	}
	if got := ByCategory(posts, "career"); len(got) != 1 || got[0].Slug != "a" {
		t.Errorf("unexpected career posts %+v", got)
	}
	if got := Tags(posts); len(got) != 2 {
		t.Errorf("expected tags deduplicated by slug, got %v", got)
	}
	if got := Categories(posts); len(got) != 2 {
		t.Errorf("expected 2 categories, got %v", got)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Go":                     "go",
		" Software Engineering ": "software-engineering",
		"C":                      "c",
		"C++":                    "c-plus-plus",
		"C#":                     "c-sharp",
		"R&D":                    "r-and-d",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSymbolTagsDoNotCollide(t *testing.T) {
	posts := []Post{
		{Slug: "a", Tags: []string{"C"}},
		{Slug: "b", Tags: []string{"C++"}},
	}

	if got := Tags(posts); len(got) != 2 {
		t.Fatalf("expected C and C++ as separate tags, got %v", got)
	}
	if got := ByTag(posts, "C++"); len(got) != 1 || got[0].Slug != "b" {
		t.Errorf("unexpected C++ posts %+v", got)
	}
	if TagPath("C++") == TagPath("C") {
		t.Errorf("expected distinct tag paths, both %s", TagPath("C"))
	}
}
