package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/seanyu/seanyu-space/content"
	"github.com/seanyu/seanyu-space/mocks"
)

func TestGenerateSitemapContent(t *testing.T) {
	routes := []string{"/", "/page/2", "/posts/hello", "/tag/go", "/tag/go/page/2"}

	out, err := GenerateSitemapContent("https://seanyu.space", routes, []string{"/tag/**", "/page/*"})
	if err != nil {
		t.Fatalf("GenerateSitemapContent() error: %v", err)
	}

	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("expected XML header, got %s", out)
	}
	for _, want := range []string{"<loc>https://seanyu.space/</loc>", "<loc>https://seanyu.space/posts/hello</loc>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in sitemap", want)
		}
	}
	for _, unwanted := range []string{"/tag/go", "/page/2"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("expected %s to be excluded", unwanted)
		}
	}
}

func TestGenerateSitemapContentBadPattern(t *testing.T) {
	if _, err := GenerateSitemapContent("https://seanyu.space", []string{"/"}, []string{"[unterminated"}); err == nil {
		t.Fatal("expected error for invalid glob")
	}
}

func TestGenerateRSS(t *testing.T) {
	posts := []content.Post{
		{Slug: "hello", Title: "Hello & welcome", Description: "First", Tags: []string{"Go"}, Date: time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	out, err := GenerateRSS(mocks.SiteMetadata(), posts)
	if err != nil {
		t.Fatalf("GenerateRSS() error: %v", err)
	}

	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Sean Yu</title>",
		"<title>Hello &amp; welcome</title>",
		"<link>https://seanyu.space/posts/hello</link>",
		"<pubDate>Sun, 14 Mar 2021 00:00:00 +0000</pubDate>",
		"<category>Go</category>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in feed:\n%s", want, out)
		}
	}
}
