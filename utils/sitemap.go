package utils

import (
	"encoding/xml"
	"time"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemapContent builds the sitemap XML (header included) for routes
// under origin. Routes matching any exclude glob are left out; "*" stays
// within one path segment, "**" crosses segments.
func GenerateSitemapContent(origin string, routes []string, exclude []string) (string, error) {
	matchers := make([]glob.Glob, 0, len(exclude))
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return "", errors.Wrapf(err, "invalid sitemap exclude pattern %q", pattern)
		}
		matchers = append(matchers, g)
	}

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	lastMod := time.Now().Format("2006-01-02")
	for _, route := range routes {
		if isExcluded(route, matchers) {
			continue
		}
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     origin + route,
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return xml.Header + string(xmlOutput), nil
}

func isExcluded(route string, matchers []glob.Glob) bool {
	for _, g := range matchers {
		if g.Match(route) {
			return true
		}
	}
	return false
}
