package components

import (
	"encoding/json"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/seanyu/seanyu-space/config"
	"github.com/seanyu/seanyu-space/content"
)

// WebsiteJSONLD produces a Schema.org WebSite block. json.Marshal escapes
// <, > and &, so the result is safe inside a <script> element.
func WebsiteJSONLD(meta config.SiteMetadata) (template.HTML, error) {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     meta.Title,
		"url":      meta.URL + "/",
	}
	if meta.Subtitle != "" {
		data["description"] = meta.Subtitle
	}
	if meta.Author.Name != "" {
		data["author"] = person(meta.Author)
	}
	return marshalJSONLD(data)
}

func BlogPostingJSONLD(meta config.SiteMetadata, post content.Post) (template.HTML, error) {
	postURL := meta.URL + post.Path()
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Description,
		"url":         postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if !post.Date.IsZero() {
		data["datePublished"] = post.Date.Format("2006-01-02")
	}
	if meta.Author.Name != "" {
		data["author"] = person(meta.Author)
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	return marshalJSONLD(data)
}

func person(a config.Author) map[string]string {
	p := map[string]string{
		"@type": "Person",
		"name":  a.Name,
	}
	if a.Bio != "" {
		p["description"] = a.Bio
	}
	return p
}

func marshalJSONLD(data map[string]interface{}) (template.HTML, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", errors.Wrap(err, "error encoding json-ld")
	}
	return template.HTML(b), nil
}
