package components

import (
	"html/template"

	"github.com/seanyu/seanyu-space/config"
	"github.com/seanyu/seanyu-space/content"
)

type tagItem struct {
	Label string
	Path  string
}

// Post renders a full article with its tags and a short author note.
func Post(post content.Post, meta config.SiteMetadata) (template.HTML, error) {
	tags := make([]tagItem, 0, len(post.Tags))
	for i, path := range post.TagPaths() {
		tags = append(tags, tagItem{Label: post.Tags[i], Path: path})
	}

	return render("post", map[string]interface{}{
		"title":     post.Title,
		"body":      post.Content,
		"date":      post.DisplayDate(),
		"tags":      tags,
		"hasTags":   len(tags) > 0,
		"authorBio": meta.Author.Bio,
		"author":    meta.Author.Name,
	})
}
