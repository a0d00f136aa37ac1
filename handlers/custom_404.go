package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path"

	"github.com/seanyu/seanyu-space/components"
)

// Custom404Handler renders the manifest's not-found page, or the theme's
// templates/404.plush.html, inside the base layout with a 404 status.
func (s *Site) Custom404Handler(w http.ResponseWriter, r *http.Request) {
	meta := s.Manifest.SiteMetadata
	ctx := s.newContext(r)

	source := s.Manifest.NotFoundPageSource
	if source == "" {
		source = notFoundPagePath
	}

	var body template.HTML
	if path.Ext(source) == ".md" {
		content, title, _, err := s.renderMarkdownTemplate(source)
		if err != nil {
			s.renderError(w, err)
			return
		}
		body = content
		if title != "" {
			if body, err = components.Page(title, content); err != nil {
				s.renderError(w, err)
				return
			}
		}
	} else {
		notFoundContent, err := s.renderPlushTemplate(source, ctx)
		if err != nil {
			s.renderError(w, err)
			return
		}
		body = template.HTML(notFoundContent)
	}

	jsonLD, err := components.WebsiteJSONLD(meta)
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.renderPage(w, r, http.StatusNotFound, page{
		Title:       fmt.Sprintf("Not Found - %s", meta.Title),
		Description: s.siteDescription(),
		Body:        body,
		JSONLD:      jsonLD,
		Scripts:     s.scriptsFor(nil),
	})
}
