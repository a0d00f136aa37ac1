package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/seanyu/seanyu-space/components"
	"github.com/seanyu/seanyu-space/config"
	"github.com/seanyu/seanyu-space/content"
	"github.com/seanyu/seanyu-space/utils"
	"github.com/spf13/afero"
	jww "github.com/spf13/jwalterweatherman"
)

// page is what a handler hands to the base layout.
type page struct {
	Title       string
	Description string
	Body        template.HTML
	IsIndex     bool
	JSONLD      template.HTML
	Scripts     []string
}

// SetupRouter registers one GET route per concrete page of the site: feed
// pages, posts, tag and category listings, manifest routes, sitemap and feed.
func (s *Site) SetupRouter() (*mux.Router, error) {
	router := mux.NewRouter()
	router.StrictSlash(true)
	s.registeredRoutes = nil

	router.NotFoundHandler = http.HandlerFunc(s.Custom404Handler)

	router.PathPrefix("/static/").Handler(http.FileServer(afero.NewHttpFs(s.assets)))

	meta := s.Manifest.SiteMetadata

	pagers, err := content.Paginate(s.Posts, meta.PostsPerPage, "/")
	if err != nil {
		return nil, errors.Wrap(err, "error paginating posts")
	}
	for _, pager := range pagers {
		s.handle(router, pager.Path(), s.feedHandler(pager))
	}

	for _, post := range s.Posts {
		s.handle(router, post.Path(), s.postHandler(post))
	}

	for _, tag := range content.Tags(s.Posts) {
		title := fmt.Sprintf("All Posts tagged as %q", tag)
		err := s.setupListingRoutes(router, title, content.TagPath(tag), content.ByTag(s.Posts, tag))
		if err != nil {
			return nil, errors.Wrapf(err, "error setting up tag %s", tag)
		}
	}

	for _, category := range content.Categories(s.Posts) {
		title := fmt.Sprintf("%s category", category)
		err := s.setupListingRoutes(router, title, content.CategoryPath(category), content.ByCategory(s.Posts, category))
		if err != nil {
			return nil, errors.Wrapf(err, "error setting up category %s", category)
		}
	}

	for _, route := range s.Manifest.Routes {
		s.handle(router, route.Path, s.DynamicHandler(route))
	}

	sitemap, err := utils.GenerateSitemapContent(meta.URL, s.registeredRoutes, s.Manifest.SitemapExclude)
	if err != nil {
		return nil, errors.Wrap(err, "error generating sitemap")
	}
	s.handle(router, "/sitemap.xml", xmlHandler("application/xml; charset=utf-8", sitemap))

	rss, err := utils.GenerateRSS(meta, s.Posts)
	if err != nil {
		return nil, errors.Wrap(err, "error generating rss feed")
	}
	s.handle(router, "/rss.xml", xmlHandler("application/rss+xml; charset=utf-8", rss))

	return router, nil
}

func (s *Site) handle(router *mux.Router, route string, h http.HandlerFunc) {
	router.HandleFunc(route, h).Methods("GET")
	s.registeredRoutes = append(s.registeredRoutes, route)
}

func (s *Site) setupListingRoutes(router *mux.Router, title, base string, posts []content.Post) error {
	pagers, err := content.Paginate(posts, s.Manifest.SiteMetadata.PostsPerPage, base)
	if err != nil {
		return err
	}

	for _, pager := range pagers {
		s.handle(router, pager.Path(), s.listingHandler(title, pager))
	}
	return nil
}

func (s *Site) feedHandler(pager content.Pager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := s.Manifest.SiteMetadata

		body, err := feedBody(pager)
		if err != nil {
			s.renderError(w, err)
			return
		}

		jsonLD, err := components.WebsiteJSONLD(meta)
		if err != nil {
			s.renderError(w, err)
			return
		}

		title := meta.Title
		if pager.Number > 1 {
			title = fmt.Sprintf("Posts - Page %d - %s", pager.Number, meta.Title)
		}

		s.renderPage(w, r, http.StatusOK, page{
			Title:       title,
			Description: s.siteDescription(),
			Body:        body,
			IsIndex:     true,
			JSONLD:      jsonLD,
			Scripts:     s.scriptsFor(nil),
		})
	}
}

func (s *Site) listingHandler(title string, pager content.Pager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := s.Manifest.SiteMetadata

		feed, err := feedBody(pager)
		if err != nil {
			s.renderError(w, err)
			return
		}
		body, err := components.Page(title, feed)
		if err != nil {
			s.renderError(w, err)
			return
		}
		jsonLD, err := components.WebsiteJSONLD(meta)
		if err != nil {
			s.renderError(w, err)
			return
		}

		pageTitle := fmt.Sprintf("%s - %s", title, meta.Title)
		if pager.Number > 1 {
			pageTitle = fmt.Sprintf("%s - Page %d - %s", title, pager.Number, meta.Title)
		}

		s.renderPage(w, r, http.StatusOK, page{
			Title:       pageTitle,
			Description: s.siteDescription(),
			Body:        body,
			JSONLD:      jsonLD,
			Scripts:     s.scriptsFor(nil),
		})
	}
}

func (s *Site) postHandler(post content.Post) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := s.Manifest.SiteMetadata

		body, err := components.Post(post, meta)
		if err != nil {
			s.renderError(w, err)
			return
		}
		jsonLD, err := components.BlogPostingJSONLD(meta, post)
		if err != nil {
			s.renderError(w, err)
			return
		}

		description := post.Description
		if description == "" {
			description = s.siteDescription()
		}

		s.renderPage(w, r, http.StatusOK, page{
			Title:       fmt.Sprintf("%s - %s", post.Title, meta.Title),
			Description: description,
			Body:        body,
			JSONLD:      jsonLD,
			Scripts:     s.scriptsFor(nil),
		})
	}
}

// DynamicHandler serves a manifest route from its PLUSH or MARKDOWN source.
func (s *Site) DynamicHandler(route config.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta := s.Manifest.SiteMetadata
		ctx := s.newContext(r)

		var body template.HTML
		var title, description string
		var err error

		switch route.TemplateType {
		case config.TemplateTypePlush:
			var out string
			out, err = s.renderPlushTemplate(route.Source, ctx)
			body = template.HTML(out)
		case config.TemplateTypeMarkdown:
			body, title, description, err = s.renderMarkdownTemplate(route.Source)
		default:
			http.Error(w, "Unsupported template type", http.StatusInternalServerError)
			return
		}
		if err != nil {
			s.renderError(w, err)
			return
		}

		if title != "" {
			body, err = components.Page(title, body)
			if err != nil {
				s.renderError(w, err)
				return
			}
			title = fmt.Sprintf("%s - %s", title, meta.Title)
		} else {
			title = meta.Title
		}
		if description == "" {
			description = s.siteDescription()
		}
		jsonLD, err := components.WebsiteJSONLD(meta)
		if err != nil {
			s.renderError(w, err)
			return
		}

		s.renderPage(w, r, http.StatusOK, page{
			Title:       title,
			Description: description,
			Body:        body,
			JSONLD:      jsonLD,
			Scripts:     s.scriptsFor(route.JavascriptDeps),
		})
	}
}

// newContext builds the plush context shared by pages and the base layout.
func (s *Site) newContext(r *http.Request) *plush.Context {
	ctx := plush.NewContext()
	meta := s.Manifest.SiteMetadata

	ctx.Set("site", meta)
	ctx.Set("posts", s.Posts)
	ctx.Set("registeredRoutes", s.registeredRoutes)
	ctx.Set("lang", s.lang)

	ctx.Set("text", func(key string) string {
		if t, ok := s.translations[s.lang][key]; ok {
			return t
		}
		return key
	})

	ctx.Set("startsWith", func(str string, prefix string) bool {
		return strings.HasPrefix(str, prefix)
	})

	ctx.Set("matches", func(str string, pat string) (bool, error) {
		re, err := regexp.Compile(pat)
		if err != nil {
			return false, errors.Wrapf(err, "invalid pattern %q", pat)
		}
		return re.MatchString(str), nil
	})

	ctx.Set("replace", func(str string, old string, n string) string {
		return strings.Replace(str, old, n, 1)
	})

	ctx.Set("replaceAll", func(str string, old string, n string) string {
		return strings.ReplaceAll(str, old, n)
	})

	ctx.Set("replacePattern", func(str string, pat, n string) (string, error) {
		re, err := regexp.Compile(pat)
		if err != nil {
			return "", errors.Wrapf(err, "invalid pattern %q", pat)
		}
		return re.ReplaceAllString(str, n), nil
	})

	ctx.Set("canonical", meta.URL+r.URL.Path)
	ctx.Set("currentPath", r.URL.Path)

	return ctx
}

func (s *Site) renderPage(w http.ResponseWriter, r *http.Request, status int, p page) {
	ctx := s.newContext(r)

	sidebar, err := components.Sidebar(s.Manifest.SiteMetadata, p.IsIndex, r.URL.Path)
	if err != nil {
		s.renderError(w, err)
		return
	}

	ctx.Set("yield", p.Body)
	ctx.Set("sidebar", sidebar)
	ctx.Set("title", p.Title)
	ctx.Set("description", p.Description)
	ctx.Set("jsonLD", p.JSONLD)
	ctx.Set("scripts", p.Scripts)

	pageHtml, err := s.renderPlushTemplate(baseLayoutPath, ctx)
	if err != nil {
		s.renderError(w, errors.Wrap(err, "error executing base layout"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(pageHtml)); err != nil {
		jww.ERROR.Printf("Error writing response for %s: %v", r.URL.Path, err)
	}
}

func (s *Site) renderError(w http.ResponseWriter, err error) {
	jww.ERROR.Printf("Error rendering page: %+v", err)
	http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
}

func (s *Site) siteDescription() string {
	meta := s.Manifest.SiteMetadata
	if meta.Subtitle != "" {
		return meta.Subtitle
	}
	return meta.Author.Bio
}

func (s *Site) renderPlushTemplate(source string, ctx *plush.Context) (string, error) {
	src, err := afero.ReadFile(s.source, source)
	if err != nil {
		return "", errors.Wrapf(err, "error reading %s", source)
	}

	return plush.Render(string(src), ctx)
}

// renderMarkdownTemplate returns the rendered body wrapped in an article,
// plus the frontmatter title and description.
func (s *Site) renderMarkdownTemplate(source string) (template.HTML, string, string, error) {
	raw, err := afero.ReadFile(s.source, source)
	if err != nil {
		return "", "", "", errors.Wrapf(err, "error reading %s", source)
	}

	slug := strings.TrimSuffix(path.Base(source), path.Ext(source))
	doc, err := content.ParsePost(slug, raw)
	if err != nil {
		return "", "", "", err
	}

	contentHtml := strings.Replace(`<article class="content__body">[content]</article>`, "[content]", string(doc.Content), 1)

	return template.HTML(contentHtml), doc.Title, doc.Description, nil
}

func feedBody(pager content.Pager) (template.HTML, error) {
	feed, err := components.Feed(pager.Posts)
	if err != nil {
		return "", err
	}
	pagination, err := components.Pagination(pager)
	if err != nil {
		return "", err
	}
	return feed + pagination, nil
}

func xmlHandler(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write([]byte(body)); err != nil {
			jww.ERROR.Printf("Error writing %s: %v", r.URL.Path, err)
		}
	}
}
