// Package publish renders a site's routes through its http.Handler and writes
// the results to a destination filesystem, e.g. ./public.
package publish

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/xml"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Minify runs HTML and XML output through tdewolff/minify.
	Minify bool
	// Concurrency bounds the number of routes rendered at once. Defaults to 4.
	Concurrency int
}

type Publisher struct {
	fs   afero.Fs
	opts Options
	m    *minify.M
}

func New(fs afero.Fs, opts Options) *Publisher {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}

	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepDocumentTags:        true,
		KeepConditionalComments: true,
		KeepEndTags:             true,
		KeepDefaultAttrVals:     true,
	})
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	m.AddRegexp(regexp.MustCompile(`[/+]xml$`), &xml.Minifier{})

	return &Publisher{fs: fs, opts: opts, m: m}
}

// fileExts are the route extensions published under their own name. Any
// other dot in the last segment is part of a slug (e.g. /posts/go-1.22-notes).
var fileExts = map[string]bool{
	".html": true,
	".xml":  true,
	".txt":  true,
	".json": true,
}

// TargetPath maps a route to the file it is published to: routes ending in
// a known output extension keep their name, everything else becomes
// route/index.html.
func TargetPath(route string) string {
	route = path.Clean("/" + route)
	if fileExts[strings.ToLower(path.Ext(route))] {
		return route
	}
	return path.Join(route, "index.html")
}

// Publish renders every route with handler and writes it to the publisher's
// filesystem. Any non-200 response aborts the run.
func (p *Publisher) Publish(ctx context.Context, handler http.Handler, routes []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for _, route := range routes {
		route := route
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.publishRoute(ctx, handler, route, TargetPath(route), http.StatusOK)
		})
	}

	return g.Wait()
}

// PublishNotFound renders the handler's not-found page to /404.html, the name
// static hosts look for.
func (p *Publisher) PublishNotFound(ctx context.Context, handler http.Handler) error {
	return p.publishRoute(ctx, handler, NotFoundRoute, "/404.html", http.StatusNotFound)
}

// NotFoundRoute is requested to render the not-found page; no site registers it.
const NotFoundRoute = "/__not_found__"

func (p *Publisher) publishRoute(ctx context.Context, handler http.Handler, route, target string, status int) error {
	req := httptest.NewRequest(http.MethodGet, route, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	if resp.StatusCode != status {
		return errors.Errorf("generating %s: unexpected status %d", route, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if p.opts.Minify {
		body, err = p.minify(resp.Header.Get("Content-Type"), body)
		if err != nil {
			return errors.Wrapf(err, "minifying %s", route)
		}
	}

	if err := p.write(target, body); err != nil {
		return err
	}

	jww.INFO.Printf("Generated %s", target)
	return nil
}

func (p *Publisher) minify(contentType string, body []byte) ([]byte, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	out, err := p.m.Bytes(mediaType, body)
	if err == minify.ErrNotExist {
		return body, nil
	}
	return out, err
}

func (p *Publisher) write(target string, data []byte) error {
	if err := p.fs.MkdirAll(path.Dir(target), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	if err := afero.WriteFile(p.fs, target, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}
	return nil
}

// CopyStatic copies dir from src into the same path of the publisher's
// filesystem. A missing dir is not an error.
func (p *Publisher) CopyStatic(src afero.Fs, dir string) error {
	exists, err := afero.DirExists(src, dir)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return nil
	}

	return afero.Walk(src, dir, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		data, err := afero.ReadFile(src, name)
		if err != nil {
			return errors.WithStack(err)
		}

		target := path.Clean("/" + filepath.ToSlash(name))
		if err := p.write(target, data); err != nil {
			return err
		}

		jww.INFO.Printf("Copied %s", strings.TrimPrefix(target, "/"))
		return nil
	})
}
