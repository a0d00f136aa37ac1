// Package components renders the blog's presentational pieces (author card,
// sidebar, feed, post) from embedded plush templates.
package components

import (
	"embed"
	"fmt"
	"html/template"
	"path"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

//go:embed templates/*.plush.html
var templates embed.FS

// render executes templates/<name>.plush.html with data and the image/link
// helpers in scope.
func render(name string, data map[string]interface{}) (template.HTML, error) {
	src, err := templates.ReadFile("templates/" + name + ".plush.html")
	if err != nil {
		return "", errors.WithStack(err)
	}

	ctx := plush.NewContext()
	ctx.Set("image", Image)
	ctx.Set("link", Link)
	for k, v := range data {
		ctx.Set(k, v)
	}

	out, err := plush.Render(string(src), ctx)
	if err != nil {
		return "", errors.Wrapf(err, "rendering %s", name)
	}

	return template.HTML(strings.TrimSpace(out)), nil
}

// Image renders an <img>. Relative paths are served from the site root.
func Image(src, alt, class string) template.HTML {
	if !isAbsoluteURL(src) {
		src = path.Join("/", src)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<img src="%s" alt="%s"`, template.HTMLEscapeString(src), template.HTMLEscapeString(alt))
	if class != "" {
		fmt.Fprintf(&b, ` class="%s"`, template.HTMLEscapeString(class))
	}
	b.WriteString(" />")

	return template.HTML(b.String())
}

// Link renders an <a>. body is trusted when it is already template.HTML and
// escaped otherwise.
func Link(to, class string, body interface{}) template.HTML {
	var inner string
	switch v := body.(type) {
	case template.HTML:
		inner = string(v)
	case nil:
	default:
		inner = template.HTMLEscapeString(fmt.Sprint(v))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<a href="%s"`, template.HTMLEscapeString(to))
	if class != "" {
		fmt.Fprintf(&b, ` class="%s"`, template.HTMLEscapeString(class))
	}
	if isAbsoluteURL(to) {
		b.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	fmt.Fprintf(&b, ">%s</a>", inner)

	return template.HTML(b.String())
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}
