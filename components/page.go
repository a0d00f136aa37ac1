package components

import "html/template"

// Page wraps body with a page title, the way tag, category and static pages
// are laid out.
func Page(title string, body template.HTML) (template.HTML, error) {
	return render("page", map[string]interface{}{
		"title": title,
		"body":  body,
	})
}
