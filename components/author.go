package components

import (
	"html/template"

	"github.com/seanyu/seanyu-space/config"
)

// DefaultSubtitle is the bio paragraph printed under the author's name. It is
// fixed markup, independent of config.Author.Bio.
const DefaultSubtitle template.HTML = `Sr. Software Eng @ <a href="https://www.xendit.co/en/">Xendit.</a> <br />
Solving problems for software and teams to ⚖️. <br />
Giving learning in public a 🥃.`

type AuthorProps struct {
	Author  config.Author
	IsIndex bool
	// Subtitle replaces DefaultSubtitle when set.
	Subtitle template.HTML
}

// Author renders the author card: photo and name both link to the site root,
// and the name is the page's h1 on the index and an h2 everywhere else.
func Author(props AuthorProps) (template.HTML, error) {
	subtitle := props.Subtitle
	if subtitle == "" {
		subtitle = DefaultSubtitle
	}

	return render("author", map[string]interface{}{
		"author":   props.Author,
		"isIndex":  props.IsIndex,
		"subtitle": subtitle,
	})
}
