package components

import (
	"html/template"
	"strings"

	"github.com/seanyu/seanyu-space/config"
)

type menuItem struct {
	Label string
	Path  string
	Class string
}

type contactItem struct {
	Kind string
	URL  string
}

// Menu renders the navigation list. The entry matching currentPath gets the
// active class.
func Menu(entries []config.MenuEntry, currentPath string) (template.HTML, error) {
	items := make([]menuItem, 0, len(entries))
	for _, e := range entries {
		class := "menu__list-item-link"
		if isActive(e.Path, currentPath) {
			class += " menu__list-item-link--active"
		}
		items = append(items, menuItem{Label: e.Label, Path: e.Path, Class: class})
	}

	return render("menu", map[string]interface{}{
		"items": items,
	})
}

func Contacts(contacts []config.Contact) (template.HTML, error) {
	items := make([]contactItem, 0, len(contacts))
	for _, c := range contacts {
		if c.Handle == "" {
			continue
		}
		items = append(items, contactItem{Kind: c.Kind, URL: config.ContactURL(c.Kind, c.Handle)})
	}

	return render("contacts", map[string]interface{}{
		"contacts": items,
	})
}

func Copyright(text string) (template.HTML, error) {
	return render("copyright", map[string]interface{}{
		"copyright": text,
	})
}

// Sidebar composes the author card, menu, contacts and copyright.
func Sidebar(meta config.SiteMetadata, isIndex bool, currentPath string) (template.HTML, error) {
	author, err := Author(AuthorProps{Author: meta.Author, IsIndex: isIndex})
	if err != nil {
		return "", err
	}
	menu, err := Menu(meta.Menu, currentPath)
	if err != nil {
		return "", err
	}
	contacts, err := Contacts(meta.Author.Contacts)
	if err != nil {
		return "", err
	}
	copyright, err := Copyright(meta.Copyright)
	if err != nil {
		return "", err
	}

	return render("sidebar", map[string]interface{}{
		"author":    author,
		"menu":      menu,
		"contacts":  contacts,
		"copyright": copyright,
	})
}

// "/" only matches itself, other entries also match their sub-paths.
func isActive(entryPath, currentPath string) bool {
	if entryPath == "/" {
		return currentPath == "/"
	}
	return currentPath == entryPath || strings.HasPrefix(currentPath, strings.TrimSuffix(entryPath, "/")+"/")
}
