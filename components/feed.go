package components

import (
	"html/template"

	"github.com/seanyu/seanyu-space/content"
)

type feedItem struct {
	Title        string
	Description  string
	Path         string
	Date         string
	DateISO      string
	Category     string
	CategoryPath string
	HasCategory  bool
}

func Feed(posts []content.Post) (template.HTML, error) {
	items := make([]feedItem, 0, len(posts))
	for _, p := range posts {
		item := feedItem{
			Title:        p.Title,
			Description:  p.Description,
			Path:         p.Path(),
			Date:         p.DisplayDate(),
			Category:     p.Category,
			CategoryPath: p.CategoryPath(),
			HasCategory:  p.Category != "",
		}
		if !p.Date.IsZero() {
			item.DateISO = p.Date.Format("2006-01-02")
		}
		items = append(items, item)
	}

	return render("feed", map[string]interface{}{
		"items": items,
		"empty": len(items) == 0,
	})
}

func Pagination(pager content.Pager) (template.HTML, error) {
	return render("pagination", map[string]interface{}{
		"hasPrev":  pager.HasPrev(),
		"hasNext":  pager.HasNext(),
		"prevPath": pager.PrevPath(),
		"nextPath": pager.NextPath(),
	})
}
