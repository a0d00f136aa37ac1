package content

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Pager is one page of a paginated post list. Number starts at 1.
type Pager struct {
	Number     int
	TotalPages int
	Posts      []Post
	base       string
}

func (p Pager) HasPrev() bool {
	return p.Number > 1
}

func (p Pager) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Pager) Path() string {
	return pagePath(p.base, p.Number)
}

func (p Pager) PrevPath() string {
	if !p.HasPrev() {
		return ""
	}
	return pagePath(p.base, p.Number-1)
}

func (p Pager) NextPath() string {
	if !p.HasNext() {
		return ""
	}
	return pagePath(p.base, p.Number+1)
}

// Paginate splits posts into pagers of size posts each. The first page is
// served at base, the others at base/page/N. An empty list still yields one
// (empty) page so the index always exists.
func Paginate(posts []Post, size int, base string) ([]Pager, error) {
	if size <= 0 {
		return nil, errors.New("'posts per page' must be a positive integer")
	}

	total := (len(posts) + size - 1) / size
	if total == 0 {
		total = 1
	}

	pagers := make([]Pager, 0, total)
	for i := 0; i < total; i++ {
		start := i * size
		end := start + size
		if end > len(posts) {
			end = len(posts)
		}
		pagers = append(pagers, Pager{
			Number:     i + 1,
			TotalPages: total,
			Posts:      posts[start:end],
			base:       base,
		})
	}

	return pagers, nil
}

func pagePath(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s/page/%d", strings.TrimSuffix(base, "/"), n)
}
