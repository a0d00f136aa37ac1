package content

import (
	"html/template"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/gobuffalo/flect"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

const frontmatterSeparator = "\n---\n"

type Post struct {
	Slug        string
	Title       string
	Description string
	Category    string
	SocialImage string
	Tags        []string
	Date        time.Time
	Draft       bool
	Content     template.HTML
}

func (p Post) Path() string {
	return "/posts/" + p.Slug
}

func (p Post) CategoryPath() string {
	if p.Category == "" {
		return ""
	}
	return CategoryPath(p.Category)
}

func (p Post) TagPaths() []string {
	paths := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		paths = append(paths, TagPath(t))
	}
	return paths
}

// DisplayDate is the post date the way the feed prints it.
func (p Post) DisplayDate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("January 2, 2006")
}

func TagPath(tag string) string {
	return "/tag/" + Slugify(tag)
}

func CategoryPath(category string) string {
	return "/category/" + Slugify(category)
}

// symbolWords keeps symbol-only differences ("C" vs "C++") in the slug;
// Dasherize drops punctuation.
var symbolWords = strings.NewReplacer(
	"+", " plus ",
	"#", " sharp ",
	"&", " and ",
	"@", " at ",
)

func Slugify(s string) string {
	return flect.Dasherize(symbolWords.Replace(strings.TrimSpace(s)))
}

// ParsePost splits raw into YAML frontmatter and a markdown body. The
// frontmatter may open with its own "---" line; the body always starts after
// the first "\n---\n".
func ParsePost(slug string, raw []byte) (Post, error) {
	src := strings.ReplaceAll(string(raw), "\r\n", "\n")
	src = strings.TrimPrefix(src, "---\n")

	parts := strings.SplitN(src, frontmatterSeparator, 2)
	if len(parts) != 2 {
		return Post{}, errors.Errorf("invalid Markdown file format: %s", slug)
	}

	var meta map[string]interface{}
	if err := yaml.Unmarshal([]byte(parts[0]), &meta); err != nil {
		return Post{}, errors.Wrapf(err, "error parsing frontmatter of %s", slug)
	}

	post := Post{
		Slug:        slug,
		Title:       cast.ToString(meta["title"]),
		Description: cast.ToString(meta["description"]),
		Category:    cast.ToString(meta["category"]),
		SocialImage: cast.ToString(meta["socialImage"]),
		Tags:        cast.ToStringSlice(meta["tags"]),
		Draft:       cast.ToBool(meta["draft"]),
		Content:     RenderMarkdown([]byte(parts[1])),
	}
	if s := cast.ToString(meta["slug"]); s != "" {
		post.Slug = strings.Trim(s, "/")
	}
	if d, ok := meta["date"]; ok {
		date, err := cast.ToTimeE(d)
		if err != nil {
			return Post{}, errors.Wrapf(err, "invalid date in %s", slug)
		}
		post.Date = date
	}

	return post, nil
}

// LoadPosts reads dir/*.md and dir/<slug>/index.md, skips drafts and returns
// the posts newest first.
func LoadPosts(fs afero.Fs, dir string) ([]Post, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading posts dir %s", dir)
	}

	var posts []Post
	for _, entry := range entries {
		var slug, source string
		switch {
		case entry.IsDir():
			slug = entry.Name()
			source = path.Join(dir, slug, "index.md")
			if ok, _ := afero.Exists(fs, source); !ok {
				continue
			}
		case strings.HasSuffix(entry.Name(), ".md"):
			slug = strings.TrimSuffix(entry.Name(), ".md")
			source = path.Join(dir, entry.Name())
		default:
			continue
		}

		raw, err := afero.ReadFile(fs, source)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		post, err := ParsePost(slug, raw)
		if err != nil {
			return nil, err
		}
		if post.Draft {
			continue
		}
		posts = append(posts, post)
	}

	SortByDate(posts)
	return posts, nil
}

func SortByDate(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func ByTag(posts []Post, tag string) []Post {
	want := Slugify(tag)
	var out []Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if Slugify(t) == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func ByCategory(posts []Post, category string) []Post {
	want := Slugify(category)
	var out []Post
	for _, p := range posts {
		if p.Category != "" && Slugify(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// Tags lists every tag once, in first-seen order.
func Tags(posts []Post) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if s := Slugify(t); s != "" && !seen[s] {
				seen[s] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func Categories(posts []Post) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range posts {
		if s := Slugify(p.Category); s != "" && !seen[s] {
			seen[s] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
