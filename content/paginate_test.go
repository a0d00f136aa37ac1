package content

import (
	"fmt"
	"testing"
)

func makePosts(n int) []Post {
	posts := make([]Post, n)
	for i := range posts {
		posts[i] = Post{Slug: fmt.Sprintf("post-%d", i)}
	}
	return posts
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		posts     int
		size      int
		wantPages int
		lastLen   int
	}{
		{"empty", 0, 4, 1, 0},
		{"exact", 8, 4, 2, 4},
		{"remainder", 9, 4, 3, 1},
		{"single", 3, 4, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pagers, err := Paginate(makePosts(tt.posts), tt.size, "/")
			if err != nil {
				t.Fatalf("Paginate() error: %v", err)
			}
			if len(pagers) != tt.wantPages {
				t.Fatalf("expected %d pages, got %d", tt.wantPages, len(pagers))
			}
			last := pagers[len(pagers)-1]
			if len(last.Posts) != tt.lastLen {
				t.Errorf("expected %d posts on last page, got %d", tt.lastLen, len(last.Posts))
			}
			if last.HasNext() {
				t.Error("last page must not have a next page")
			}
			if pagers[0].HasPrev() {
				t.Error("first page must not have a previous page")
			}
		})
	}
}

func TestPaginatePaths(t *testing.T) {
	pagers, err := Paginate(makePosts(9), 4, "/")
	if err != nil {
		t.Fatal(err)
	}

	if pagers[0].Path() != "/" {
		t.Errorf("expected first page at /, got %q", pagers[0].Path())
	}
	if pagers[0].NextPath() != "/page/2" {
		t.Errorf("unexpected next path %q", pagers[0].NextPath())
	}
	if pagers[1].PrevPath() != "/" {
		t.Errorf("unexpected prev path %q", pagers[1].PrevPath())
	}
	if pagers[2].Path() != "/page/3" {
		t.Errorf("unexpected path %q", pagers[2].Path())
	}

	tagged, err := Paginate(makePosts(5), 4, "/tag/go")
	if err != nil {
		t.Fatal(err)
	}
	if tagged[1].Path() != "/tag/go/page/2" || tagged[1].PrevPath() != "/tag/go" {
		t.Errorf("unexpected tag paths %q %q", tagged[1].Path(), tagged[1].PrevPath())
	}
}

func TestPaginateInvalidSize(t *testing.T) {
	if _, err := Paginate(makePosts(3), 0, "/"); err == nil {
		t.Fatal("expected error for zero page size")
	}
}
