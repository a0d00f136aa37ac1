// Package mocks holds static site data used as test fixtures.
package mocks

import "github.com/seanyu/seanyu-space/config"

// SiteQuery mirrors the shape templates receive the metadata in.
type SiteQuery struct {
	Site struct {
		SiteMetadata config.SiteMetadata
	}
}

// SiteMetadata returns a fresh copy on every call so tests can't leak
// mutations into each other.
func SiteMetadata() config.SiteMetadata {
	return config.SiteMetadata{
		URL:          "https://seanyu.space",
		Title:        "Sean Yu",
		Subtitle:     "",
		Copyright:    "All rights reserved.",
		PostsPerPage: 4,
		Author:       Author(),
		Menu:         Menu(),
	}
}

// Site returns SiteMetadata in its SiteQuery envelope.
func Site() SiteQuery {
	var q SiteQuery
	q.Site.SiteMetadata = SiteMetadata()
	return q
}

// Manifest wraps SiteMetadata into a manifest with no routes or assets.
func Manifest() *config.SiteManifest {
	return &config.SiteManifest{
		SiteMetadata: SiteMetadata(),
		PostsDir:     config.DefaultPostsDir,
	}
}
