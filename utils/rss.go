package utils

import (
	"encoding/xml"
	"time"

	"github.com/pkg/errors"
	"github.com/seanyu/seanyu-space/config"
	"github.com/seanyu/seanyu-space/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Copyright   string    `xml:"copyright,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category,omitempty"`
}

// GenerateRSS renders an RSS 2.0 feed of posts, in the order given.
func GenerateRSS(meta config.SiteMetadata, posts []content.Post) (string, error) {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := meta.URL + p.Path()
		item := rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			GUID:        postURL,
			Categories:  p.Tags,
		}
		if !p.Date.IsZero() {
			item.PubDate = p.Date.Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	description := meta.Subtitle
	if description == "" {
		description = meta.Author.Bio
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       meta.Title,
			Link:        meta.URL + "/",
			Description: description,
			Copyright:   meta.Copyright,
			Items:       items,
		},
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return xml.Header + string(out), nil
}
