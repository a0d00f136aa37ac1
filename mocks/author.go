package mocks

import "github.com/seanyu/seanyu-space/config"

// Author is the author fixture shared by component and handler tests.
func Author() config.Author {
	return config.Author{
		Name:  "Sean Yu",
		Bio:   "Sr. Software Engineer. Solving problems for software and teams.",
		Photo: "/photo.jpg",
		Contacts: []config.Contact{
			{Kind: "email", Handle: "hello@seanyu.space"},
			{Kind: "twitter", Handle: "seanyu4296"},
			{Kind: "github", Handle: "seanyu4296"},
			{Kind: "linkedin", Handle: "seanyu4296"},
			{Kind: "rss", Handle: "/rss.xml"},
		},
	}
}
