package mocks

import "github.com/seanyu/seanyu-space/config"

func Menu() []config.MenuEntry {
	return []config.MenuEntry{
		{Label: "Articles", Path: "/"},
		{Label: "About Me", Path: "/pages/about"},
		{Label: "Contact Me", Path: "/pages/contacts"},
	}
}
