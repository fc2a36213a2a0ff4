package views

import "github.com/a-h/templ"

type IndexPageProps struct {
	Sidebar SidebarProps
	// Intro is rendered above the story overview.
	Intro templ.Component
}
