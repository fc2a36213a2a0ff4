package views

import "github.com/samber/lo"

// StoryEntry is the sidebar view of a story.
type StoryEntry struct {
	ID          string
	Title       string
	Name        string
	Description string
}

type SidebarProps struct {
	Stories []StoryEntry
	// Current is the ID of the selected story, empty on the index page.
	Current string
}

type storyGroup struct {
	Title   string
	Stories []StoryEntry
}

// groupStories groups stories by title in order of first appearance.
func groupStories(stories []StoryEntry) []storyGroup {
	titles := lo.Uniq(lo.Map(stories, func(s StoryEntry, _ int) string { return s.Title }))
	byTitle := lo.GroupBy(stories, func(s StoryEntry) string { return s.Title })

	return lo.Map(titles, func(title string, _ int) storyGroup {
		return storyGroup{Title: title, Stories: byTitle[title]}
	})
}
