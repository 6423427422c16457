package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/cart"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition. The mobile menu renders the
// same items behind the toggle.
var Main = []Item{
	{Path: "/", Label: "Home"},
	{Path: "/cart", Label: "Cart"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/" || strings.HasPrefix(currentPath, "/product")
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, path.Clean(itemPath)+"/")
}
