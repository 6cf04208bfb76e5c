package converter

import (
	"strings"

	customsearch "google.golang.org/api/customsearch/v1"
)

// ImageLinks keeps the links of results whose mime type is an image.
func ImageLinks(search *customsearch.Search) []string {
	if search == nil {
		return []string{}
	}

	links := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item == nil || item.Link == "" {
			continue
		}
		if !strings.HasPrefix(item.Mime, "image/") {
			continue
		}
		links = append(links, item.Link)
	}

	return links
}
