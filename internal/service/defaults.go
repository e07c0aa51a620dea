package service

// Fallback names applied whenever a client submits a section or page
// without one. Kept as pure functions so the rules are testable without
// persistence.
const (
	DefaultSectionName = "Untitled section"
	DefaultPageTitle   = "Untitled page"
)

func sectionNameOrDefault(name string) string {
	if name == "" {
		return DefaultSectionName
	}
	return name
}

func pageTitleOrDefault(title string) string {
	if title == "" {
		return DefaultPageTitle
	}
	return title
}

// pageSizeInBytes is the UTF-8 byte length of the page content.
func pageSizeInBytes(content string) int64 {
	return int64(len(content))
}
