package domain

import "strings"

// Display categories a venue can classify into.
const (
	CategoryLibrary   = "Library"
	CategoryCafe      = "Café/Coffee Shop"
	CategoryLounge    = "Student Lounge"
	CategoryCommunity = "Community Center"
	CategoryOutdoor   = "Outdoor Area"
	CategoryDefault   = "Study Spot"
)

// Categories returns the full category vocabulary in display order.
func Categories() []string {
	return []string{
		CategoryLibrary,
		CategoryCafe,
		CategoryLounge,
		CategoryCommunity,
		CategoryOutdoor,
		CategoryDefault,
	}
}

// Categorize maps a venue's name and raw service tags to exactly one display
// category. Name substrings are checked before tags: venue names are a more
// reliable signal than the service's generic tag taxonomy.
func Categorize(name string, tags []string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "library"):
		return CategoryLibrary
	case strings.Contains(n, "student"), strings.Contains(n, "university"), strings.Contains(n, "school"):
		return CategoryLounge
	case strings.Contains(n, "cafe"), strings.Contains(n, "coffee"):
		return CategoryCafe
	}

	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}

	switch {
	case tagSet["library"]:
		return CategoryLibrary
	case tagSet["cafe"], tagSet["coffee_shop"]:
		return CategoryCafe
	case tagSet["university"], tagSet["school"], tagSet["student_center"]:
		return CategoryLounge
	case tagSet["community_center"]:
		return CategoryCommunity
	case tagSet["park"]:
		return CategoryOutdoor
	}

	return CategoryDefault
}
