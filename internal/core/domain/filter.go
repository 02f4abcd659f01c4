package domain

// SpotFilters narrows a venue collection. The zero value passes everything.
type SpotFilters struct {
	MinRating  *float64 `json:"min_rating,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// FilterSpots returns the spots satisfying every set filter. The input slice
// is never mutated; an absent rating counts as 0 against MinRating.
func FilterSpots(spots []StudySpot, f SpotFilters) []StudySpot {
	out := make([]StudySpot, 0, len(spots))
	for _, s := range spots {
		if f.MinRating != nil && s.RatingOrZero() < *f.MinRating {
			continue
		}
		if len(f.Categories) > 0 && !containsString(f.Categories, Categorize(s.Name, s.Tags)) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
