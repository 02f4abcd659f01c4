package domain

// StudySpot is a study-spot candidate venue (library, café, lounge, ...).
// ReviewMentions, PhotoURL, Distance and Category are filled in during
// aggregation; a spot coming straight from a text search carries only the
// identity fields.
type StudySpot struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	Location       GeoPoint `json:"location"`
	Tags           []string `json:"tags,omitempty"`
	Category       string   `json:"category,omitempty"`
	ReviewMentions []string `json:"review_mentions"`
	PhotoURL       string   `json:"photo_url,omitempty"`
	Distance       *float64 `json:"distance,omitempty"` // computed field, meters from search center
}

// RatingOrZero returns the rating with an absent rating counted as 0.
// Ranking and the minimum-rating filter both use this convention.
func (s *StudySpot) RatingOrZero() float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}
