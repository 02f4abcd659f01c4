package usecases

import (
	"context"
	"fmt"

	"github.com/studyspotter/api/internal/core/domain"
	"github.com/studyspotter/api/internal/core/ports"
)

// SpotService serves single-venue detail lookups (the detail/modal view).
type SpotService struct {
	places   ports.PlacesClient
	enricher *Enricher
}

// NewSpotService creates a new SpotService.
func NewSpotService(places ports.PlacesClient, enricher *Enricher) *SpotService {
	return &SpotService{places: places, enricher: enricher}
}

// Get fetches, classifies, and enriches a single venue. Unlike batch
// enrichment this is a direct user request, so a failed lookup is a real
// error; callers map ports.ErrPlaceNotFound to a 404.
func (s *SpotService) Get(ctx context.Context, id string) (*domain.StudySpot, error) {
	if id == "" {
		return nil, fmt.Errorf("spot id must not be empty")
	}

	detail, err := s.places.Details(ctx, id, detailFields)
	if err != nil {
		return nil, err
	}
	if detail.PlaceID == "" {
		detail.PlaceID = id
	}

	spot := toSpotDetail(detail)
	enr := s.enricher.fromDetail(detail)
	spot.ReviewMentions = enr.Mentions
	spot.PhotoURL = enr.PhotoURL
	spot.Category = domain.Categorize(spot.Name, spot.Tags)
	return &spot, nil
}

func toSpotDetail(d *ports.PlaceDetail) domain.StudySpot {
	spot := domain.StudySpot{
		ID:             d.PlaceID,
		Name:           d.Name,
		Rating:         d.Rating,
		Tags:           d.Types,
		ReviewMentions: []string{},
	}
	if d.Location != nil {
		spot.Location = *d.Location
	}
	spot.Address = d.FormattedAddress
	if spot.Address == "" {
		spot.Address = d.Vicinity
	}
	return spot
}
