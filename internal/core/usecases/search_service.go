package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/studyspotter/api/internal/core/domain"
	"github.com/studyspotter/api/internal/core/ports"
	"github.com/studyspotter/api/internal/pkg/geospatial"
	"github.com/studyspotter/api/internal/pkg/metrics"
)

// searchQueryTemplates are the fixed fan-out queries combined with the user's
// location string. One generic query under-represents libraries or student
// spaces, so each template targets a single venue class.
var searchQueryTemplates = []string{
	`%s "public library" "school library"`,
	`%s "cafe" "study" "study spot" "co-working space"`,
	`%s "student center" "student union"`,
}

// SearchService runs the aggregation pipeline: geocode, fan-out text search,
// dedupe, enrich, rank.
type SearchService struct {
	places   ports.PlacesClient
	enricher *Enricher
}

// NewSearchService creates a new SearchService.
func NewSearchService(places ports.PlacesClient, enricher *Enricher) *SearchService {
	return &SearchService{places: places, enricher: enricher}
}

// Search turns one user-entered location string into a ranked, deduplicated,
// enriched venue collection. Upstream failures never surface as errors: a
// failed geocode or search yields an empty collection with
// SearchStatusNotFound and the raw query as the display label. The only
// error return is an empty query.
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}

	start := time.Now()
	result := &domain.SearchResult{
		Query:    query,
		Location: query,
		Status:   domain.SearchStatusNotFound,
		Spots:    []domain.StudySpot{},
	}
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		metrics.SearchesTotal.WithLabelValues(string(result.Status)).Inc()
	}()

	geo, err := s.places.Geocode(ctx, query)
	if err != nil {
		slog.WarnContext(ctx, "geocode failed", "query", query, "error", err)
		return result, nil
	}
	if len(geo) == 0 {
		return result, nil
	}

	center := geo[0].Location
	result.Location = displayLocation(geo[0].AddressComponents, query)

	spots := s.fanOutSearch(ctx, query)
	s.enrichAll(ctx, spots)

	// Rank: descending rating, absent rating counts as 0, ties keep
	// arrival order.
	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].RatingOrZero() > spots[j].RatingOrZero()
	})

	for i := range spots {
		spots[i].Category = domain.Categorize(spots[i].Name, spots[i].Tags)
		d := geospatial.Haversine(center.Lat, center.Lon, spots[i].Location.Lat, spots[i].Location.Lon)
		spots[i].Distance = &d
	}

	metrics.SpotsPerSearch.Observe(float64(len(spots)))
	result.Spots = spots
	result.Status = domain.SearchStatusOK
	return result, nil
}

// fanOutSearch runs all query templates concurrently, joins, and merges the
// result sets into one deduplicated, arrival-ordered collection. A failed
// query degrades to an empty set. Records missing an id, name, or coordinate
// are dropped silently: without a stable identity or location a venue can
// neither be deduplicated nor displayed.
func (s *SearchService) fanOutSearch(ctx context.Context, query string) []domain.StudySpot {
	resultSets := make([][]ports.Place, len(searchQueryTemplates))

	var wg sync.WaitGroup
	for i, tpl := range searchQueryTemplates {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			places, err := s.places.TextSearch(ctx, q)
			if err != nil {
				slog.WarnContext(ctx, "text search failed", "query", q, "error", err)
				return
			}
			resultSets[i] = places
		}(i, fmt.Sprintf(tpl, query))
	}
	wg.Wait()

	// Dedupe by place ID: the last occurrence overwrites the fields, the
	// entry keeps its first arrival position.
	spots := make([]domain.StudySpot, 0, 32)
	index := make(map[string]int)
	for _, set := range resultSets {
		for _, p := range set {
			if p.PlaceID == "" || p.Name == "" || p.Location == nil {
				continue
			}
			spot := toSpot(p)
			if at, ok := index[p.PlaceID]; ok {
				spots[at] = spot
			} else {
				index[p.PlaceID] = len(spots)
				spots = append(spots, spot)
			}
		}
	}
	return spots
}

// enrichAll enriches every spot concurrently and joins before returning.
// Each goroutine writes only to its own element, so no locking is needed.
// Fan-out is unbounded: result sets are tens of venues at most.
func (s *SearchService) enrichAll(ctx context.Context, spots []domain.StudySpot) {
	var wg sync.WaitGroup
	for i := range spots {
		wg.Add(1)
		go func(spot *domain.StudySpot) {
			defer wg.Done()
			enr := s.enricher.Enrich(ctx, spot.ID)
			spot.ReviewMentions = enr.Mentions
			spot.PhotoURL = enr.PhotoURL
		}(&spots[i])
	}
	wg.Wait()
}

func toSpot(p ports.Place) domain.StudySpot {
	address := p.FormattedAddress
	if address == "" {
		address = p.Vicinity
	}
	return domain.StudySpot{
		ID:             p.PlaceID,
		Name:           p.Name,
		Address:        address,
		Rating:         p.Rating,
		Location:       *p.Location,
		Tags:           p.Types,
		ReviewMentions: []string{},
	}
}

// displayLocation derives a "city, state" label from geocoded address
// components, falling back to whichever part is present, then to the raw
// query.
func displayLocation(components []ports.AddressComponent, fallback string) string {
	var city, state string
	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "locality":
				city = c.LongName
			case "administrative_area_level_1":
				state = c.ShortName
			}
		}
	}
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	case state != "":
		return state
	default:
		return fallback
	}
}
