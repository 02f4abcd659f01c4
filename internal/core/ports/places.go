package ports

import (
	"context"
	"errors"

	"github.com/studyspotter/api/internal/core/domain"
)

// ErrPlaceNotFound is returned by Details when the service does not know the
// identifier. Enrichment treats it as a soft failure.
var ErrPlaceNotFound = errors.New("place not found")

// PlacesClient abstracts the external mapping/places service so the
// aggregation pipeline can be tested against a fake implementation.
type PlacesClient interface {
	// Geocode resolves a free-text location query to candidate results,
	// best match first. An unresolvable query yields an empty slice, not an
	// error.
	Geocode(ctx context.Context, query string) ([]GeocodeResult, error)

	// TextSearch runs one free-text venue search. Zero matches yield an
	// empty slice.
	TextSearch(ctx context.Context, query string) ([]Place, error)

	// Details fetches supplementary venue data limited to the given fields.
	Details(ctx context.Context, placeID string, fields []string) (*PlaceDetail, error)

	// PhotoURL resolves a photo reference to a displayable URL bounded to
	// the given maximum dimensions. No network access.
	PhotoURL(photoRef string, maxWidth, maxHeight int) string
}

// AddressComponent is one structured part of a geocoded address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// GeocodeResult is a single geocoding match.
type GeocodeResult struct {
	FormattedAddress  string             `json:"formatted_address"`
	AddressComponents []AddressComponent `json:"address_components"`
	Location          domain.GeoPoint    `json:"location"`
}

// Place is a raw venue record from a text search. Location is nil when the
// service returned no usable coordinate; such records are dropped during
// aggregation.
type Place struct {
	PlaceID          string
	Name             string
	FormattedAddress string
	Vicinity         string
	Location         *domain.GeoPoint
	Types            []string
	Rating           *float64
}

// Review is a single user review; only the text matters to the pipeline.
type Review struct {
	Text string
}

// Photo is an unresolved photo reference.
type Photo struct {
	Reference string
}

// PlaceDetail is the supplementary detail record for one venue.
type PlaceDetail struct {
	Place
	Reviews []Review
	Photos  []Photo
}
