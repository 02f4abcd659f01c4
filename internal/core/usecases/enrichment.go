package usecases

import (
	"context"
	"log/slog"

	"github.com/studyspotter/api/internal/core/ports"
	"github.com/studyspotter/api/internal/pkg/keywords"
	"github.com/studyspotter/api/internal/pkg/metrics"
)

// detailFields bounds every detail lookup to the data the pipeline consumes.
var detailFields = []string{
	"reviews", "name", "rating", "place_id",
	"photos", "types", "vicinity", "formatted_address",
}

// Enrichment carries the supplementary data attached to one venue. A failed
// or not-found detail lookup yields the defaults (empty mentions, no photo):
// soft failure is part of the contract, never an error.
type Enrichment struct {
	Mentions []string
	PhotoURL string
}

// Enricher fetches per-venue detail and derives review mentions and a photo
// URL. Photo resolution is bounded to MaxWidth×MaxHeight.
type Enricher struct {
	places    ports.PlacesClient
	maxWidth  int
	maxHeight int
}

// NewEnricher creates an Enricher resolving photos at most maxWidth×maxHeight.
func NewEnricher(places ports.PlacesClient, maxWidth, maxHeight int) *Enricher {
	return &Enricher{places: places, maxWidth: maxWidth, maxHeight: maxHeight}
}

// Enrich looks up detail for placeID and derives the enrichment fields.
// Failures degrade to the default Enrichment and are logged at debug level
// only; they must never abort the enclosing aggregation.
func (e *Enricher) Enrich(ctx context.Context, placeID string) Enrichment {
	detail, err := e.places.Details(ctx, placeID, detailFields)
	if err != nil {
		slog.DebugContext(ctx, "spot enrichment skipped", "place_id", placeID, "error", err)
		metrics.EnrichmentFailures.Inc()
		return Enrichment{Mentions: []string{}}
	}
	return e.fromDetail(detail)
}

// fromDetail derives enrichment fields from an already-fetched detail record.
func (e *Enricher) fromDetail(detail *ports.PlaceDetail) Enrichment {
	enr := Enrichment{Mentions: keywords.Extract(reviewTexts(detail.Reviews))}
	if len(detail.Photos) > 0 && detail.Photos[0].Reference != "" {
		enr.PhotoURL = e.places.PhotoURL(detail.Photos[0].Reference, e.maxWidth, e.maxHeight)
	}
	return enr
}

func reviewTexts(reviews []ports.Review) []string {
	texts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		texts = append(texts, r.Text)
	}
	return texts
}
