package domain

// SearchStatus distinguishes a resolved search from a failed location lookup.
// A search that finds nothing is not an error: callers get an empty
// collection plus this flag, never a fault.
type SearchStatus string

const (
	SearchStatusOK       SearchStatus = "ok"
	SearchStatusNotFound SearchStatus = "location_not_found"
)

// SearchResult is one aggregated, ranked venue collection for a query.
// Location is the resolved display label ("Ithaca, NY"); it falls back to
// the raw query when geocoding resolves nothing.
type SearchResult struct {
	Query    string       `json:"query"`
	Location string       `json:"location"`
	Status   SearchStatus `json:"status"`
	Spots    []StudySpot  `json:"spots"`
}
